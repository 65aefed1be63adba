// Command ezbuild runs a brand build from the terminal and prints the
// resulting asset bundle as JSON.
//
// Usage:
//
//	ezbuild run --name "Acme Bakery" --industry bakery --style modern --colors "blue and gold"
//	ezbuild run --name "Acme Bakery" --offline      # fallback generators only
//	ezbuild hash-code                               # hash DASHBOARD_ACCESS_CODE from stdin
package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/ezhelptechnology/ezhelptechnology-saas/internal/ai"
	"github.com/ezhelptechnology/ezhelptechnology-saas/internal/auth"
	"github.com/ezhelptechnology/ezhelptechnology-saas/internal/brand"
	"github.com/ezhelptechnology/ezhelptechnology-saas/internal/config"
	"github.com/ezhelptechnology/ezhelptechnology-saas/internal/logging"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			log.Println("No .env file found, using environment variables")
		}
	}
	logging.Init(false)
	defer logging.Sync()

	if err := newRootCmd().Execute(); err != nil {
		logging.Sync()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "ezbuild",
		Short:        "Run EZ Help brand builds locally",
		SilenceUsage: true,
	}
	root.AddCommand(newRunCmd(), newHashCodeCmd())
	return root
}

type runOptions struct {
	profile  brand.BusinessProfile
	cooldown time.Duration
	offline  bool
	orderID  string
}

func newRunCmd() *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the three-stage pipeline and print the asset bundle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(opts.profile.Name) == "" {
				return errors.New("--name is required")
			}
			pipeline := newPipeline(config.Load(), opts)

			assets, err := pipeline.Run(cmd.Context(), opts.profile, opts.orderID)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(assets)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.profile.Name, "name", "", "business name")
	f.StringVar(&opts.profile.Industry, "industry", "", "industry or category")
	f.StringVar(&opts.profile.Style, "style", "", "brand style, e.g. modern, luxury, playful")
	f.StringVar(&opts.profile.Colors, "colors", "", "preferred colors in plain words")
	f.StringVar(&opts.profile.Email, "email", "", "customer email")
	f.StringVar(&opts.profile.Slogan, "slogan", "", "slogan, if the business has one")
	f.StringVar(&opts.profile.TargetAudience, "audience", "", "target customers")
	f.StringVar(&opts.orderID, "order-id", "", "order ID to stamp on the bundle")
	f.DurationVar(&opts.cooldown, "cooldown", 0, "pause between stages (the server uses BUILD_STAGE_COOLDOWN)")
	f.BoolVar(&opts.offline, "offline", false, "skip every model call and use the fallback generators")
	return cmd
}

// newPipeline wires the configured providers, or none when offline.
func newPipeline(cfg *config.AppConfig, opts runOptions) *brand.Pipeline {
	pcfg := brand.Config{
		AgentModel:  cfg.AI.AgentModel,
		FroBotModel: cfg.AI.FroBotModel,
		ImageModel:  cfg.Image.LogoModel,
		Cooldown:    opts.cooldown,
	}
	if opts.offline {
		return brand.NewPipeline(nil, nil, pcfg)
	}

	var images brand.ImageGenerator
	if client := ai.NewImageClient(cfg.Image.FalKey, cfg.Image.LogoModel); client.Configured() {
		images = client
	}
	return brand.NewPipeline(ai.NewRouterFromConfig(cfg.AI), images, pcfg)
}

func newHashCodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-code [CODE]",
		Short: "Print an argon2id hash for DASHBOARD_ACCESS_CODE",
		Long: "Print an argon2id hash for DASHBOARD_ACCESS_CODE. The code is read " +
			"from the argument or, when omitted, from the first line of stdin. " +
			"Wrap the hash in single quotes in .env files so the $ fields are not expanded.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := readCode(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			hash, err := auth.HashAccessCode(code)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), hash)
			return err
		},
	}
}

func readCode(args []string, in io.Reader) (string, error) {
	var code string
	if len(args) == 1 {
		code = args[0]
	} else {
		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read code: %w", err)
		}
		code = line
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return "", errors.New("access code is empty")
	}
	return code, nil
}
