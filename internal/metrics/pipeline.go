package metrics

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var labelSanitizer = regexp.MustCompile(`[^a-z0-9_]+`)

// ObserveStage records one pipeline stage. It satisfies brand.Observer
// together with ObserveBuild.
func (m *Metrics) ObserveStage(stage string, fallback bool, d time.Duration, tokens int) {
	outcome := "success"
	if fallback {
		outcome = "fallback"
	}
	stage = sanitizeLabel(stage, "unknown")
	m.StageDuration.WithLabelValues(stage, outcome).Observe(d.Seconds())
	m.StageOutcomesTotal.WithLabelValues(stage, outcome).Inc()
	if tokens > 0 {
		m.AITokensUsed.WithLabelValues(stage).Add(float64(tokens))
	}
}

// ObserveBuild records a finished build.
func (m *Metrics) ObserveBuild(d time.Duration, fallbackStages int) {
	m.BuildDuration.Observe(d.Seconds())
	m.BuildsTotal.WithLabelValues(strconv.Itoa(fallbackStages)).Inc()
}

// ObserveCache records a build cache lookup. It satisfies cache.Recorder.
func (m *Metrics) ObserveCache(backend string, hit bool) {
	backend = sanitizeLabel(backend, "unknown")
	if hit {
		m.CacheHitsTotal.WithLabelValues(backend).Inc()
	} else {
		m.CacheMissesTotal.WithLabelValues(backend).Inc()
	}
}

// sanitizeLabel lower-cases raw and folds anything outside [a-z0-9_] into
// underscores, capped at 63 bytes. Stripe event types like
// "checkout.session.completed" become "checkout_session_completed".
func sanitizeLabel(raw, fallback string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return fallback
	}
	s = labelSanitizer.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if s == "" {
		return fallback
	}
	if len(s) > 63 {
		s = s[:63]
	}
	return s
}
