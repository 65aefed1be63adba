package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

const (
	// Argon2 parameters (time=1, memory=64MB, threads=4)
	ArgonTime    = 1
	ArgonMemory  = 64 * 1024
	ArgonThreads = 4
	ArgonKeyLen  = 32
	SaltLen      = 16
)

const argonPrefix = "$argon2id$"

// ErrInvalidHash is returned for a stored hash that cannot be parsed.
var ErrInvalidHash = errors.New("auth: invalid hash format")

// HashAccessCode hashes code with Argon2id for storage in
// DASHBOARD_ACCESS_CODE.
func HashAccessCode(code string) (string, error) {
	salt := make([]byte, SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	hash := argon2.IDKey([]byte(code), salt, ArgonTime, ArgonMemory, ArgonThreads, ArgonKeyLen)

	// Format: $argon2id$v=19$m=65536,t=1,p=4$salt$hash
	return fmt.Sprintf("$argon2id$v=19$m=%d,t=%d,p=%d$%s$%s",
		ArgonMemory, ArgonTime, ArgonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash)), nil
}

// isHashed reports whether stored looks like a bcrypt or Argon2id hash.
func isHashed(stored string) bool {
	return strings.HasPrefix(stored, "$2") || strings.HasPrefix(stored, argonPrefix)
}

// verifyHashed checks code against a bcrypt or Argon2id hash.
func verifyHashed(code, stored string) (bool, error) {
	if strings.HasPrefix(stored, argonPrefix) {
		return verifyArgon2(code, stored)
	}

	err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(code))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %v", ErrInvalidHash, err)
	}
}

func verifyArgon2(code, stored string) (bool, error) {
	parts := strings.Split(stored, "$")
	if len(parts) != 6 || parts[1] != "argon2id" || parts[2] != "v=19" {
		return false, ErrInvalidHash
	}

	var m, t uint32
	var threads uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &m, &t, &threads); err != nil {
		return false, fmt.Errorf("%w: parameters", ErrInvalidHash)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, fmt.Errorf("%w: salt", ErrInvalidHash)
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false, fmt.Errorf("%w: hash value", ErrInvalidHash)
	}

	got := argon2.IDKey([]byte(code), salt, t, m, threads, uint32(len(want)))
	return subtle.ConstantTimeCompare(want, got) == 1, nil
}
