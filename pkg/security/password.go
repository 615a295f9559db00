package security

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
	argon2SaltLen = 16
	argon2KeyLen  = 32
)

var errMalformedHash = errors.New("malformed password hash")

// Hasher produces argon2id hashes and verifies both argon2id and legacy
// bcrypt hashes. The encoded hash carries the algorithm identifier and its
// parameters, so Verify works regardless of which scheme (or which cost)
// produced the stored value. New hashes are always argon2id; bcrypt is
// accepted for verification only, so existing accounts keep working while
// their hashes migrate on the next password change.
type Hasher struct {
	time        uint32
	memoryKiB   uint32
	parallelism uint8
}

// NewHasher - work factors come from process configuration at startup.
func NewHasher(timeCost, memoryKiB uint32, parallelism uint8) *Hasher {
	return &Hasher{
		time:        timeCost,
		memoryKiB:   memoryKiB,
		parallelism: parallelism,
	}
}

// Hash - one-way hash of the plaintext, PHC-encoded:
// $argon2id$v=19$m=65536,t=3,p=4$<salt>$<key>
func (h *Hasher) Hash(plain string) (string, error) {
	salt := make([]byte, argon2SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(plain), salt, h.time, h.memoryKiB, h.parallelism, argon2KeyLen)

	encoded := fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.memoryKiB,
		h.time,
		h.parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)
	return encoded, nil
}

// Verify - dispatches on the algorithm tag embedded in the stored hash.
func (h *Hasher) Verify(plain, encoded string) bool {
	switch {
	case strings.HasPrefix(encoded, "$argon2id$"):
		ok, err := verifyArgon2id(plain, encoded)
		return err == nil && ok
	case strings.HasPrefix(encoded, "$2a$"),
		strings.HasPrefix(encoded, "$2b$"),
		strings.HasPrefix(encoded, "$2y$"):
		return bcrypt.CompareHashAndPassword([]byte(encoded), []byte(plain)) == nil
	default:
		return false
	}
}

// verifyArgon2id recomputes the key with the parameters embedded in the
// stored hash, not the hasher's current ones, so cost changes never
// invalidate old hashes.
func verifyArgon2id(plain, encoded string) (bool, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return false, errMalformedHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return false, errMalformedHash
	}
	if version != argon2.Version {
		return false, errMalformedHash
	}

	var memoryKiB, timeCost uint32
	var parallelism uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memoryKiB, &timeCost, &parallelism); err != nil {
		return false, errMalformedHash
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, errMalformedHash
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false, errMalformedHash
	}

	computed := argon2.IDKey([]byte(plain), salt, timeCost, memoryKiB, parallelism, uint32(len(key)))
	return subtle.ConstantTimeCompare(key, computed) == 1, nil
}
