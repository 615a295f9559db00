package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// low-cost parameters keep the tests fast; verification reads parameters
// from the stored hash anyway
func testHasher() *Hasher {
	return NewHasher(1, 8*1024, 1)
}

func TestHashRoundTrip(t *testing.T) {
	h := testHasher()

	encoded, err := h.Hash("correct horse battery staple")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(encoded, "$argon2id$"))
	assert.NotEqual(t, "correct horse battery staple", encoded)
	assert.True(t, h.Verify("correct horse battery staple", encoded))
}

func TestVerifyWrongPassword(t *testing.T) {
	h := testHasher()

	encoded, err := h.Hash("right-password")
	require.NoError(t, err)

	assert.False(t, h.Verify("wrong-password", encoded))
	assert.False(t, h.Verify("", encoded))
}

func TestHashesAreSalted(t *testing.T) {
	h := testHasher()

	first, err := h.Hash("same password")
	require.NoError(t, err)
	second, err := h.Hash("same password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, h.Verify("same password", first))
	assert.True(t, h.Verify("same password", second))
}

func TestVerifyAcceptsDifferentCost(t *testing.T) {
	// hash with one set of work factors, verify with another; parameters
	// are decoded from the stored hash, not taken from the verifier
	heavier := NewHasher(2, 16*1024, 2)
	encoded, err := heavier.Hash("migrating password")
	require.NoError(t, err)

	assert.True(t, testHasher().Verify("migrating password", encoded))
}

func TestVerifyLegacyBcrypt(t *testing.T) {
	legacy, err := bcrypt.GenerateFromPassword([]byte("old password"), bcrypt.MinCost)
	require.NoError(t, err)

	h := testHasher()
	assert.True(t, h.Verify("old password", string(legacy)))
	assert.False(t, h.Verify("not the password", string(legacy)))
}

func TestVerifyRejectsMalformed(t *testing.T) {
	h := testHasher()

	tests := []struct {
		name    string
		encoded string
	}{
		{"empty", ""},
		{"plaintext", "password123"},
		{"unknown scheme", "$md5$abcdef"},
		{"truncated argon2id", "$argon2id$v=19$m=8192"},
		{"bad base64", "$argon2id$v=19$m=8192,t=1,p=1$!!!$!!!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, h.Verify("password123", tt.encoded))
		})
	}
}
