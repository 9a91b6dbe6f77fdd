package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidatePasswordPolicy(t *testing.T) {
	cases := []struct {
		name     string
		password string
		valid    bool
	}{
		{"meets every rule", "Consulta2024", true},
		{"too short", "Abc1", false},
		{"no uppercase", "consulta2024", false},
		{"no lowercase", "CONSULTA2024", false},
		{"no digit", "Consultoria", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.valid, ValidatePasswordPolicy(tc.password))
		})
	}
}

func TestTempPasswordFromIdentification(t *testing.T) {
	t.Run("Uses the last four characters", func(t *testing.T) {
		assert.Equal(t, "67892024", TempPasswordFromIdentification("1032456789"))
	})

	t.Run("Short identifications are used whole", func(t *testing.T) {
		assert.Equal(t, "912024", TempPasswordFromIdentification("91"))
	})
}

func TestPasswordHashing(t *testing.T) {
	t.Run("Hash verifies and never stores the plaintext", func(t *testing.T) {
		hashed, err := HashPassword("Consulta2024")
		assert.NoError(t, err)
		assert.NotContains(t, hashed, "Consulta2024")
		assert.True(t, CheckPasswordHash("Consulta2024", hashed))
		assert.False(t, CheckPasswordHash("consulta2024", hashed))
	})
}

func TestJWTRoundTrip(t *testing.T) {
	t.Run("Parse recovers the session id", func(t *testing.T) {
		token, err := GenerateJWT("session-abc", "test-secret", time.Hour)
		assert.NoError(t, err)

		sessionID, err := ParseJWT(token, "test-secret")
		assert.NoError(t, err)
		assert.Equal(t, "session-abc", sessionID)
	})

	t.Run("Wrong secret is rejected", func(t *testing.T) {
		token, err := GenerateJWT("session-abc", "test-secret", time.Hour)
		assert.NoError(t, err)

		_, err = ParseJWT(token, "other-secret")
		assert.Error(t, err)
	})

	t.Run("Expired token is rejected", func(t *testing.T) {
		token, err := GenerateJWT("session-abc", "test-secret", -time.Minute)
		assert.NoError(t, err)

		_, err = ParseJWT(token, "test-secret")
		assert.Error(t, err)
	})
}

func TestValidateNumericID(t *testing.T) {
	assert.True(t, ValidateNumericID("42"))
	assert.False(t, ValidateNumericID("0"), "ids start at one")
	assert.False(t, ValidateNumericID("007"))
	assert.False(t, ValidateNumericID("abc"))
	assert.False(t, ValidateNumericID(""))
	assert.False(t, ValidateNumericID("-3"))
}
