package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateVerificationCode(t *testing.T) {
	code, err := GenerateVerificationCode()
	require.NoError(t, err)
	assert.Len(t, code, 6)
	for _, ch := range code {
		assert.True(t, ch >= '0' && ch <= '9')
	}
}

func TestEmailVerification_IsValid(t *testing.T) {
	v := EmailVerification{
		Code:      "123456",
		ExpiresAt: time.Now().Add(10 * time.Minute),
	}
	assert.True(t, v.IsValid())

	v.Used = true
	assert.False(t, v.IsValid())

	v.Used = false
	v.ExpiresAt = time.Now().Add(-time.Minute)
	assert.True(t, v.IsExpired())
	assert.False(t, v.IsValid())
}
