package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("rahasia-banget")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "rahasia-banget", hash)

	require.NoError(t, CheckPasswordHash(hash, "rahasia-banget"))
	require.Error(t, CheckPasswordHash(hash, "password-salah"))
}

func TestHashPassword_TerlaluPendek(t *testing.T) {
	_, err := HashPassword("pendek")
	require.Error(t, err)
}

func TestHashPassword_HashBerbeda(t *testing.T) {
	// bcrypt pakai salt acak, dua hash dari password sama harus beda
	h1, err := HashPassword("rahasia-banget")
	require.NoError(t, err)
	h2, err := HashPassword("rahasia-banget")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}
