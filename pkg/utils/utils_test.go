package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kasmi00/yatrimap-frontend/pkg/utils"
)

func TestJWTManager_RoundTrip(t *testing.T) {
	jm := utils.NewJWTManager("test-secret", 1)

	token, err := jm.GenerateToken(42, "trekker@example.com", "user")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := jm.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "trekker@example.com", claims.Email)
	assert.Equal(t, "user", claims.Role)
}

func TestJWTManager_RejectsWrongSecret(t *testing.T) {
	token, err := utils.NewJWTManager("secret-a", 1).GenerateToken(1, "a@b.com", "user")
	require.NoError(t, err)

	_, err = utils.NewJWTManager("secret-b", 1).ValidateToken(token)
	assert.Error(t, err)
}

func TestPasswordHasher(t *testing.T) {
	ph := utils.NewPasswordHasher(4) // minimum cost keeps the test fast

	hash, err := ph.Hash("himalaya123")
	require.NoError(t, err)
	assert.NotEqual(t, "himalaya123", hash)

	assert.True(t, ph.Compare(hash, "himalaya123"))
	assert.False(t, ph.Compare(hash, "himalaya124"))
}

func TestValidator_Email(t *testing.T) {
	v := utils.NewValidator()

	assert.True(t, v.ValidateEmail("guide@yatrimap.com"))
	assert.False(t, v.ValidateEmail("not-an-email"))
	assert.False(t, v.ValidateEmail("missing@tld"))
}

func TestValidator_SanitizeInput(t *testing.T) {
	v := utils.NewValidator()

	assert.Equal(t, "Pokhara", v.SanitizeInput("  Pokhara\x00\n"))
}

func TestImageFileName(t *testing.T) {
	name, err := utils.ImageFileName("annapurna sunrise.JPG")
	require.NoError(t, err)
	assert.True(t, len(name) > 4)
	assert.Equal(t, ".jpg", name[len(name)-4:])

	_, err = utils.ImageFileName("malware.exe")
	assert.Error(t, err)
}

func TestPagination(t *testing.T) {
	p := utils.NewPagination(3, 10, 45)

	assert.Equal(t, 20, p.GetOffset())
	assert.Equal(t, 5, p.TotalPages)
	assert.True(t, p.HasNextPage())
	assert.True(t, p.HasPrevPage())

	p = utils.NewPagination(0, 0, 0)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.Limit)
	assert.Equal(t, 1, p.TotalPages)
}
