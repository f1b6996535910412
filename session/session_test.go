package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMintAndIdentity(t *testing.T) {
	token, err := Mint(42, "student", "secret", time.Hour)
	require.NoError(t, err)

	userID, role, err := Identity(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, 42, userID)
	assert.Equal(t, "student", role)
}

func TestIdentityRejectsWrongSecret(t *testing.T) {
	token, err := Mint(42, "student", "secret", time.Hour)
	require.NoError(t, err)

	_, _, err = Identity(token, "other")
	assert.Error(t, err)
}

func TestIdentityRejectsExpiredToken(t *testing.T) {
	token, err := Mint(42, "student", "secret", -time.Minute)
	require.NoError(t, err)

	_, _, err = Identity(token, "secret")
	assert.Error(t, err)
}

func TestStaticSource(t *testing.T) {
	assert.Equal(t, "abc", Static("abc").Token())
	assert.Equal(t, "", Anonymous.Token())
}
