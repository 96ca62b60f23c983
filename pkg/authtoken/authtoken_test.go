package authtoken

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_IssueAndParse(t *testing.T) {
	mgr := NewManager("test-secret", time.Hour)

	token, err := mgr.Issue(42, "admin", "admin@condo.local")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := mgr.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "admin@condo.local", claims.Email)
}

func TestManager_ParseGarbage(t *testing.T) {
	mgr := NewManager("test-secret", time.Hour)

	_, err := mgr.Parse("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_ParseWrongSecret(t *testing.T) {
	token, err := NewManager("secret-one", time.Hour).Issue(1, "operator", "op@condo.local")
	require.NoError(t, err)

	_, err = NewManager("secret-two", time.Hour).Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_ParseExpired(t *testing.T) {
	mgr := NewManager("test-secret", -time.Minute)

	token, err := mgr.Issue(1, "operator", "op@condo.local")
	require.NoError(t, err)

	_, err = mgr.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
