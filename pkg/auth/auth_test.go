package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)
	actor := Actor{UserID: 6, Username: "ana", Role: RoleStudent}

	token, exp, err := m.Issue(actor)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	got, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, actor, got)
}

func TestTokenManager_Rejects(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)
	token, _, err := m.Issue(Actor{UserID: 1, Username: "admin", Role: RoleStaff})
	require.NoError(t, err)

	t.Run("other secret", func(t *testing.T) {
		_, err := NewTokenManager("other", time.Hour).Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
	t.Run("expired", func(t *testing.T) {
		late := NewTokenManager("secret", time.Hour)
		late.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		_, err := late.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
	t.Run("garbage", func(t *testing.T) {
		_, err := m.Parse("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestActorContext(t *testing.T) {
	_, err := ActorFromContext(context.Background())
	assert.ErrorIs(t, err, ErrNoActor)

	ctx := WithActor(context.Background(), Actor{UserID: 2, Role: RoleStaff})
	a, err := ActorFromContext(ctx)
	require.NoError(t, err)
	assert.True(t, a.IsAdmin())
	assert.False(t, Actor{Role: RoleStudent}.IsAdmin())
}

func TestConfig_Validate(t *testing.T) {
	assert.ErrorIs(t, Config{TokenTTL: time.Hour}.Validate(), ErrWeakSecret)
	assert.ErrorIs(t, Config{Secret: "short", TokenTTL: time.Hour}.Validate(), ErrWeakSecret)
	assert.Error(t, Config{Secret: "0123456789abcdef", TokenTTL: 0}.Validate())
	assert.NoError(t, Config{Secret: "0123456789abcdef", TokenTTL: time.Hour}.Validate())
}
