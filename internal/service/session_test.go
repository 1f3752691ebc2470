package service

import (
	"context"
	"testing"
	"time"

	"minecoin/internal/model"
	"minecoin/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionService(t *testing.T) {
	runWithBackends(t, "Should resolve a fresh token to the current user record", func(t *testing.T, repos *repository.Repositories) {
		users := NewUserService(repos.Users)
		sessions := NewSessionService(repos.Users, time.Hour)
		ctx := context.Background()

		master, err := users.Login(ctx, "master", "master1234")
		require.NoError(t, err)

		token, err := sessions.Create(master)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		resolved, err := sessions.Resolve(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, master.ID, resolved.ID)
		assert.Equal(t, model.RoleMaster, resolved.Role)
	})

	runWithBackends(t, "Should reject unknown and revoked tokens", func(t *testing.T, repos *repository.Repositories) {
		users := NewUserService(repos.Users)
		sessions := NewSessionService(repos.Users, time.Hour)
		ctx := context.Background()

		_, err := sessions.Resolve(ctx, "sess_bogus")
		assert.ErrorIs(t, err, ErrInvalidSession)

		master, err := users.Login(ctx, "master", "master1234")
		require.NoError(t, err)
		token, err := sessions.Create(master)
		require.NoError(t, err)

		sessions.Delete(token)
		_, err = sessions.Resolve(ctx, token)
		assert.ErrorIs(t, err, ErrInvalidSession)
	})

	runWithBackends(t, "Should invalidate sessions of deleted users", func(t *testing.T, repos *repository.Repositories) {
		users := NewUserService(repos.Users)
		sessions := NewSessionService(repos.Users, time.Hour)
		ctx := context.Background()

		user, err := users.Register(ctx, aliceSignup())
		require.NoError(t, err)
		token, err := sessions.Create(user)
		require.NoError(t, err)

		deleted, err := users.Delete(ctx, user.ID)
		require.NoError(t, err)
		require.True(t, deleted)

		_, err = sessions.Resolve(ctx, token)
		assert.ErrorIs(t, err, ErrInvalidSession)
	})
}
