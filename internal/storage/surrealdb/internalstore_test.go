package surrealdb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattcarrick/advisor/internal/models"
)

func TestInternalStoreUserLifecycle(t *testing.T) {
	db := testDB(t)
	store := NewInternalStore(db, testLogger())
	ctx := context.Background()

	user := &models.InternalUser{
		UserID:       "priya",
		Email:        "priya@example.com",
		Name:         "Priya",
		PasswordHash: "bcrypt-hash",
		Role:         models.RoleUser,
		CreatedAt:    time.Now().UTC(),
	}

	require.NoError(t, store.SaveUser(ctx, user))

	got, err := store.GetUser(ctx, "priya")
	require.NoError(t, err)
	assert.Equal(t, "priya@example.com", got.Email)
	assert.Equal(t, models.RoleUser, got.Role)

	ids, err := store.ListUsers(ctx)
	require.NoError(t, err)
	assert.Contains(t, ids, "priya")

	require.NoError(t, store.DeleteUser(ctx, "priya"))

	_, err = store.GetUser(ctx, "priya")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestInternalStoreSystemKV(t *testing.T) {
	db := testDB(t)
	store := NewInternalStore(db, testLogger())
	ctx := context.Background()

	_, err := store.GetSystemKV(ctx, "gemini_api_key")
	assert.ErrorIs(t, err, models.ErrNotFound)

	require.NoError(t, store.SetSystemKV(ctx, "gemini_api_key", "secret"))

	value, err := store.GetSystemKV(ctx, "gemini_api_key")
	require.NoError(t, err)
	assert.Equal(t, "secret", value)

	// Overwrite in place
	require.NoError(t, store.SetSystemKV(ctx, "gemini_api_key", "rotated"))
	value, err = store.GetSystemKV(ctx, "gemini_api_key")
	require.NoError(t, err)
	assert.Equal(t, "rotated", value)
}
