package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/soumacoisa/backend/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestProfileGet(t *testing.T) {
	db := newTestDB(t)
	svc := NewProfileService(db)
	user := newTestUser(t, db, "get@example.com", "UTC")

	got, err := svc.Get(user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, got.Email)

	_, err = svc.Get(uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestProfileUpdatePartialFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewProfileService(db)
	user := newTestUser(t, db, "patch@example.com", "UTC")

	updated, err := svc.Update(user.ID, &dto.UpdateProfileRequest{DisplayName: strPtr("New Name")})
	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.DisplayName)
	assert.Equal(t, "UTC", updated.Timezone)

	updated, err = svc.Update(user.ID, &dto.UpdateProfileRequest{Timezone: strPtr("Asia/Tokyo")})
	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.DisplayName)
	assert.Equal(t, "Asia/Tokyo", updated.Timezone)

	// Empty patch is a no-op.
	updated, err = svc.Update(user.ID, &dto.UpdateProfileRequest{})
	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.DisplayName)
}
