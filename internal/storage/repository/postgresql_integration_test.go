package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/fitcoach/internal/models"
	"github.com/magabrotheeeer/fitcoach/internal/storage"
)

func TestStorage_UserLifecycle(t *testing.T) {
	store, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()

	created, err := store.CreateUser(ctx, models.User{
		Username:     "testuser",
		PasswordHash: "hashedpassword",
		Email:        "test@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)

	second, err := store.CreateUser(ctx, models.User{
		Username:     "seconduser",
		PasswordHash: "hashedpassword",
		Email:        "second@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, second.ID)

	byName, err := store.GetUserByUsername(ctx, "testuser")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)
	assert.Equal(t, "test@example.com", byName.Email)

	_, err = store.GetUserByUsername(ctx, "ghost")
	require.ErrorIs(t, err, storage.ErrNotFound)

	all, err := store.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "testuser", all[0].Username)
	assert.Equal(t, "seconduser", all[1].Username)
}

func TestStorage_UpdateUserPackage(t *testing.T) {
	store, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()
	factory := NewTestDataFactory(store)
	id := factory.CreateUser(t, "client", "client@example.com", "hashedpassword", false)

	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 3, 0)

	updated, err := store.UpdateUserPackage(ctx, id, "quarterly", start, end)
	require.NoError(t, err)
	require.NotNil(t, updated.CurrentPackage)
	assert.Equal(t, "quarterly", *updated.CurrentPackage)
	require.NotNil(t, updated.PackageEndDate)
	assert.True(t, updated.PackageEndDate.Equal(end))

	_, err = store.UpdateUserPackage(ctx, 999, "quarterly", start, end)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestStorage_DeleteUserCascade(t *testing.T) {
	store, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()
	factory := NewTestDataFactory(store)

	when := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	victim := factory.CreateUser(t, "victim", "victim@example.com", "hashedpassword", false)
	keeper := factory.CreateUser(t, "keeper", "keeper@example.com", "hashedpassword", false)

	factory.CreateConsultation(t, victim, when, models.ConsultationScheduled)
	factory.CreateProgress(t, victim, when, 80)
	factory.CreateConsultation(t, keeper, when, models.ConsultationScheduled)
	factory.CreateProgress(t, keeper, when, 75)

	require.NoError(t, store.DeleteUser(ctx, victim))

	_, err := store.GetUser(ctx, victim)
	require.ErrorIs(t, err, storage.ErrNotFound)
	assert.Equal(t, 0, factory.CountRows(t, "consultations", victim))
	assert.Equal(t, 0, factory.CountRows(t, "progress", victim))

	// Чужие записи не затронуты
	assert.Equal(t, 1, factory.CountRows(t, "consultations", keeper))
	assert.Equal(t, 1, factory.CountRows(t, "progress", keeper))
}

func TestStorage_ListConsultationsBetween(t *testing.T) {
	store, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()
	factory := NewTestDataFactory(store)

	userID := factory.CreateUser(t, "client", "client@example.com", "hashedpassword", false)

	from := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	factory.CreateConsultation(t, userID, from.Add(10*time.Hour), models.ConsultationScheduled)
	factory.CreateConsultation(t, userID, from.Add(12*time.Hour), models.ConsultationCancelled)
	factory.CreateConsultation(t, userID, from.AddDate(0, 0, 2), models.ConsultationScheduled)

	got, err := store.ListConsultationsBetween(ctx, from, to)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, models.ConsultationScheduled, got[0].Status)
	assert.True(t, got[0].ScheduledDate.Equal(from.Add(10*time.Hour)))
}
