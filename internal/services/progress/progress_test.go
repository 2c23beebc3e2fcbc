package progress_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/fitcoach/internal/models"
	"github.com/magabrotheeeer/fitcoach/internal/services/progress"
	"github.com/magabrotheeeer/fitcoach/internal/storage/memory"
)

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()
	svc := progress.New(memory.New(), newNoopLogger())

	created, err := svc.Create(ctx, 7, models.DummyProgress{
		Weight: 82,
		Date:   "2026-08-29T08:00:00Z",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, 7, created.UserID)
	assert.Equal(t, time.Date(2026, 8, 29, 8, 0, 0, 0, time.UTC), created.Date)
	require.NotNil(t, created.Weight)
	assert.Equal(t, 82, *created.Weight)
}

func TestService_CreateBadDate(t *testing.T) {
	ctx := context.Background()
	svc := progress.New(memory.New(), newNoopLogger())

	_, err := svc.Create(ctx, 7, models.DummyProgress{
		Weight: 82,
		Date:   "29.08.2026",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid date")
}

func TestService_ListOnlyOwn(t *testing.T) {
	ctx := context.Background()
	svc := progress.New(memory.New(), newNoopLogger())

	_, err := svc.Create(ctx, 1, models.DummyProgress{
		Weight: 82,
		Date:   "2026-08-29T08:00:00Z",
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, 2, models.DummyProgress{
		Weight: 90,
		Date:   "2026-08-30T08:00:00Z",
	})
	require.NoError(t, err)

	got, err := svc.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].UserID)
}
