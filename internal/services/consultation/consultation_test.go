package consultation_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/fitcoach/internal/models"
	"github.com/magabrotheeeer/fitcoach/internal/services/consultation"
	"github.com/magabrotheeeer/fitcoach/internal/storage/memory"
)

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()
	svc := consultation.New(memory.New(), newNoopLogger())

	created, err := svc.Create(ctx, 7, models.DummyConsultation{
		ScheduledDate: "2026-09-15T10:00:00Z",
		Status:        models.ConsultationScheduled,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, 7, created.UserID)
	assert.Equal(t, time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC), created.ScheduledDate)
}

func TestService_CreateBadDate(t *testing.T) {
	ctx := context.Background()
	svc := consultation.New(memory.New(), newNoopLogger())

	_, err := svc.Create(ctx, 7, models.DummyConsultation{
		ScheduledDate: "15.09.2026",
		Status:        models.ConsultationScheduled,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid scheduled date")
}

func TestService_ListOnlyOwn(t *testing.T) {
	ctx := context.Background()
	svc := consultation.New(memory.New(), newNoopLogger())

	_, err := svc.Create(ctx, 1, models.DummyConsultation{
		ScheduledDate: "2026-09-15T10:00:00Z",
		Status:        models.ConsultationScheduled,
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, 2, models.DummyConsultation{
		ScheduledDate: "2026-09-16T10:00:00Z",
		Status:        models.ConsultationScheduled,
	})
	require.NoError(t, err)

	got, err := svc.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].UserID)
}
