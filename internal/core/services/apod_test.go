package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astroview-labs/astroview-cli/internal/core/domain"
)

// mockImageOfDay implements driven.ImageOfDay for testing.
type mockImageOfDay struct {
	entry     *domain.APODEntry
	batch     []domain.APODEntry
	err       error
	lastDate  string
	lastCount int
}

func (m *mockImageOfDay) Today(_ context.Context) (*domain.APODEntry, error) {
	return m.entry, m.err
}

func (m *mockImageOfDay) ByDate(_ context.Context, date string) (*domain.APODEntry, error) {
	m.lastDate = date
	return m.entry, m.err
}

func (m *mockImageOfDay) Random(_ context.Context, count int) ([]domain.APODEntry, error) {
	m.lastCount = count
	return m.batch, m.err
}

func TestApodService_Today(t *testing.T) {
	entry := &domain.APODEntry{Title: "Pillars of Creation", MediaType: "image"}
	svc := NewApodService(&mockImageOfDay{entry: entry})

	got := svc.Today(context.Background())
	require.NotNil(t, got)
	assert.Equal(t, "Pillars of Creation", got.Title)
}

func TestApodService_TodayFailureReturnsNil(t *testing.T) {
	svc := NewApodService(&mockImageOfDay{err: errors.New("rate limited")})

	assert.Nil(t, svc.Today(context.Background()))
}

func TestApodService_ByDateNormalizesSeparators(t *testing.T) {
	client := &mockImageOfDay{entry: &domain.APODEntry{Date: "2025-01-01"}}
	svc := NewApodService(client)

	_, err := svc.ByDate(context.Background(), "2025/01/01")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-01", client.lastDate)
}

func TestApodService_ByDateRejectsGarbage(t *testing.T) {
	svc := NewApodService(&mockImageOfDay{})

	_, err := svc.ByDate(context.Background(), "yesterday-ish")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestApodService_RandomUsesFixedBatch(t *testing.T) {
	client := &mockImageOfDay{batch: make([]domain.APODEntry, RandomAPODBatchSize)}
	svc := NewApodService(client)

	batch, err := svc.Random(context.Background())
	require.NoError(t, err)
	assert.Len(t, batch, RandomAPODBatchSize)
	assert.Equal(t, RandomAPODBatchSize, client.lastCount)
}
