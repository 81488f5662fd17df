package services

import (
	"sync"
	"testing"
	"time"

	"github.com/soumacoisa/backend/internal/clock"
	"github.com/soumacoisa/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2024-06-10 23:30 UTC: the 10th in São Paulo, the 11th in Tokyo.
var testInstant = time.Date(2024, 6, 10, 23, 30, 0, 0, time.UTC)

func newEntryService(t *testing.T) (*EntryService, *models.User) {
	t.Helper()
	db := newTestDB(t)
	svc := NewEntryServiceWithClock(db, clock.Fixed(testInstant))
	user := newTestUser(t, db, "entry@example.com", "America/Sao_Paulo")
	return svc, user
}

func TestSetIntentionCreatesActiveEntry(t *testing.T) {
	svc, user := newEntryService(t)

	entry, created, err := svc.SetIntention(user, "write the report")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "write the report", entry.Intention)
	assert.Equal(t, models.CompletionUnset, entry.Completed)
	assert.False(t, entry.Skipped)
	assert.Equal(t, "2024-06-10", entry.Day().Format("2006-01-02"))
	assert.Nil(t, entry.UpdatedAt)
}

func TestSetIntentionUsesUserTimezone(t *testing.T) {
	db := newTestDB(t)
	svc := NewEntryServiceWithClock(db, clock.Fixed(testInstant))
	tokyo := newTestUser(t, db, "tokyo@example.com", "Asia/Tokyo")

	entry, _, err := svc.SetIntention(tokyo, "study kanji")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-11", entry.Day().Format("2006-01-02"))
}

func TestSetIntentionRejectsInvalidTimezone(t *testing.T) {
	db := newTestDB(t)
	svc := NewEntryServiceWithClock(db, clock.Fixed(testInstant))
	user := newTestUser(t, db, "broken@example.com", "Not/A_Zone")

	_, _, err := svc.SetIntention(user, "anything")
	require.ErrorIs(t, err, clock.ErrInvalidTimezone)
}

func TestSetIntentionConflictsWithExistingEntry(t *testing.T) {
	svc, user := newEntryService(t)

	first, _, err := svc.SetIntention(user, "original")
	require.NoError(t, err)

	_, _, err = svc.SetIntention(user, "replacement")
	require.ErrorIs(t, err, ErrEntryExists)

	// The existing row must be untouched.
	current, err := svc.Today(user)
	require.NoError(t, err)
	assert.Equal(t, first.ID, current.ID)
	assert.Equal(t, "original", current.Intention)
}

func TestSetIntentionReclaimsSkippedDay(t *testing.T) {
	svc, user := newEntryService(t)

	skipped, created, err := svc.Skip(user)
	require.NoError(t, err)
	assert.True(t, created)

	entry, created, err := svc.SetIntention(user, "second wind")
	require.NoError(t, err)
	assert.False(t, created, "must update the skipped row, not create a new one")
	assert.Equal(t, skipped.ID, entry.ID)
	assert.Equal(t, "second wind", entry.Intention)
	assert.False(t, entry.Skipped)
	assert.Equal(t, models.CompletionUnset, entry.Completed)
	assert.NotNil(t, entry.UpdatedAt)
}

func TestSetCompleted(t *testing.T) {
	svc, user := newEntryService(t)

	_, _, err := svc.SetIntention(user, "finish chapter")
	require.NoError(t, err)

	entry, err := svc.SetCompleted(user, true)
	require.NoError(t, err)
	assert.Equal(t, models.CompletionDone, entry.Completed)

	entry, err = svc.SetCompleted(user, false)
	require.NoError(t, err)
	assert.Equal(t, models.CompletionMissed, entry.Completed)
	assert.Equal(t, "finish chapter", entry.Intention)
}

func TestSetCompletedWithoutEntry(t *testing.T) {
	svc, user := newEntryService(t)

	_, err := svc.SetCompleted(user, true)
	require.ErrorIs(t, err, ErrEntryNotFound)
}

func TestSetCompletedOnSkippedDay(t *testing.T) {
	svc, user := newEntryService(t)

	_, _, err := svc.Skip(user)
	require.NoError(t, err)

	_, err = svc.SetCompleted(user, true)
	require.ErrorIs(t, err, ErrEntryNotFound)
}

func TestSkipCreatesPlaceholder(t *testing.T) {
	svc, user := newEntryService(t)

	entry, created, err := svc.Skip(user)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "", entry.Intention)
	assert.True(t, entry.Skipped)
	assert.Equal(t, models.CompletionUnset, entry.Completed)
}

func TestSkipPreservesExistingEntry(t *testing.T) {
	svc, user := newEntryService(t)

	_, _, err := svc.SetIntention(user, "go for a run")
	require.NoError(t, err)
	_, err = svc.SetCompleted(user, true)
	require.NoError(t, err)

	entry, created, err := svc.Skip(user)
	require.NoError(t, err)
	assert.False(t, created)
	assert.True(t, entry.Skipped)
	assert.Equal(t, "go for a run", entry.Intention)
	assert.Equal(t, models.CompletionDone, entry.Completed)
}

func TestConcurrentCreateOnlyOneSucceeds(t *testing.T) {
	svc, user := newEntryService(t)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _, errs[i] = svc.SetIntention(user, "race me")
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			require.ErrorIs(t, err, ErrEntryExists)
		}
	}
	assert.Equal(t, 1, succeeded)

	var count int64
	require.NoError(t, svc.db.Model(&models.DailyEntry{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestMonthWindowHandlesLeapYear(t *testing.T) {
	svc, user := newEntryService(t)

	seedEntry(t, svc.db, user.ID, "2024-01-31", models.CompletionUnset, false)
	seedEntry(t, svc.db, user.ID, "2024-02-01", models.CompletionDone, false)
	seedEntry(t, svc.db, user.ID, "2024-02-29", models.CompletionMissed, false)
	seedEntry(t, svc.db, user.ID, "2024-03-01", models.CompletionUnset, false)

	entries, err := svc.Month(user, "2024-02")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "2024-02-01", entries[0].Day().Format("2006-01-02"))
	assert.Equal(t, "2024-02-29", entries[1].Day().Format("2006-01-02"))
}

func TestMonthRejectsMalformedInput(t *testing.T) {
	svc, user := newEntryService(t)

	for _, month := range []string{"", "2024", "2024-2", "2024-13", "feb-2024", "2024-02-01"} {
		_, err := svc.Month(user, month)
		assert.ErrorIs(t, err, ErrInvalidMonth, "month %q", month)
	}
}

func TestMonthScopedToUser(t *testing.T) {
	svc, user := newEntryService(t)
	other := newTestUser(t, svc.db, "other@example.com", "UTC")
	seedEntry(t, svc.db, other.ID, "2024-02-10", models.CompletionDone, false)

	entries, err := svc.Month(user, "2024-02")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRecentOrderingAndLimit(t *testing.T) {
	svc, user := newEntryService(t)

	for day := 1; day <= 10; day++ {
		seedEntry(t, svc.db, user.ID, time.Date(2024, 5, day, 0, 0, 0, 0, time.UTC).Format("2006-01-02"), models.CompletionUnset, false)
	}

	entries, err := svc.Recent(user, 0)
	require.NoError(t, err)
	require.Len(t, entries, DefaultRecentLimit)
	assert.Equal(t, "2024-05-10", entries[0].Day().Format("2006-01-02"))
	assert.Equal(t, "2024-05-04", entries[6].Day().Format("2006-01-02"))
}

func TestSummarizePartitionsEntries(t *testing.T) {
	entries := []models.DailyEntry{
		{Completed: models.CompletionDone},
		{Completed: models.CompletionDone},
		{Completed: models.CompletionMissed},
		{Skipped: true},
		// Skipped wins even when a completion value is set.
		{Completed: models.CompletionDone, Skipped: true},
		{Completed: models.CompletionUnset},
	}

	summary := Summarize(entries)
	assert.Equal(t, 6, summary.TotalDays)
	assert.Equal(t, 2, summary.Completed)
	assert.Equal(t, 1, summary.NotCompleted)
	assert.Equal(t, 2, summary.Skipped)
}
