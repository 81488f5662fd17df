package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/soumacoisa/backend/internal/clock"
	"github.com/soumacoisa/backend/internal/dto"
	"github.com/soumacoisa/backend/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrEntryExists   = errors.New("an entry already exists for today")
	ErrEntryNotFound = errors.New("no entry exists for today")
	ErrInvalidMonth  = errors.New("invalid month format, use YYYY-MM")
)

// DefaultRecentLimit bounds /history/recent.
const DefaultRecentLimit = 7

// EntryService owns the daily-entry lifecycle. Every query is scoped by the
// owning user's ID; "today" is always computed in that user's timezone.
type EntryService struct {
	db  *gorm.DB
	clk clock.Clock
}

func NewEntryService(db *gorm.DB) *EntryService {
	return &EntryService{db: db, clk: clock.System}
}

func NewEntryServiceWithClock(db *gorm.DB, clk clock.Clock) *EntryService {
	return &EntryService{db: db, clk: clk}
}

func (s *EntryService) todayFor(user *models.User) (time.Time, error) {
	return clock.Today(s.clk.Now(), user.Timezone)
}

// FindByUserAndDate returns the entry for the exact (user, date) pair, or nil
// when none exists.
func (s *EntryService) FindByUserAndDate(userID uuid.UUID, day time.Time) (*models.DailyEntry, error) {
	var entry models.DailyEntry
	err := s.db.Where("user_id = ? AND date = ?", userID, datatypes.Date(day)).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// Today returns the user's entry for the current day in their timezone, or
// nil when the day is still untouched.
func (s *EntryService) Today(user *models.User) (*models.DailyEntry, error) {
	day, err := s.todayFor(user)
	if err != nil {
		return nil, err
	}
	return s.FindByUserAndDate(user.ID, day)
}

// SetIntention records today's intention. A skipped day is reclaimed in place
// (same row, skipped and completed cleared); any other existing entry is a
// conflict. The returned bool reports whether a new row was created.
func (s *EntryService) SetIntention(user *models.User, intention string) (*models.DailyEntry, bool, error) {
	day, err := s.todayFor(user)
	if err != nil {
		return nil, false, err
	}

	existing, err := s.FindByUserAndDate(user.ID, day)
	if err != nil {
		return nil, false, err
	}

	if existing != nil && !existing.Skipped {
		return nil, false, ErrEntryExists
	}

	if existing != nil {
		now := s.clk.Now()
		existing.Intention = intention
		existing.Skipped = false
		existing.Completed = models.CompletionUnset
		existing.UpdatedAt = &now
		if err := s.db.Save(existing).Error; err != nil {
			return nil, false, err
		}
		return existing, false, nil
	}

	entry := models.DailyEntry{
		ID:        uuid.New(),
		UserID:    user.ID,
		Date:      datatypes.Date(day),
		Intention: intention,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		// A concurrent request won the race for today's row.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, false, ErrEntryExists
		}
		return nil, false, err
	}
	return &entry, true, nil
}

// SetCompleted marks today's active entry as done or missed. Absent and
// skipped days are rejected: there is nothing attempted to grade.
func (s *EntryService) SetCompleted(user *models.User, completed bool) (*models.DailyEntry, error) {
	day, err := s.todayFor(user)
	if err != nil {
		return nil, err
	}

	existing, err := s.FindByUserAndDate(user.ID, day)
	if err != nil {
		return nil, err
	}
	if existing == nil || existing.Skipped {
		return nil, ErrEntryNotFound
	}

	now := s.clk.Now()
	existing.Completed = models.CompletionFromBool(&completed)
	existing.UpdatedAt = &now
	if err := s.db.Save(existing).Error; err != nil {
		return nil, err
	}
	return existing, nil
}

// Skip marks today as intentionally not attempted. With no existing entry a
// placeholder row is created (empty intention); an existing entry keeps its
// intention and completion value. The returned bool reports creation.
func (s *EntryService) Skip(user *models.User) (*models.DailyEntry, bool, error) {
	day, err := s.todayFor(user)
	if err != nil {
		return nil, false, err
	}

	existing, err := s.FindByUserAndDate(user.ID, day)
	if err != nil {
		return nil, false, err
	}

	if existing == nil {
		entry := models.DailyEntry{
			ID:      uuid.New(),
			UserID:  user.ID,
			Date:    datatypes.Date(day),
			Skipped: true,
		}
		err := s.db.Create(&entry).Error
		if err == nil {
			return &entry, true, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, false, err
		}
		// Lost the create race; fall through and skip the winner's row.
		existing, err = s.FindByUserAndDate(user.ID, day)
		if err != nil {
			return nil, false, err
		}
		if existing == nil {
			return nil, false, ErrEntryNotFound
		}
	}

	now := s.clk.Now()
	existing.Skipped = true
	existing.UpdatedAt = &now
	if err := s.db.Save(existing).Error; err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

// Recent returns the user's most recent entries by date descending.
func (s *EntryService) Recent(user *models.User, limit int) ([]models.DailyEntry, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	var entries []models.DailyEntry
	err := s.db.Where("user_id = ?", user.ID).
		Order("date DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}

// Month returns the user's entries for a "YYYY-MM" month, date ascending. The
// window is inclusive and derived from the month's actual last day.
func (s *EntryService) Month(user *models.User, month string) ([]models.DailyEntry, error) {
	start, err := time.Parse("2006-01", month)
	if err != nil {
		return nil, ErrInvalidMonth
	}
	end := start.AddDate(0, 1, -1)

	var entries []models.DailyEntry
	err = s.db.Where("user_id = ? AND date >= ? AND date <= ?",
		user.ID, datatypes.Date(start), datatypes.Date(end)).
		Order("date ASC").
		Find(&entries).Error
	return entries, err
}

// Summarize partitions a month's entries: skipped wins over the completion
// flag, and entries with completion unset count toward none of the buckets
// except the day total.
func Summarize(entries []models.DailyEntry) dto.MonthSummary {
	summary := dto.MonthSummary{TotalDays: len(entries)}
	for i := range entries {
		switch {
		case entries[i].Skipped:
			summary.Skipped++
		case entries[i].Completed == models.CompletionDone:
			summary.Completed++
		case entries[i].Completed == models.CompletionMissed:
			summary.NotCompleted++
		}
	}
	return summary
}
