package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/soumacoisa/backend/internal/models"
)

type SetIntentionRequest struct {
	Intention string `json:"intention" validate:"required,max=65535"`
}

type CompleteRequest struct {
	Completed *bool `json:"completed" validate:"required"`
}

type EntryResponse struct {
	ID        uuid.UUID `json:"id"`
	Date      string    `json:"date"`
	Intention string    `json:"intention"`
	Completed *bool     `json:"completed"`
	Skipped   bool      `json:"skipped"`
	CreatedAt string    `json:"createdAt"`
	UpdatedAt *string   `json:"updatedAt"`
}

func NewEntryResponse(e *models.DailyEntry) EntryResponse {
	var updated *string
	if e.UpdatedAt != nil {
		s := e.UpdatedAt.Format(time.RFC3339)
		updated = &s
	}
	return EntryResponse{
		ID:        e.ID,
		Date:      e.Day().Format("2006-01-02"),
		Intention: e.Intention,
		Completed: e.Completed.Bool(),
		Skipped:   e.Skipped,
		CreatedAt: e.CreatedAt.Format(time.RFC3339),
		UpdatedAt: updated,
	}
}

func NewEntryResponses(entries []models.DailyEntry) []EntryResponse {
	out := make([]EntryResponse, len(entries))
	for i := range entries {
		out[i] = NewEntryResponse(&entries[i])
	}
	return out
}

type MonthSummary struct {
	TotalDays    int `json:"total_days"`
	Completed    int `json:"completed"`
	NotCompleted int `json:"not_completed"`
	Skipped      int `json:"skipped"`
}

type MonthHistoryResponse struct {
	Month   string          `json:"month"`
	Entries []EntryResponse `json:"entries"`
	Summary MonthSummary    `json:"summary"`
}
