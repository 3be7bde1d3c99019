package results

import (
	"time"

	"github.com/google/uuid"

	"quizmark/internal/session"
)

// Record is the persisted summary of one quiz session.
type Record struct {
	RunID      string            `json:"run_id"`
	SessionID  string            `json:"session_id"`
	QuizPath   string            `json:"quiz_path"`
	Seed       uint64            `json:"seed"`
	StartedAt  time.Time         `json:"started_at"`
	FinishedAt time.Time         `json:"finished_at"`
	Complete   bool              `json:"complete"`
	Score      float64           `json:"score"`
	Total      float64           `json:"total"`
	Percentage float64           `json:"percentage"`
	Outcomes   []session.Outcome `json:"outcomes"`
}

// NewRecord builds a record from a session result. complete is false when
// the session ended before every question was answered.
func NewRecord(runID, quizPath string, startedAt, finishedAt time.Time, result session.Result, complete bool) Record {
	outcomes := result.Outcomes
	if outcomes == nil {
		outcomes = []session.Outcome{}
	}
	return Record{
		RunID:      runID,
		SessionID:  uuid.NewString(),
		QuizPath:   quizPath,
		Seed:       result.Seed,
		StartedAt:  startedAt.UTC(),
		FinishedAt: finishedAt.UTC(),
		Complete:   complete,
		Score:      result.Score,
		Total:      result.Total,
		Percentage: result.Percentage(),
		Outcomes:   outcomes,
	}
}
