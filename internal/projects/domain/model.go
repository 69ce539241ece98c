package domain

import "time"

// Project is the persisted unit of work: a named set of tasks, timer
// columns, and elapsed-time measurements. It is storage-agnostic and
// shared across the repository, service, and HTTP layers.
type Project struct {
	ProjectName string                `json:"projectName"`
	ColumnNames []string              `json:"columnNames"`
	Rows        []TaskRow             `json:"rows"`
	TimerData   map[string]TimerEntry `json:"timerData"`
	SavedAt     time.Time             `json:"savedAt"`
}

// TaskRow is one timed task within a project.
type TaskRow struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TimerEntry holds one elapsed-time measurement in milliseconds. It is
// looked up by the composite key "{rowId}-{columnIndex}"; a missing key
// reads as zero elapsed time.
type TimerEntry struct {
	Time int64 `json:"time"`
}

// Summary is the per-record metadata returned by List.
type Summary struct {
	Filename    string    `json:"filename"`
	ProjectName string    `json:"projectName"`
	SavedAt     time.Time `json:"savedAt"`
	Columns     int       `json:"columns"`
	Rows        int       `json:"rows"`
}

// DisplayName returns the project name with the listing fallback applied.
func (p *Project) DisplayName() string {
	if p.ProjectName == "" {
		return "Unnamed Project"
	}
	return p.ProjectName
}

// TimerMillis returns the elapsed milliseconds recorded for a row and
// column index, defaulting to zero when no entry exists.
func (p *Project) TimerMillis(rowID string, col int) int64 {
	return p.TimerData[TimerKey(rowID, col)].Time
}

// Summarize derives the listing summary for a stored record.
func (p *Project) Summarize(filename string) Summary {
	return Summary{
		Filename:    filename,
		ProjectName: p.DisplayName(),
		SavedAt:     p.SavedAt,
		Columns:     len(p.ColumnNames),
		Rows:        len(p.Rows),
	}
}
