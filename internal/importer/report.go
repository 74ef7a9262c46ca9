package importer

import (
	"fmt"
	"time"
)

// Outcome is the result of importing one row.
type Outcome string

const (
	OutcomeCreated Outcome = "created"
	OutcomeUpdated Outcome = "updated"
	OutcomeSkipped Outcome = "skipped"
	// OutcomeChecked is reported for rows that passed checks in a dry run.
	OutcomeChecked Outcome = "checked"
)

// RowResult describes what happened to one row.
type RowResult struct {
	Line    int     `json:"line"`
	Outcome Outcome `json:"outcome"`
	// Reason is set for skipped rows.
	Reason string `json:"reason,omitempty"`
}

// Warning is a skipped row with its reason.
type Warning struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

func (w Warning) String() string {
	return fmt.Sprintf("row %d: %s", w.Line, w.Message)
}

// Report summarizes one import run.
type Report struct {
	RunID    string        `json:"run_id"`
	Importer string        `json:"importer"`
	DryRun   bool          `json:"dry_run"`
	Rows     int           `json:"rows"`
	Created  int           `json:"created"`
	Updated  int           `json:"updated"`
	Skipped  int           `json:"skipped"`
	Checked  int           `json:"checked,omitempty"`
	Duration time.Duration `json:"duration"`

	Warnings []Warning `json:"warnings,omitempty"`
	// DroppedWarnings counts warnings beyond the reporting cap.
	DroppedWarnings int `json:"dropped_warnings,omitempty"`

	maxWarnings int
}

func (r *Report) record(res RowResult) {
	r.Rows++
	switch res.Outcome {
	case OutcomeCreated:
		r.Created++
	case OutcomeUpdated:
		r.Updated++
	case OutcomeChecked:
		r.Checked++
	case OutcomeSkipped:
		r.Skipped++
		if r.maxWarnings > 0 && len(r.Warnings) >= r.maxWarnings {
			r.DroppedWarnings++
			return
		}
		r.Warnings = append(r.Warnings, Warning{Line: res.Line, Message: res.Reason})
	}
}

// String renders the aggregate counts.
func (r *Report) String() string {
	s := fmt.Sprintf("%s: %d rows, %d created, %d updated, %d skipped",
		r.Importer, r.Rows, r.Created, r.Updated, r.Skipped)
	if r.DryRun {
		s += fmt.Sprintf(", %d checked (dry run)", r.Checked)
	}
	return s
}
