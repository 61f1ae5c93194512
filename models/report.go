package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Action identifies the bulk operation a report belongs to
type Action string

const (
	ActionCreate   Action = "create"
	ActionOrganize Action = "organize"
)

// Status of a single item in a bulk run
type Status string

const (
	StatusCreated Status = "created"
	StatusSkipped Status = "skipped"
	StatusMoved   Status = "moved"
	StatusError   Status = "error"
)

// Outcome is the result for one folder or file
type Outcome struct {
	Name   string `json:"name"`
	Source string `json:"source,omitempty"`
	Dest   string `json:"dest,omitempty"`
	Status Status `json:"status"`
	Err    string `json:"error,omitempty"`
}

// Report aggregates the outcomes of one create or organize run
type Report struct {
	ID       string    `json:"id"`
	Action   Action    `json:"action"`
	Target   string    `json:"target"`
	Started  time.Time `json:"started"`
	Finished time.Time `json:"finished"`
	Created  int       `json:"created"`
	Skipped  int       `json:"skipped"`
	Moved    int       `json:"moved"`
	Errors   int       `json:"errors"`
	Canceled bool      `json:"canceled,omitempty"`
	Items    []Outcome `json:"items,omitempty"`
}

// NewReport starts a report with a unique run ID
func NewReport(action Action, target string) *Report {
	return &Report{
		ID:      uuid.New().String(),
		Action:  action,
		Target:  target,
		Started: time.Now(),
	}
}

// Add records an outcome and bumps the matching counter
func (r *Report) Add(o Outcome) {
	switch o.Status {
	case StatusCreated:
		r.Created++
	case StatusSkipped:
		r.Skipped++
	case StatusMoved:
		r.Moved++
	case StatusError:
		r.Errors++
	}
	r.Items = append(r.Items, o)
}

// Finish stamps the end time
func (r *Report) Finish() {
	r.Finished = time.Now()
}

// Failures returns only the errored items
func (r *Report) Failures() []Outcome {
	var out []Outcome
	for _, it := range r.Items {
		if it.Status == StatusError {
			out = append(out, it)
		}
	}
	return out
}

// Summary formats the counts the way the completion dialog shows them
func (r *Report) Summary() string {
	switch r.Action {
	case ActionOrganize:
		return fmt.Sprintf("Moved: %d\nErrors: %d\n\nTarget:\n%s", r.Moved, r.Errors, r.Target)
	default:
		return fmt.Sprintf("Created: %d\nSkipped: %d\nErrors: %d\n\nPath:\n%s", r.Created, r.Skipped, r.Errors, r.Target)
	}
}

// LogLine renders an outcome as one line of the activity log
func (o Outcome) LogLine() string {
	switch o.Status {
	case StatusCreated:
		return "✅ Created: " + o.Dest
	case StatusSkipped:
		return "⚠️ Exists (skipped): " + o.Dest
	case StatusMoved:
		return fmt.Sprintf("📦 Moved: %s -> %s", o.Name, o.Dest)
	default:
		target := o.Dest
		if target == "" {
			target = o.Name
		}
		return fmt.Sprintf("❌ Error: %s -> %s", target, o.Err)
	}
}
