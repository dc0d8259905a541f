package models

import "time"

// Workflow run statuses.
const (
	WorkflowRunning   = "running"
	WorkflowCompleted = "completed"
	WorkflowFailed    = "failed"
)

// WorkflowRun is the durable step log for orchestrated payment workflows.
// Each run records the last step that completed, so when a run dies between
// a remote mutation and the matching local write, an operator can see exactly
// how far it got and reconcile instead of guessing.
type WorkflowRun struct {
	ID        uint   `gorm:"primarykey"`
	RunID     string `gorm:"size:36;uniqueIndex;not null"`
	Workflow  string `gorm:"size:40;not null;index"`
	UserID    uint   `gorm:"index"`
	LastStep  string `gorm:"size:60"`
	Status    string `gorm:"size:20;default:'running'"`
	Detail    string `gorm:"size:300"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
