// Package workflow keeps a durable log of how far each payment workflow got.
// The orchestrators pair remote mutations with local writes without
// compensating transactions, so when a process dies between the two halves
// this log is what tells an operator which runs need reconciliation.
package workflow

import (
	"context"
	"log"

	"vendora/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Recorder starts workflow runs. Recording is best-effort: a failed log
// write never fails the workflow it describes.
type Recorder interface {
	Begin(ctx context.Context, workflow string, userID uint) Run
}

// Run tracks one workflow execution.
type Run interface {
	// Step marks a step as completed.
	Step(ctx context.Context, name string)
	// Fail marks the run failed at the given step.
	Fail(ctx context.Context, step, detail string)
	// Complete marks the run finished.
	Complete(ctx context.Context)
}

type dbRecorder struct {
	db *gorm.DB
}

func NewRecorder(db *gorm.DB) Recorder {
	return &dbRecorder{db: db}
}

func (r *dbRecorder) Begin(ctx context.Context, workflow string, userID uint) Run {
	run := &dbRun{
		db: r.db,
		row: models.WorkflowRun{
			RunID:    uuid.NewString(),
			Workflow: workflow,
			UserID:   userID,
			Status:   models.WorkflowRunning,
		},
	}
	if err := r.db.WithContext(ctx).Create(&run.row).Error; err != nil {
		log.Printf("workflow: begin %s: %v", workflow, err)
		run.broken = true
	}
	return run
}

type dbRun struct {
	db     *gorm.DB
	row    models.WorkflowRun
	broken bool
}

func (r *dbRun) Step(ctx context.Context, name string) {
	r.row.LastStep = name
	r.save(ctx)
}

func (r *dbRun) Fail(ctx context.Context, step, detail string) {
	r.row.Status = models.WorkflowFailed
	r.row.Detail = step + ": " + detail
	r.save(ctx)
}

func (r *dbRun) Complete(ctx context.Context) {
	r.row.Status = models.WorkflowCompleted
	r.save(ctx)
}

func (r *dbRun) save(ctx context.Context) {
	if r.broken {
		return
	}
	if err := r.db.WithContext(ctx).Save(&r.row).Error; err != nil {
		log.Printf("workflow: update run %s: %v", r.row.RunID, err)
	}
}

// NoopRecorder discards all workflow records. Used in tests.
type NoopRecorder struct{}

func (NoopRecorder) Begin(ctx context.Context, workflow string, userID uint) Run { return noopRun{} }

type noopRun struct{}

func (noopRun) Step(ctx context.Context, name string)         {}
func (noopRun) Fail(ctx context.Context, step, detail string) {}
func (noopRun) Complete(ctx context.Context)                  {}
