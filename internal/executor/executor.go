package executor

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"syscall"

	"github.com/YellowKidokc/File-Organization/internal/logging"
	"github.com/YellowKidokc/File-Organization/internal/plan"
	"github.com/YellowKidokc/File-Organization/internal/services"
)

// Status represents the lifecycle of an apply run.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// Execution captures the observable state of an apply run. Step is the index
// of the action currently (or last) being applied; after a fully successful
// run it equals the number of actions. Completed holds the successfully
// applied prefix in order, which on failure tells the caller exactly which
// moves already happened.
type Execution struct {
	Status    Status
	Step      int
	Completed []plan.Action
	Err       error
}

func (e *Execution) fail(step int, err error) {
	e.Status = StatusFailed
	e.Step = step
	e.Err = err
}

// Run applies every action in the plan in order and stops at the first
// failure. There is no rollback: moves that completed before the failure stay
// in place and are reported via Completed. Cancellation between actions
// aborts the run the same way a move failure does.
func Run(ctx context.Context, logger *slog.Logger, p *plan.Plan) *Execution {
	if p == nil {
		p = &plan.Plan{}
	}
	log := logging.NewComponentLogger(logger, "executor")
	exec := &Execution{
		Status:    StatusPending,
		Completed: make([]plan.Action, 0, len(p.Actions)),
	}

	for i, action := range p.Actions {
		exec.Status = StatusInProgress
		exec.Step = i

		if err := ctx.Err(); err != nil {
			exec.fail(i, services.Wrap(services.ErrMove, "apply", "cancelled", action.Source, err))
			return exec
		}

		if err := moveFile(action.Source, action.Destination); err != nil {
			log.Error("move failed",
				logging.String("source", action.Source),
				logging.String("destination", action.Destination),
				logging.Error(err))
			exec.fail(i, err)
			return exec
		}

		log.Info("moved file",
			logging.String("source", action.Source),
			logging.String("destination", action.Destination),
			logging.String("category", action.Category))
		exec.Completed = append(exec.Completed, action)
	}

	exec.Status = StatusCompleted
	exec.Step = len(p.Actions)
	return exec
}

// moveFile renames source to destination, creating the destination's parent
// directory first. The destination must not exist: os.Rename replaces an
// existing file silently on POSIX, so the occupied check is explicit. The
// check-then-rename window is acceptable under the single-writer apply lock.
func moveFile(source, destination string) error {
	parent := filepath.Dir(destination)
	if err := os.MkdirAll(parent, 0o755); err != nil {
		return services.Wrap(services.ErrMove, "apply", "create category directory", parent, err)
	}

	if _, err := os.Lstat(destination); err == nil {
		return services.Wrap(services.ErrMove, "apply", "destination already exists", destination, nil)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return services.Wrap(services.ErrMove, "apply", "inspect destination", destination, err)
	}

	if err := os.Rename(source, destination); err != nil {
		detail := fmt.Sprintf("%s -> %s", source, destination)
		var linkErr *os.LinkError
		if errors.As(err, &linkErr) && errors.Is(linkErr.Err, syscall.EXDEV) {
			return services.Wrap(services.ErrMove, "apply", "rename crosses filesystems", detail, err)
		}
		return services.Wrap(services.ErrMove, "apply", "rename", detail, err)
	}
	return nil
}
