package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"github.com/YellowKidokc/File-Organization/internal/executor"
	"github.com/YellowKidokc/File-Organization/internal/logging"
	"github.com/YellowKidokc/File-Organization/internal/plan"
	"github.com/YellowKidokc/File-Organization/internal/scan"
	"github.com/YellowKidokc/File-Organization/internal/services"
	"github.com/YellowKidokc/File-Organization/internal/services/prompt"
)

const (
	outputText  = "text"
	outputTable = "table"
	outputJSON  = "json"
)

type organizeOptions struct {
	excludes   []string
	apply      bool
	showPrompt bool
	output     string
}

// planPayload is the JSON shape of a dry run, for scripting.
type planPayload struct {
	Root       string          `json:"root"`
	Actions    []plan.Action   `json:"actions"`
	TotalBytes int64           `json:"total_bytes"`
	Request    *prompt.Request `json:"request,omitempty"`
}

func runOrganize(cmd *cobra.Command, cmdCtx *commandContext, root string, opts *organizeOptions) error {
	out := cmd.OutOrStdout()

	output := strings.ToLower(strings.TrimSpace(opts.output))
	if output == "" {
		output = outputText
	}
	switch output {
	case outputText, outputTable, outputJSON:
	default:
		return fmt.Errorf("unsupported output format %q (expected text, table, or json)", opts.output)
	}

	cfg, err := cmdCtx.ensureConfig()
	if err != nil {
		return err
	}

	// Credential gating happens before any traversal: a run that cannot
	// assemble its payload should not walk the tree first.
	if opts.showPrompt {
		if issues := cfg.CredentialIssues(); len(issues) > 0 {
			errOut := cmd.ErrOrStderr()
			fmt.Fprintln(errOut, "Configuration issues detected:")
			for _, issue := range issues {
				fmt.Fprintf(errOut, "- %s\n", issue)
			}
			return services.Wrap(services.ErrConfiguration, "cli", "show prompt", "missing provider credentials", nil)
		}
	}

	logger, logPath, err := logging.NewFromConfig(cfg, cmdCtx.runID)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	logging.CleanupOldLogs(logger, cfg.Logging.RetentionDays,
		logging.RetentionTarget{Dir: cfg.Paths.LogDir, Pattern: "organizer-*.log", Exclude: []string{logPath}},
	)

	runCtx := services.WithRunID(cmd.Context(), cmdCtx.runID)
	logger = logging.WithContext(runCtx, logger)

	excludes := scan.NewExcludeSet(append(append([]string(nil), cfg.Scan.Exclude...), opts.excludes...)...)
	result, err := scan.Collect(runCtx, logger, root, excludes)
	if err != nil {
		return err
	}

	p, err := plan.Build(result.Root, result.Entries)
	if err != nil {
		return err
	}

	var request *prompt.Request
	if opts.showPrompt {
		inventory, err := scan.Inventory(result.Root, result.Entries)
		if err != nil {
			return err
		}
		req, err := prompt.Build(cfg, inventory)
		if err != nil {
			return err
		}
		request = &req
	}

	if opts.apply {
		if err := applyPlan(runCtx, cmd, logger, cfg.LockPath(), p); err != nil {
			return err
		}
	} else {
		switch output {
		case outputTable:
			if len(p.Actions) == 0 {
				fmt.Fprintln(out, plan.EmptyMessage)
			} else {
				fmt.Fprintln(out, renderPlanTable(p))
			}
		case outputJSON:
			return writeJSON(cmd, planPayload{
				Root:       p.Root,
				Actions:    p.Actions,
				TotalBytes: p.TotalBytes(),
				Request:    request,
			})
		default:
			fmt.Fprintln(out, plan.Render(p))
		}
	}

	if request != nil {
		printRequest(out, *request)
	}
	return nil
}

// applyPlan takes the single-writer lock, runs the executor, and reports each
// completed move plus a summary. The first failing move aborts the run;
// earlier moves stay in place and are listed so the user knows the tree's
// state.
func applyPlan(ctx context.Context, cmd *cobra.Command, logger *slog.Logger, lockPath string, p *plan.Plan) error {
	out := cmd.OutOrStdout()

	if len(p.Actions) == 0 {
		fmt.Fprintln(out, plan.EmptyMessage)
		return nil
	}

	lock := flock.New(lockPath)
	ok, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire apply lock: %w", err)
	}
	if !ok {
		return fmt.Errorf("another organizer apply is already running (lock %s)", lockPath)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	exec := executor.Run(ctx, logger, p)
	for _, action := range exec.Completed {
		fmt.Fprintf(out, "moved %s -> %s\n", action.Source, action.Destination)
	}

	if exec.Status != executor.StatusCompleted {
		return fmt.Errorf("apply stopped at step %d after %d completed of %d planned: %w",
			exec.Step+1, len(exec.Completed), len(p.Actions), exec.Err)
	}

	var total int64
	for _, action := range exec.Completed {
		total += action.Size
	}
	fmt.Fprintf(out, "Applied %d moves (%s)\n", len(exec.Completed), humanize.IBytes(uint64(total)))
	return nil
}

func printRequest(out io.Writer, req prompt.Request) {
	fmt.Fprintln(out, "Generated request payload:")
	fmt.Fprintf(out, "Provider: %s\n", req.Provider)
	fmt.Fprintf(out, "Model: %s\n", req.Model)
	fmt.Fprintln(out, "--- system ---")
	fmt.Fprintln(out, req.System)
	fmt.Fprintln(out, "--- user ---")
	fmt.Fprintln(out, req.User)
}
