package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/tickspan/internal/schedule"
)

// ScheduleIssue is one validation problem with its originating schedule.
type ScheduleIssue struct {
	Schedule string `json:"schedule"`
	Field    string `json:"field"`
	Message  string `json:"message"`
}

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid     bool            `json:"valid"`
	Schedules int             `json:"schedules"`
	Issues    []ScheduleIssue `json:"issues,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <schedules-dir>",
		Short: "Validate CUE schedule definitions",
		Long: `Compile every schedule under the directory's CUE files and check each
for consistency: a valid resolution, non-empty unique entry names,
entries at the schedule resolution, and no overlapping entries.
Adjacent entries (exclusive end meeting the next start) are fine.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, dir string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}

	loadResult, loadErrors := LoadSchedules(dir, LoadModeCollectAll)

	// Load errors without a result mean the directory itself is unusable.
	if loadResult == nil && len(loadErrors) > 0 {
		var loadErr *LoadError
		if errors.As(loadErrors[0], &loadErr) {
			_ = formatter.Error(loadErr.Code, loadErr.Message, nil)
			return NewExitError(ExitCommandError, fmt.Sprintf("%s: %s", loadErr.Code, loadErr.Message))
		}
		_ = formatter.Error(ErrCodeGeneric, loadErrors[0].Error(), nil)
		return NewExitError(ExitCommandError, loadErrors[0].Error())
	}

	formatter.VerboseLog("Found %d CUE file(s) in %s", loadResult.FileCount, dir)

	var issues []ScheduleIssue

	// Compile errors become issues so the report covers every schedule.
	for _, err := range loadErrors {
		var loadErr *LoadError
		if errors.As(err, &loadErr) {
			issues = append(issues, ScheduleIssue{Field: "compile", Message: loadErr.Error()})
		} else {
			issues = append(issues, ScheduleIssue{Field: "compile", Message: err.Error()})
		}
	}

	for _, sched := range loadResult.Schedules {
		formatter.VerboseLog("Validating schedule: %s", sched.Name)
		issues = append(issues, validateSchedule(sched)...)
	}

	if len(issues) > 0 {
		return outputValidationIssues(formatter, len(loadResult.Schedules), issues)
	}

	if formatter.Format == "json" {
		return formatter.Success(ValidationResult{Valid: true, Schedules: len(loadResult.Schedules)})
	}
	fmt.Fprintf(formatter.Writer, "✓ %d schedule(s) valid\n", len(loadResult.Schedules))
	return nil
}

// validateSchedule runs consistency checks and conflict detection on one
// compiled schedule.
func validateSchedule(sched *schedule.Schedule) []ScheduleIssue {
	var issues []ScheduleIssue

	for _, verr := range schedule.Validate(sched) {
		issues = append(issues, ScheduleIssue{
			Schedule: sched.Name,
			Field:    verr.Field,
			Message:  verr.Message,
		})
	}

	conflicts, err := schedule.Conflicts(sched)
	if err != nil {
		issues = append(issues, ScheduleIssue{
			Schedule: sched.Name,
			Field:    "entries",
			Message:  err.Error(),
		})
		return issues
	}
	for _, c := range conflicts {
		issues = append(issues, ScheduleIssue{
			Schedule: sched.Name,
			Field:    fmt.Sprintf("entries.%s", c.A),
			Message:  fmt.Sprintf("overlaps entry %s on %s", c.B, c.Overlap),
		})
	}

	return issues
}

// outputValidationIssues reports failures and returns the exit error.
func outputValidationIssues(formatter *OutputFormatter, schedules int, issues []ScheduleIssue) error {
	if formatter.Format == "json" {
		response := CLIResponse{
			Status: "error",
			Data: ValidationResult{
				Valid:     false,
				Schedules: schedules,
				Issues:    issues,
			},
			Error: &CLIError{
				Code:    ErrCodeGeneric,
				Message: fmt.Sprintf("validation failed with %d issue(s)", len(issues)),
			},
		}

		encoder := json.NewEncoder(formatter.Writer)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(response); err != nil {
			return err
		}
		return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d issue(s)", len(issues)))
	}

	fmt.Fprintln(formatter.Writer, "✗ Validation failed")
	fmt.Fprintln(formatter.Writer)
	for _, issue := range issues {
		if issue.Schedule != "" {
			fmt.Fprintf(formatter.Writer, "  %s: %s: %s\n", issue.Schedule, issue.Field, issue.Message)
		} else {
			fmt.Fprintf(formatter.Writer, "  %s: %s\n", issue.Field, issue.Message)
		}
	}

	return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d issue(s)", len(issues)))
}
