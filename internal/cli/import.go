package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/tickspan/internal/store"
)

// ImportedSchedule summarizes one schedule's import.
type ImportedSchedule struct {
	Schedule string `json:"schedule"`
	Batch    string `json:"batch"`
	Entries  int    `json:"entries"`
	Inserted int    `json:"inserted"`
}

// ImportReport is the JSON payload of the import command.
type ImportReport struct {
	Database  string             `json:"database"`
	Schedules []ImportedSchedule `json:"schedules"`
}

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "import <schedules-dir>",
		Short: "Import CUE schedules into a store",
		Long: `Compile every schedule under the directory and import its entries into
the SQLite store as one batch per schedule.

Records are content-addressed: re-importing an unchanged schedule
creates a new batch but inserts no duplicate records.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(rootOpts, args[0], dbPath, cmd)
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "path to the SQLite database")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runImport(opts *RootOptions, dir, dbPath string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	loadResult, loadErrors := LoadSchedules(dir, LoadModeFailFast)
	if len(loadErrors) > 0 {
		var loadErr *LoadError
		if errors.As(loadErrors[0], &loadErr) {
			_ = formatter.Error(loadErr.Code, loadErr.Message, nil)
			return NewExitError(ExitCommandError, fmt.Sprintf("%s: %s", loadErr.Code, loadErr.Message))
		}
		_ = formatter.Error(ErrCodeGeneric, loadErrors[0].Error(), nil)
		return NewExitError(ExitCommandError, loadErrors[0].Error())
	}

	formatter.VerboseLog("Compiled %d schedule(s) from %s", len(loadResult.Schedules), dir)

	st, err := store.Open(dbPath)
	if err != nil {
		_ = formatter.Error(ErrCodeStoreFailed, err.Error(), nil)
		return WrapExitError(ExitCommandError, ErrCodeStoreFailed, err)
	}
	defer st.Close()

	report := ImportReport{Database: dbPath}
	for _, sched := range loadResult.Schedules {
		token, inserted, err := st.ImportSchedule(cmd.Context(), sched)
		if err != nil {
			_ = formatter.Error(ErrCodeStoreFailed, fmt.Sprintf("importing %s: %v", sched.Name, err), nil)
			return WrapExitError(ExitCommandError, ErrCodeStoreFailed, err)
		}
		report.Schedules = append(report.Schedules, ImportedSchedule{
			Schedule: sched.Name,
			Batch:    token,
			Entries:  len(sched.Entries),
			Inserted: inserted,
		})
	}

	if formatter.Format == "json" {
		return formatter.Success(report)
	}

	for _, s := range report.Schedules {
		fmt.Fprintf(formatter.Writer, "%s: %d/%d record(s) inserted (batch %s)\n",
			s.Schedule, s.Inserted, s.Entries, s.Batch)
	}
	return nil
}
