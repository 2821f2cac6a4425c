package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/tickspan/internal/store"
	"github.com/roach88/tickspan/internal/temporal"
)

// QueryRecord is one record row rendered for output.
type QueryRecord struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Span  string `json:"span"`
	Batch string `json:"batch"`
}

// QueryReport is the JSON payload of the query subcommands.
type QueryReport struct {
	Query   string        `json:"query"`
	Records []QueryRecord `json:"records"`
}

// NewQueryCommand creates the query command with its subcommands.
func NewQueryCommand(rootOpts *RootOptions) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Query records in a store",
		Long: `Query imported records. Results are deterministic: ordered by start
tick, then end tick, then record ID.`,
	}

	cmd.PersistentFlags().StringVar(&dbPath, "db", "", "path to the SQLite database")
	_ = cmd.MarkPersistentFlagRequired("db")

	cmd.AddCommand(newQueryListCommand(rootOpts, &dbPath))
	cmd.AddCommand(newQueryOverlappingCommand(rootOpts, &dbPath))
	cmd.AddCommand(newQueryContainingCommand(rootOpts, &dbPath))

	return cmd
}

func newQueryListCommand(rootOpts *RootOptions, dbPath *string) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Short:         "List every record",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(rootOpts, *dbPath, cmd, func(formatter *OutputFormatter, st *store.Store) error {
				records, err := st.ListRecords(cmd.Context())
				if err != nil {
					return storeQueryError(formatter, err)
				}
				return outputRecords(formatter, "list", records)
			})
		},
	}
}

func newQueryOverlappingCommand(rootOpts *RootOptions, dbPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "overlapping <start> <end>",
		Short: "Find records overlapping a half-open interval",
		Long: `Find records sharing at least one instant with [start, end). Records
merely touching the query boundary are excluded; only records at the
query's resolution match.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(rootOpts, *dbPath, cmd, func(formatter *OutputFormatter, st *store.Store) error {
				query, err := parseSpan(args[0], args[1])
				if err != nil {
					return spanInputError(formatter, err)
				}
				records, err := st.Overlapping(cmd.Context(), query)
				if err != nil {
					return storeQueryError(formatter, err)
				}
				return outputRecords(formatter, fmt.Sprintf("overlapping %s", query), records)
			})
		},
	}
}

func newQueryContainingCommand(rootOpts *RootOptions, dbPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "containing <instant>",
		Short: "Find records containing an instant",
		Long: `Find records whose half-open span contains the instant. A record's
exclusive end is never a member; only records at the instant's
resolution match.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(rootOpts, *dbPath, cmd, func(formatter *OutputFormatter, st *store.Store) error {
				at, err := temporal.Parse(args[0])
				if err != nil {
					return operandError(formatter, err)
				}
				records, err := st.Containing(cmd.Context(), at)
				if err != nil {
					return storeQueryError(formatter, err)
				}
				return outputRecords(formatter, fmt.Sprintf("containing %s", at), records)
			})
		},
	}
}

// withStore opens the store, runs fn, and closes it.
func withStore(opts *RootOptions, dbPath string, cmd *cobra.Command, fn func(*OutputFormatter, *store.Store) error) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	st, err := store.Open(dbPath)
	if err != nil {
		_ = formatter.Error(ErrCodeStoreFailed, err.Error(), nil)
		return WrapExitError(ExitCommandError, ErrCodeStoreFailed, err)
	}
	defer st.Close()

	return fn(formatter, st)
}

func storeQueryError(formatter *OutputFormatter, err error) error {
	_ = formatter.Error(ErrCodeStoreFailed, err.Error(), nil)
	return WrapExitError(ExitCommandError, ErrCodeStoreFailed, err)
}

func outputRecords(formatter *OutputFormatter, query string, records []store.Record) error {
	report := QueryReport{Query: query, Records: []QueryRecord{}}
	for _, r := range records {
		report.Records = append(report.Records, QueryRecord{
			ID:    r.ID,
			Name:  r.Name,
			Span:  r.Span.String(),
			Batch: r.BatchToken,
		})
	}

	if formatter.Format == "json" {
		return formatter.Success(report)
	}

	if len(report.Records) == 0 {
		fmt.Fprintln(formatter.Writer, "no records")
		return nil
	}
	for _, r := range report.Records {
		fmt.Fprintf(formatter.Writer, "%s  %s  %s\n", r.Name, r.Span, r.ID[:12])
	}
	return nil
}
