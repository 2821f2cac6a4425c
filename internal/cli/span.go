package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/tickspan/internal/interval"
	"github.com/roach88/tickspan/internal/temporal"
)

// SpanReport is the JSON payload of the span command.
type SpanReport struct {
	Span       string `json:"span"`
	Resolution string `json:"resolution"`
	Duration   string `json:"duration"`
	Degenerate bool   `json:"degenerate"`
	Contains   *bool  `json:"contains,omitempty"`
}

// NewSpanCommand creates the span command.
func NewSpanCommand(rootOpts *RootOptions) *cobra.Command {
	var containsArg string

	cmd := &cobra.Command{
		Use:   "span <start> <end>",
		Short: "Inspect a half-open interval",
		Long: `Build the half-open interval [start, end) and report its duration,
resolution, and degeneracy. Endpoints are civil dates (2021-01-01) or
RFC 3339 instants; both must be at the same resolution.

With --contains, additionally test whether the given instant lies in
the interval. The exclusive end is never a member.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSpan(rootOpts, args[0], args[1], containsArg, cmd)
		},
	}

	cmd.Flags().StringVar(&containsArg, "contains", "", "instant to test for membership")

	return cmd
}

func runSpan(opts *RootOptions, startArg, endArg, containsArg string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	iv, err := parseSpan(startArg, endArg)
	if err != nil {
		return spanInputError(formatter, err)
	}

	report := SpanReport{
		Span:       iv.String(),
		Resolution: iv.Resolution().String(),
		Duration:   iv.Duration().String(),
		Degenerate: iv.IsDegenerate(),
	}

	if containsArg != "" {
		at, err := temporal.Parse(containsArg)
		if err != nil {
			return operandError(formatter, fmt.Errorf("--contains: %w", err))
		}
		in, err := iv.Contains(at)
		if err != nil {
			return domainError(formatter, err)
		}
		report.Contains = &in
	}

	if formatter.Format == "json" {
		return formatter.Success(report)
	}

	fmt.Fprintf(formatter.Writer, "%s\n", report.Span)
	fmt.Fprintf(formatter.Writer, "  resolution: %s\n", report.Resolution)
	fmt.Fprintf(formatter.Writer, "  duration:   %s\n", report.Duration)
	fmt.Fprintf(formatter.Writer, "  degenerate: %t\n", report.Degenerate)
	if report.Contains != nil {
		fmt.Fprintf(formatter.Writer, "  contains %s: %t\n", containsArg, *report.Contains)
	}
	return nil
}

// parseSpan parses two endpoint arguments into an interval.
func parseSpan(startArg, endArg string) (interval.Interval, error) {
	start, err := temporal.Parse(startArg)
	if err != nil {
		return interval.Interval{}, fmt.Errorf("start: %w", err)
	}
	end, err := temporal.Parse(endArg)
	if err != nil {
		return interval.Interval{}, fmt.Errorf("end: %w", err)
	}
	return interval.Make(start, end)
}

// spanInputError distinguishes unparseable endpoints (command errors)
// from typed construction failures (domain errors).
func spanInputError(formatter *OutputFormatter, err error) error {
	if code := domainErrorCode(err); code != ErrCodeGeneric {
		_ = formatter.Error(code, err.Error(), nil)
		return WrapExitError(ExitFailure, code, err)
	}
	return operandError(formatter, err)
}
