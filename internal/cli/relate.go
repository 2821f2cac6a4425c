package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/tickspan/internal/interval"
)

// RelateReport is the JSON payload of the relate command.
type RelateReport struct {
	Op     string `json:"op"`
	A      string `json:"a"`
	B      string `json:"b"`
	Result string `json:"result"`
}

// NewRelateCommand creates the relate command.
func NewRelateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "relate <op> <a-start> <a-end> <b-start> <b-end>",
		Short: "Relate two half-open intervals",
		Long: `Apply a two-interval operation to [a-start, a-end) and [b-start, b-end).

Operations:
  overlaps   true iff the intervals share at least one instant
  adjacent   true iff one interval's exclusive end equals the other's start
  intersect  the common sub-interval, or "none"
  union      the covering interval when the operands overlap or touch, or "none"

Both intervals must be at the same resolution; convert explicitly first.`,
		Args:          cobra.ExactArgs(5),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRelate(rootOpts, args[0], args[1:], cmd)
		},
	}

	return cmd
}

func runRelate(opts *RootOptions, op string, endpoints []string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	a, err := parseSpan(endpoints[0], endpoints[1])
	if err != nil {
		return spanInputError(formatter, err)
	}
	b, err := parseSpan(endpoints[2], endpoints[3])
	if err != nil {
		return spanInputError(formatter, err)
	}

	result, err := applyRelation(op, a, b)
	if err != nil {
		if code := domainErrorCode(err); code != ErrCodeGeneric {
			return domainError(formatter, err)
		}
		return operandError(formatter, err)
	}

	report := RelateReport{Op: op, A: a.String(), B: b.String(), Result: result}

	if formatter.Format == "json" {
		return formatter.Success(report)
	}

	fmt.Fprintln(formatter.Writer, report.Result)
	return nil
}

// applyRelation evaluates one algebra operation and renders its result
// as a single string ("true", "none", or interval notation).
func applyRelation(op string, a, b interval.Interval) (string, error) {
	switch op {
	case "overlaps":
		ok, err := interval.Overlaps(a, b)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%t", ok), nil

	case "adjacent":
		ok, err := interval.Adjacent(a, b)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%t", ok), nil

	case "intersect":
		iv, err := interval.Intersect(a, b)
		if err != nil {
			return "", err
		}
		if iv == nil {
			return "none", nil
		}
		return iv.String(), nil

	case "union":
		iv, err := interval.Union(a, b)
		if err != nil {
			return "", err
		}
		if iv == nil {
			return "none", nil
		}
		return iv.String(), nil

	default:
		return "", fmt.Errorf("unknown operation %q (want overlaps, adjacent, intersect, or union)", op)
	}
}
