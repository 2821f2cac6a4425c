package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/tickspan/internal/convert"
	"github.com/roach88/tickspan/internal/temporal"
)

// ConvertReport is the JSON payload of the convert command.
type ConvertReport struct {
	Input  string `json:"input"`
	Output string `json:"output"`
	From   string `json:"from"`
	To     string `json:"to"`
	Policy string `json:"policy"`
}

// NewConvertCommand creates the convert command.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		toArg     string
		policyArg string
	)

	cmd := &cobra.Command{
		Use:   "convert <start> <end>",
		Short: "Re-express an interval at another resolution",
		Long: `Convert both endpoints of the half-open interval [start, end) to the
target resolution under one policy.

Widening (coarser to finer) is exact. Narrowing (finer to coarser)
requires a policy: exact fails on any remainder, truncate floors to
the containing unit, round goes to the nearest unit (half away from
zero). The default policy is exact.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(rootOpts, args[0], args[1], toArg, policyArg, cmd)
		},
	}

	cmd.Flags().StringVar(&toArg, "to", "", "target resolution (day|second|millisecond|microsecond|nanosecond)")
	cmd.Flags().StringVar(&policyArg, "policy", "exact", "narrowing policy (exact|truncate|round)")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func runConvert(opts *RootOptions, startArg, endArg, toArg, policyArg string, cmd *cobra.Command) error {
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

	target, err := temporal.ParseResolution(toArg)
	if err != nil {
		return operandError(formatter, fmt.Errorf("--to: %w", err))
	}
	policy, err := convert.ParsePolicy(policyArg)
	if err != nil {
		return operandError(formatter, fmt.Errorf("--policy: %w", err))
	}

	formatter.VerboseLog("Converting %s from %s to %s (%s)", iv, iv.Resolution(), target, policy)

	out, err := iv.Convert(target, policy)
	if err != nil {
		return domainError(formatter, err)
	}

	report := ConvertReport{
		Input:  iv.String(),
		Output: out.String(),
		From:   iv.Resolution().String(),
		To:     target.String(),
		Policy: policy.String(),
	}

	if formatter.Format == "json" {
		return formatter.Success(report)
	}

	fmt.Fprintln(formatter.Writer, report.Output)
	return nil
}
