package harness

import (
	"errors"
	"fmt"
	"sort"

	"github.com/roach88/tickspan/internal/convert"
	"github.com/roach88/tickspan/internal/interval"
	"github.com/roach88/tickspan/internal/temporal"
)

// TraceEvent records the output of a single executed step.
type TraceEvent struct {
	Step   int    `json:"step"`
	Op     string `json:"op"`
	Output string `json:"output"`
}

// Result is the outcome of running a scenario.
type Result struct {
	Scenario string       `json:"scenario_name"`
	Trace    []TraceEvent `json:"trace"`

	// Failures lists expectation mismatches. Empty when Pass is true.
	Failures []string `json:"-"`

	// Pass reports whether every step with an expectation matched.
	Pass bool `json:"-"`
}

// Run executes the scenario's steps in declaration order.
//
// Operation failures carrying a typed code are part of normal output,
// rendered as "error:CODE" and matchable via expect.error. Run itself
// only fails on scenario defects: unparseable span endpoints or step
// operands.
func Run(s *Scenario) (*Result, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}
	spans, err := compileSpans(s)
	if err != nil {
		return nil, err
	}

	res := &Result{Scenario: s.Name, Pass: true}
	for i, step := range s.Steps {
		out, err := evalStep(spans, step)
		if err != nil {
			return nil, fmt.Errorf("scenario %s: step %d (%s): %w", s.Name, i+1, step.Op, err)
		}
		res.Trace = append(res.Trace, TraceEvent{Step: i + 1, Op: step.Op, Output: out})

		if step.Expect == nil {
			continue
		}
		if want := step.Expect.want(); out != want {
			res.Pass = false
			res.Failures = append(res.Failures,
				fmt.Sprintf("step %d (%s): got %q, want %q", i+1, step.Op, out, want))
		}
	}
	return res, nil
}

func compileSpans(s *Scenario) (map[string]interval.Interval, error) {
	spans := make(map[string]interval.Interval, len(s.Spans))

	// Deterministic compile order so the first defect reported is stable.
	names := make([]string, 0, len(s.Spans))
	for name := range s.Spans {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		def := s.Spans[name]
		start, err := temporal.Parse(def.Start)
		if err != nil {
			return nil, fmt.Errorf("scenario %s: span %s: start: %w", s.Name, name, err)
		}
		end, err := temporal.Parse(def.End)
		if err != nil {
			return nil, fmt.Errorf("scenario %s: span %s: end: %w", s.Name, name, err)
		}
		iv, err := interval.Make(start, end)
		if err != nil {
			return nil, fmt.Errorf("scenario %s: span %s: %w", s.Name, name, err)
		}
		spans[name] = iv
	}
	return spans, nil
}

// evalStep produces the single output string for a step. Typed operation
// errors become "error:CODE" outputs; any other error means the step
// itself is malformed.
func evalStep(spans map[string]interval.Interval, st Step) (string, error) {
	switch st.Op {
	case "duration":
		return spans[st.Of].Duration().String(), nil

	case "degenerate":
		return renderBool(spans[st.Of].IsDegenerate()), nil

	case "contains":
		t, err := temporal.Parse(st.At)
		if err != nil {
			return "", fmt.Errorf("at: %w", err)
		}
		ok, err := spans[st.Of].Contains(t)
		if err != nil {
			return renderOpError(err)
		}
		return renderBool(ok), nil

	case "overlaps":
		ok, err := interval.Overlaps(spans[st.A], spans[st.B])
		if err != nil {
			return renderOpError(err)
		}
		return renderBool(ok), nil

	case "adjacent":
		ok, err := interval.Adjacent(spans[st.A], spans[st.B])
		if err != nil {
			return renderOpError(err)
		}
		return renderBool(ok), nil

	case "intersect":
		iv, err := interval.Intersect(spans[st.A], spans[st.B])
		if err != nil {
			return renderOpError(err)
		}
		return renderOption(iv), nil

	case "union":
		iv, err := interval.Union(spans[st.A], spans[st.B])
		if err != nil {
			return renderOpError(err)
		}
		return renderOption(iv), nil

	case "convert":
		target, err := temporal.ParseResolution(st.To)
		if err != nil {
			return "", fmt.Errorf("to: %w", err)
		}
		policy := convert.Exact
		if st.Policy != "" {
			policy, err = convert.ParsePolicy(st.Policy)
			if err != nil {
				return "", fmt.Errorf("policy: %w", err)
			}
		}
		out, err := spans[st.Of].Convert(target, policy)
		if err != nil {
			return renderOpError(err)
		}
		return out.String(), nil

	default:
		return "", fmt.Errorf("unknown op %q", st.Op)
	}
}

func renderBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func renderOption(iv *interval.Interval) string {
	if iv == nil {
		return "none"
	}
	return iv.String()
}

// renderOpError maps typed operation failures to "error:CODE" trace
// outputs. Errors without a code are scenario defects and propagate.
func renderOpError(err error) (string, error) {
	var te *temporal.Error
	if errors.As(err, &te) {
		return "error:" + string(te.Code), nil
	}
	return "", err
}
