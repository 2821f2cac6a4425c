package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario defines a conformance test scenario: a set of named spans and
// a list of operation steps with expected outputs.
type Scenario struct {
	// Name uniquely identifies this scenario (also the golden file name).
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description,omitempty"`

	// Spans names the intervals available to steps. Endpoints use the
	// same textual forms as temporal.Parse; both endpoints of a span
	// must parse to the same resolution.
	Spans map[string]SpanDef `yaml:"spans"`

	// Steps is the ordered list of operations to execute.
	Steps []Step `yaml:"steps"`
}

// SpanDef is the textual form of one half-open interval.
type SpanDef struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

// Step is one operation application.
type Step struct {
	// Op is the operation name: duration, degenerate, contains,
	// overlaps, adjacent, intersect, union, or convert.
	Op string `yaml:"op"`

	// Of names the span operand of single-interval operations.
	Of string `yaml:"of,omitempty"`

	// A and B name the operands of two-interval operations.
	A string `yaml:"a,omitempty"`
	B string `yaml:"b,omitempty"`

	// At is the instant operand of contains.
	At string `yaml:"at,omitempty"`

	// To and Policy parameterize convert.
	To     string `yaml:"to,omitempty"`
	Policy string `yaml:"policy,omitempty"`

	// Expect is the expected output. If nil, the step's output is
	// recorded in the trace but not checked.
	Expect *Expect `yaml:"expect,omitempty"`
}

// Expect specifies the expected output of a step. Exactly one of the
// fields should be set.
type Expect struct {
	// Value is the expected output string.
	Value string `yaml:"value,omitempty"`

	// None expects an undefined intersect/union result.
	None bool `yaml:"none,omitempty"`

	// Error expects a typed failure with the given code
	// (e.g. RESOLUTION_MISMATCH, LOSSY_CONVERSION).
	Error string `yaml:"error,omitempty"`
}

// want renders the expectation in the same form as step outputs.
func (e *Expect) want() string {
	switch {
	case e.Error != "":
		return "error:" + e.Error
	case e.None:
		return "none"
	default:
		return e.Value
	}
}

// LoadScenario reads and validates a scenario from a YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load scenario: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses and validates scenario YAML.
// Unknown fields are rejected so typos fail loudly.
func ParseScenario(data []byte) (*Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Scenario
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

var knownOps = map[string]bool{
	"duration":   true,
	"degenerate": true,
	"contains":   true,
	"overlaps":   true,
	"adjacent":   true,
	"intersect":  true,
	"union":      true,
	"convert":    true,
}

func (s *Scenario) validate() error {
	if s.Name == "" {
		return fmt.Errorf("scenario: name is required")
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("scenario %s: at least one step is required", s.Name)
	}

	for i, step := range s.Steps {
		if !knownOps[step.Op] {
			return fmt.Errorf("scenario %s: step %d: unknown op %q", s.Name, i+1, step.Op)
		}
		if err := step.checkOperands(); err != nil {
			return fmt.Errorf("scenario %s: step %d: %w", s.Name, i+1, err)
		}
		for _, ref := range step.spanRefs() {
			if _, ok := s.Spans[ref]; !ok {
				return fmt.Errorf("scenario %s: step %d: unknown span %q", s.Name, i+1, ref)
			}
		}
	}
	return nil
}

// checkOperands enforces the operand fields each op needs. A missing
// operand would otherwise evaluate against a zero-value interval.
func (st Step) checkOperands() error {
	switch st.Op {
	case "duration", "degenerate":
		if st.Of == "" {
			return fmt.Errorf("op %s requires of", st.Op)
		}
	case "contains":
		if st.Of == "" {
			return fmt.Errorf("op %s requires of", st.Op)
		}
		if st.At == "" {
			return fmt.Errorf("op %s requires at", st.Op)
		}
	case "convert":
		if st.Of == "" {
			return fmt.Errorf("op %s requires of", st.Op)
		}
		if st.To == "" {
			return fmt.Errorf("op %s requires to", st.Op)
		}
	case "overlaps", "adjacent", "intersect", "union":
		if st.A == "" || st.B == "" {
			return fmt.Errorf("op %s requires a and b", st.Op)
		}
	}
	return nil
}

// spanRefs returns the span names a step references.
func (st Step) spanRefs() []string {
	var refs []string
	if st.Of != "" {
		refs = append(refs, st.Of)
	}
	if st.A != "" {
		refs = append(refs, st.A)
	}
	if st.B != "" {
		refs = append(refs, st.B)
	}
	return refs
}
