package harness

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// RunWithGolden executes a scenario and compares its trace to the golden
// file testdata/golden/<name>.golden. Regenerate goldens with
// `go test ./internal/harness -update` after an intentional behavior
// change.
//
// The trace is serialized with stable key order and two-space indent so
// golden diffs stay readable.
func RunWithGolden(t *testing.T, scenario *Scenario) error {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return err
	}

	for _, f := range result.Failures {
		t.Errorf("scenario %s: %s", scenario.Name, f)
	}

	traceJSON, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, traceJSON)

	return nil
}
