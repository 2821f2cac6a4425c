package schedule

import (
	"fmt"

	"github.com/roach88/tickspan/internal/interval"
)

// ValidationError describes a single schedule consistency problem.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Conflict names two entries whose intervals overlap.
type Conflict struct {
	A       string            `json:"a"`
	B       string            `json:"b"`
	Overlap interval.Interval `json:"-"`
}

// Validate checks a compiled (or hand-built) schedule for consistency:
// a valid resolution, non-empty normalized entry names, no duplicates,
// and every entry at the schedule resolution. Collects all problems
// rather than stopping at the first.
func Validate(s *Schedule) []ValidationError {
	var errs []ValidationError

	if !s.Resolution.Valid() {
		errs = append(errs, ValidationError{
			Field:   "resolution",
			Message: fmt.Sprintf("invalid resolution %s", s.Resolution),
		})
	}
	if len(s.Entries) == 0 {
		errs = append(errs, ValidationError{
			Field:   "entries",
			Message: "at least one entry is required",
		})
	}

	seen := make(map[string]bool)
	for _, e := range s.Entries {
		field := fmt.Sprintf("entries.%s", e.Name)
		if e.Name == "" {
			errs = append(errs, ValidationError{Field: "entries", Message: "entry name must not be empty"})
			continue
		}
		if seen[e.Name] {
			errs = append(errs, ValidationError{Field: field, Message: "duplicate entry name"})
		}
		seen[e.Name] = true

		if e.Interval.Resolution() != s.Resolution {
			errs = append(errs, ValidationError{
				Field: field,
				Message: fmt.Sprintf("entry resolution %s differs from schedule resolution %s",
					e.Interval.Resolution(), s.Resolution),
			})
		}
	}

	return errs
}

// Conflicts reports every pair of entries whose intervals overlap.
// Adjacent entries (one's exclusive end equal to the other's start) are
// not conflicts. Pairs are reported in entry order, each pair once.
func Conflicts(s *Schedule) ([]Conflict, error) {
	var conflicts []Conflict
	for i := 0; i < len(s.Entries); i++ {
		for j := i + 1; j < len(s.Entries); j++ {
			a, b := s.Entries[i], s.Entries[j]
			shared, err := interval.Intersect(a.Interval, b.Interval)
			if err != nil {
				return nil, fmt.Errorf("conflicts %s/%s: %w", a.Name, b.Name, err)
			}
			if shared != nil {
				conflicts = append(conflicts, Conflict{A: a.Name, B: b.Name, Overlap: *shared})
			}
		}
	}
	return conflicts, nil
}
