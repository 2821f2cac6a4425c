package schedule

import (
	"fmt"
	"sort"

	"cuelang.org/go/cue"
	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"

	"github.com/roach88/tickspan/internal/convert"
	"github.com/roach88/tickspan/internal/interval"
	"github.com/roach88/tickspan/internal/temporal"
)

// Schedule is a compiled, named set of intervals at one resolution.
type Schedule struct {
	Name       string
	Resolution temporal.Resolution
	Entries    []Entry
}

// Entry is one named interval of a schedule.
type Entry struct {
	Name     string
	Interval interval.Interval
}

// CompileError represents a compilation error with source position.
type CompileError struct {
	Field   string
	Message string
	Pos     token.Pos
}

func (e *CompileError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s",
			e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(),
			e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Compile parses a CUE value into a Schedule.
// Uses the CUE SDK's Go API directly (not a CLI subprocess).
//
// The CUE value should be the schedule struct itself, e.g.:
//
//	ctx := cuecontext.New()
//	v := ctx.CompileString(`schedule: quarters: { ... }`)
//	s, err := schedule.Compile(v.LookupPath(cue.ParsePath("schedule.quarters")))
func Compile(v cue.Value) (*Schedule, error) {
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	s := &Schedule{}

	// Schedule name comes from the struct label (the path selector).
	labels := v.Path().Selectors()
	if len(labels) > 0 {
		s.Name = temporal.NormalizeName(labels[len(labels)-1].String())
	}

	// Resolution (required).
	resVal := v.LookupPath(cue.ParsePath("resolution"))
	if !resVal.Exists() {
		return nil, &CompileError{
			Field:   "resolution",
			Message: "resolution is required",
			Pos:     v.Pos(),
		}
	}
	resStr, err := resVal.String()
	if err != nil {
		return nil, formatCUEError(err)
	}
	res, err := temporal.ParseResolution(resStr)
	if err != nil {
		return nil, &CompileError{
			Field:   "resolution",
			Message: err.Error(),
			Pos:     resVal.Pos(),
		}
	}
	s.Resolution = res

	// Entries (required, at least one).
	s.Entries, err = parseEntries(v, res)
	if err != nil {
		return nil, err
	}
	if len(s.Entries) == 0 {
		return nil, &CompileError{
			Field:   "entries",
			Message: "at least one entry is required",
			Pos:     v.Pos(),
		}
	}

	// Deterministic order: start tick, then name.
	sort.Slice(s.Entries, func(i, j int) bool {
		a, b := s.Entries[i], s.Entries[j]
		if a.Interval.Start().Ticks() != b.Interval.Start().Ticks() {
			return a.Interval.Start().Ticks() < b.Interval.Start().Ticks()
		}
		return a.Name < b.Name
	})

	return s, nil
}

// parseEntries extracts the entry intervals from the schedule struct.
func parseEntries(v cue.Value, res temporal.Resolution) ([]Entry, error) {
	entriesVal := v.LookupPath(cue.ParsePath("entries"))
	if !entriesVal.Exists() {
		return nil, nil
	}

	iter, err := entriesVal.Fields()
	if err != nil {
		return nil, formatCUEError(err)
	}

	var entries []Entry
	seen := make(map[string]bool)
	for iter.Next() {
		name := temporal.NormalizeName(iter.Label())
		if seen[name] {
			return nil, &CompileError{
				Field:   fmt.Sprintf("entries.%s", name),
				Message: "duplicate entry name after normalization",
				Pos:     iter.Value().Pos(),
			}
		}
		seen[name] = true

		iv, err := parseEntryInterval(iter.Value(), name, res)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{Name: name, Interval: iv})
	}
	return entries, nil
}

// parseEntryInterval parses one {start, end} struct into an Interval at
// the schedule resolution.
func parseEntryInterval(v cue.Value, name string, res temporal.Resolution) (interval.Interval, error) {
	start, err := parseEndpoint(v, name, "start", res)
	if err != nil {
		return interval.Interval{}, err
	}
	end, err := parseEndpoint(v, name, "end", res)
	if err != nil {
		return interval.Interval{}, err
	}

	iv, err := interval.Make(start, end)
	if err != nil {
		return interval.Interval{}, &CompileError{
			Field:   fmt.Sprintf("entries.%s", name),
			Message: err.Error(),
			Pos:     v.Pos(),
		}
	}
	return iv, nil
}

func parseEndpoint(v cue.Value, name, field string, res temporal.Resolution) (temporal.Instant, error) {
	fieldVal := v.LookupPath(cue.ParsePath(field))
	if !fieldVal.Exists() {
		return temporal.Instant{}, &CompileError{
			Field:   fmt.Sprintf("entries.%s.%s", name, field),
			Message: field + " is required",
			Pos:     v.Pos(),
		}
	}
	str, err := fieldVal.String()
	if err != nil {
		return temporal.Instant{}, formatCUEError(err)
	}

	in, err := temporal.Parse(str)
	if err != nil {
		return temporal.Instant{}, &CompileError{
			Field:   fmt.Sprintf("entries.%s.%s", name, field),
			Message: err.Error(),
			Pos:     fieldVal.Pos(),
		}
	}

	// Exact only: an endpoint finer than the schedule resolution is a
	// definition error, not something to truncate quietly.
	converted, err := convert.Convert(in, res, convert.Exact)
	if err != nil {
		return temporal.Instant{}, &CompileError{
			Field:   fmt.Sprintf("entries.%s.%s", name, field),
			Message: fmt.Sprintf("endpoint does not fit %s resolution: %v", res, err),
			Pos:     fieldVal.Pos(),
		}
	}
	return converted, nil
}

// Lookup returns the entry with the given (normalized) name.
func (s *Schedule) Lookup(name string) (Entry, bool) {
	name = temporal.NormalizeName(name)
	for _, e := range s.Entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// formatCUEError extracts position info from CUE errors.
func formatCUEError(err error) error {
	if err == nil {
		return nil
	}

	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return err
	}

	firstErr := errs[0]
	positions := cueerrors.Positions(firstErr)
	if len(positions) > 0 {
		return &CompileError{
			Field:   "cue",
			Message: firstErr.Error(),
			Pos:     positions[0],
		}
	}

	return err
}
