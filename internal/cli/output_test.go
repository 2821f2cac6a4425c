package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/tickspan/internal/temporal"
)

func TestExitError(t *testing.T) {
	err := NewExitError(ExitCommandError, "database not found")
	assert.Equal(t, "database not found", err.Error())
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	wrapped := WrapExitError(ExitFailure, "validation failed", errors.New("boom"))
	assert.Equal(t, "validation failed: boom", wrapped.Error())
	assert.Equal(t, ExitFailure, GetExitCode(wrapped))
	assert.EqualError(t, wrapped.Unwrap(), "boom")
}

func TestGetExitCode_PlainError(t *testing.T) {
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("plain")))
}

func TestGetExitCode_WrappedExitError(t *testing.T) {
	inner := NewExitError(ExitCommandError, "inner")
	outer := fmt.Errorf("outer: %w", inner)
	assert.Equal(t, ExitCommandError, GetExitCode(outer))
}

func TestFormatterSuccessText(t *testing.T) {
	buf := &bytes.Buffer{}
	f := &OutputFormatter{Format: "text", Writer: buf}

	require.NoError(t, f.Success("all good"))
	assert.Equal(t, "all good\n", buf.String())
}

func TestFormatterSuccessJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	f := &OutputFormatter{Format: "json", Writer: buf}

	require.NoError(t, f.Success(map[string]int{"count": 3}))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Nil(t, resp.Error)
}

func TestFormatterErrorJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	f := &OutputFormatter{Format: "json", Writer: buf}

	require.NoError(t, f.Error(ErrCodeNotFound, "missing", nil))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeNotFound, resp.Error.Code)
	assert.Equal(t, "missing", resp.Error.Message)
}

func TestVerboseLogGoesToErrWriter(t *testing.T) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	f := &OutputFormatter{Format: "json", Writer: out, ErrWriter: errOut, Verbose: true}

	f.VerboseLog("loaded %d file(s)", 2)

	assert.Empty(t, out.String())
	assert.Equal(t, "loaded 2 file(s)\n", errOut.String())
}

func TestVerboseLogSuppressed(t *testing.T) {
	out := &bytes.Buffer{}
	f := &OutputFormatter{Format: "text", Writer: out, Verbose: false}

	f.VerboseLog("should not appear")
	assert.Empty(t, out.String())
}

func TestDomainErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"invalid range", temporal.NewInvalidRange("Make", 5, 1, temporal.Day), ErrCodeInvalidRange},
		{"resolution mismatch", temporal.NewResolutionMismatch("Compare", temporal.Day, temporal.Second), ErrCodeResolutionMismatch},
		{"lossy", temporal.NewLossyConversion("Convert", 90, temporal.Second, temporal.Day, 90), ErrCodeLossyConversion},
		{"overflow", temporal.NewOverflow("Convert", "tick overflow"), ErrCodeOverflow},
		{"plain error", errors.New("nope"), ErrCodeGeneric},
		{"wrapped typed error", fmt.Errorf("context: %w", temporal.NewOverflow("x", "y")), ErrCodeOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domainErrorCode(tt.err))
		})
	}
}
