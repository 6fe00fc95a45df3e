package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Unwrap_PreservesOriginalError(t *testing.T) {
	// Given: an original error
	originalErr := errors.New("original error")

	// When: wrapping with Error
	err := New(ErrCodeFileOpen, "cannot open out.log", originalErr)

	// Then: unwrapping returns original error
	require.NotNil(t, err)
	assert.Equal(t, originalErr, errors.Unwrap(err))
	assert.True(t, errors.Is(err, originalErr))
}

func TestError_Error_ReturnsFormattedMessage(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		message  string
		expected string
	}{
		{
			name:     "invalid argument",
			code:     ErrCodeInvalidArgument,
			message:  "invalid value for --loglevel",
			expected: "[ERR_401_INVALID_ARGUMENT] invalid value for --loglevel",
		},
		{
			name:     "incompatible arguments",
			code:     ErrCodeIncompatibleArguments,
			message:  "--stderr and --noconsole",
			expected: "[ERR_402_INCOMPATIBLE_ARGUMENTS] --stderr and --noconsole",
		},
		{
			name:     "file open",
			code:     ErrCodeFileOpen,
			message:  "cannot open log file",
			expected: "[ERR_201_FILE_OPEN] cannot open log file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, tt.message, nil)
			assert.Equal(t, tt.expected, err.Error())
		})
	}
}

func TestError_Is_MatchesSentinelByCode(t *testing.T) {
	// Given: two errors built by the constructors
	invalid := InvalidArgument("bad level")
	incompatible := IncompatibleArguments("bad combination")

	// Then: each matches only its own sentinel
	assert.True(t, errors.Is(invalid, ErrInvalidArgument))
	assert.False(t, errors.Is(invalid, ErrIncompatibleArguments))
	assert.True(t, errors.Is(incompatible, ErrIncompatibleArguments))
	assert.False(t, errors.Is(incompatible, ErrInvalidArgument))
}

func TestError_Is_ThroughFmtWrapping(t *testing.T) {
	// Given: an Error wrapped by fmt.Errorf
	err := wrapf(InvalidArgument("bad level"))

	// Then: errors.Is still finds it
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestIOError_KeepsPathErrorMatchable(t *testing.T) {
	// Given: a path error for a missing directory
	cause := &fs.PathError{Op: "open", Path: "/missing/out.log", Err: fs.ErrNotExist}

	// When: reporting it as an IO error
	err := IOError("cannot open log file", cause)

	// Then: both the code and the underlying condition match
	assert.True(t, errors.Is(err, ErrFileOpen))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Equal(t, CategoryIO, err.Category)
}

func TestError_WithDetails_AddsContext(t *testing.T) {
	// Given: a base error
	err := InvalidArgument("bad level")

	// When: adding details
	err = err.WithDetail("flag", "--loglevel")
	err = err.WithDetail("value", "verbose")

	// Then: details are available
	assert.Equal(t, "--loglevel", err.Details["flag"])
	assert.Equal(t, "verbose", err.Details["value"])
}

func TestError_WithSuggestion_AddsSuggestion(t *testing.T) {
	err := IncompatibleArguments("--stderr with --noconsole").
		WithSuggestion("drop --stderr")

	assert.Equal(t, "drop --stderr", err.Suggestion)
}

func TestError_CategoryFromCode(t *testing.T) {
	tests := []struct {
		code         string
		wantCategory Category
	}{
		{ErrCodeConfigInvalid, CategoryConfig},
		{ErrCodeConfigParse, CategoryConfig},
		{ErrCodeFileOpen, CategoryIO},
		{ErrCodeProgramDir, CategoryIO},
		{ErrCodeInvalidArgument, CategoryValidation},
		{ErrCodeIncompatibleArguments, CategoryValidation},
		{ErrCodeInternal, CategoryInternal},
		{"bogus", CategoryInternal},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			err := New(tt.code, "test message", nil)
			assert.Equal(t, tt.wantCategory, err.Category)
		})
	}
}

func TestWrap_CreatesErrorFromError(t *testing.T) {
	originalErr := errors.New("something went wrong")

	err := Wrap(ErrCodeInternal, originalErr)

	require.NotNil(t, err)
	assert.Equal(t, ErrCodeInternal, err.Code)
	assert.Equal(t, "something went wrong", err.Message)
	assert.Equal(t, originalErr, err.Cause)
}

func TestWrap_NilReturnsNil(t *testing.T) {
	assert.Nil(t, Wrap(ErrCodeInternal, nil))
}

func TestConfigError_CreatesConfigCategoryError(t *testing.T) {
	err := ConfigError("invalid yaml syntax", nil)

	assert.Equal(t, CategoryConfig, err.Category)
	assert.Contains(t, err.Code, "CONFIG")
}

func TestSentinels_MatchOnlyTheirCode(t *testing.T) {
	err := fmt.Errorf("loading: %w", New(ErrCodeConfigInvalid, "config file not found: x.yaml", nil))

	assert.True(t, errors.Is(err, ErrConfigInvalid))
	assert.False(t, errors.Is(err, ErrConfigParse))
	assert.False(t, errors.Is(errors.New("plain"), ErrConfigInvalid))
}
