package guard

import (
	"errors"
	"fmt"
	"log/slog"
)

var (
	// ErrMissingArgument is returned when an argument is nil, zero or empty.
	ErrMissingArgument = errors.New("argument is missing or empty")

	// ErrOutOfRange is returned when a numeric argument is outside the accepted range.
	ErrOutOfRange = errors.New("argument is out of range")
)

// ArgumentError reports a failed guard check for a named argument.
type ArgumentError struct {
	Name string
	Err  error
}

func newArgumentError(name string, kind error) *ArgumentError {
	return &ArgumentError{Name: name, Err: kind}
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("guard: %s: %v", e.Name, e.Err)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// TranslationKey returns the i18n message key matching the failure kind.
func (e *ArgumentError) TranslationKey() string {
	if errors.Is(e.Err, ErrOutOfRange) {
		return "validation.min"
	}
	return "validation.required"
}

// LogValue implements slog.LogValuer.
func (e *ArgumentError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("argument", e.Name),
		slog.String("reason", e.Err.Error()),
	)
}

// ArgumentName returns the name of the argument that failed a guard check.
// It returns an empty string if err does not wrap an *ArgumentError.
func ArgumentName(err error) string {
	var argErr *ArgumentError
	if errors.As(err, &argErr) {
		return argErr.Name
	}
	return ""
}
