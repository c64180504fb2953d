// Package guard provides guard-clause helpers for validating function
// arguments before any real work is done.
//
// Each helper checks exactly one argument against exactly one condition and
// returns nil on success or an *ArgumentError naming the offending argument.
// There is no composition between helpers and no hidden state, so the
// package is goroutine-safe and allocation-free on the success path.
//
// # Checks
//
//   - NotNil / NotNilRef     – reference must not be nil
//   - NotZero                – comparable value must differ from its zero value
//   - NotEmptySlice          – slice must be non-nil and non-empty
//   - NotEmptyString         – string must be non-empty
//   - NotEmptyStringPtr      – string pointer must be non-nil and non-empty
//   - Positive               – int64 must be >= 1
//
// A nil slice and an empty slice fail identically, as do a nil string pointer
// and a pointer to "". Zero and negative integers both fail Positive.
//
// # Usage
//
//	func NewClient(cfg *Config, endpoints []string, retries int64) (*Client, error) {
//	    if err := guard.NotNil(cfg, "cfg"); err != nil {
//	        return nil, err
//	    }
//	    if err := guard.NotEmptySlice(endpoints, "endpoints"); err != nil {
//	        return nil, err
//	    }
//	    if err := guard.Positive(retries, "retries"); err != nil {
//	        return nil, err
//	    }
//	    // ...
//	}
//
// # Error Handling
//
// Failures fall into two kinds, exposed as sentinels for errors.Is:
//
//   - ErrMissingArgument – nil reference, zero value, empty slice or string
//   - ErrOutOfRange      – numeric value outside the accepted range
//
// The concrete *ArgumentError carries the argument name. Use ArgumentName to
// read it from a wrapped error. ArgumentError also implements slog.LogValuer
// and exposes a TranslationKey compatible with the validation message keys
// ("validation.required", "validation.min").
//
// Must panics on a non-nil error and is intended for init and test code only.
package guard
