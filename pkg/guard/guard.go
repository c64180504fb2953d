package guard

import "reflect"

// NotNil returns an error if the pointer is nil.
func NotNil[T any](value *T, name string) error {
	if value == nil {
		return newArgumentError(name, ErrMissingArgument)
	}
	return nil
}

// NotNilRef returns an error if value is nil or holds a nil pointer, map,
// slice, channel or function.
func NotNilRef(value any, name string) error {
	if value == nil {
		return newArgumentError(name, ErrMissingArgument)
	}
	switch v := reflect.ValueOf(value); v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		if v.IsNil() {
			return newArgumentError(name, ErrMissingArgument)
		}
	}
	return nil
}

// NotZero returns an error if value equals the zero value of its type.
func NotZero[T comparable](value T, name string) error {
	var zero T
	if value == zero {
		return newArgumentError(name, ErrMissingArgument)
	}
	return nil
}

// NotEmptySlice returns an error if the slice is nil or has no elements.
func NotEmptySlice[T any](value []T, name string) error {
	if len(value) == 0 {
		return newArgumentError(name, ErrMissingArgument)
	}
	return nil
}

// NotEmptyString returns an error if the string is empty.
func NotEmptyString(value, name string) error {
	if value == "" {
		return newArgumentError(name, ErrMissingArgument)
	}
	return nil
}

// NotEmptyStringPtr returns an error if the pointer is nil or points to an
// empty string.
func NotEmptyStringPtr(value *string, name string) error {
	if value == nil || *value == "" {
		return newArgumentError(name, ErrMissingArgument)
	}
	return nil
}

// Positive returns an error if value is less than 1.
func Positive(value int64, name string) error {
	if value < 1 {
		return newArgumentError(name, ErrOutOfRange)
	}
	return nil
}
