package plain

import (
	"encoding"
	"reflect"
	"strconv"
)

// Unmarshal parses text into v, which must be a non-nil pointer.
//
// The whole input is one token: strings take it verbatim, never trimmed or
// unquoted, and numeric targets parse it with strconv at the target's bit
// size, base 10, so overflow is rejected. Bools accept strconv.ParseBool's
// grammar. A target implementing encoding.TextUnmarshaler parses the input
// itself and owns the result entirely.
//
// A pointer target treats the empty string as absence and is set to nil;
// any other input, whitespace included, allocates and parses into the
// element. Absence is signalled by the exactly-empty string and nothing
// else. A zero-field struct target succeeds without reading the input at
// all: callers routing non-empty text at a unit target get no diagnostic,
// that contract is theirs to keep.
//
// Unmarshal never retains text. The returned error is always of type *Error.
func Unmarshal(text string, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return Errorf("invalid unmarshal target %T, expected a non-nil pointer", v)
	}
	if err := unmarshalValue(text, rv.Elem()); err != nil {
		return err
	}
	return nil
}

// Parse is the generic form of Unmarshal. On failure the returned value is
// meaningless.
func Parse[T any](text string) (T, error) {
	var out T
	if err := Unmarshal(text, &out); err != nil {
		return out, err
	}
	return out, nil
}

// ParseWith is Parse with failures mapped through conv, for callers whose
// API surfaces a domain error type instead of *Error.
//
//	setting, err := plain.ParseWith[Setting](text, func(e *plain.Error) ConfigError {
//		return ConfigError{Key: key, Reason: e.Message}
//	})
func ParseWith[T any, E error](text string, conv func(*Error) E) (T, error) {
	var out T
	if err := Unmarshal(text, &out); err != nil {
		return out, conv(err.(*Error))
	}
	return out, nil
}

func unmarshalValue(text string, v reflect.Value) *Error {
	// The pointer absence rule runs before the element's own parser: an
	// empty input means nil even when the element type could parse "".
	if v.Kind() == reflect.Pointer {
		if text == "" {
			v.SetZero()
			return nil
		}
		if v.IsNil() {
			v.Set(reflect.New(v.Type().Elem()))
		}
		return unmarshalValue(text, v.Elem())
	}

	if v.CanAddr() {
		if u, ok := v.Addr().Interface().(encoding.TextUnmarshaler); ok {
			if err := u.UnmarshalText([]byte(text)); err != nil {
				return adoptErr(err)
			}
			return nil
		}
	}

	switch v.Kind() {
	case reflect.String:
		v.SetString(text)
	case reflect.Bool:
		b, err := strconv.ParseBool(text)
		if err != nil {
			return invalidValue(text, v.Type().String(), err)
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(text, 10, v.Type().Bits())
		if err != nil {
			return invalidValue(text, v.Type().String(), err)
		}
		v.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(text, 10, v.Type().Bits())
		if err != nil {
			return invalidValue(text, v.Type().String(), err)
		}
		v.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(text, v.Type().Bits())
		if err != nil {
			return invalidValue(text, v.Type().String(), err)
		}
		v.SetFloat(f)
	case reflect.Complex64, reflect.Complex128:
		c, err := strconv.ParseComplex(text, v.Type().Bits())
		if err != nil {
			return invalidValue(text, v.Type().String(), err)
		}
		v.SetComplex(c)
	case reflect.Struct:
		if v.NumField() == 0 {
			return nil
		}
		return Errorf("cannot unmarshal plain value into %s", v.Type())
	case reflect.Interface:
		if v.NumMethod() == 0 {
			v.Set(reflect.ValueOf(text))
			return nil
		}
		return Errorf("cannot unmarshal plain value into %s", v.Type())
	default:
		return Errorf("cannot unmarshal plain value into %s", v.Type())
	}
	return nil
}
