package plain

import (
	"encoding"
	"reflect"
	"strconv"
)

var textMarshalerType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()

// Marshal renders v as its plain string form.
//
// Bools, integers, floats, complex numbers and strings render through
// strconv. Untyped nil, nil pointers and nil interfaces render as the empty
// string; non-nil pointers and interfaces render as their element. A value
// implementing encoding.TextMarshaler renders as whatever its MarshalText
// produces, so enum types carry their own variant names. An unnamed
// zero-field struct renders as the empty string.
//
// Everything else has no plain form: slices (byte slices included), arrays,
// maps, channels, funcs, named zero-field structs and structs with fields.
// For those Marshal returns an error satisfying
// errors.Is(err, ErrUnrepresentable). The returned error is always of type
// *Error.
func Marshal(v any) (string, error) {
	s, err := marshalValue(reflect.ValueOf(v))
	if err != nil {
		return "", err
	}
	return s, nil
}

// String renders v like Marshal and panics if v has no plain form. It backs
// generated String methods, which only exist on types whose every declared
// variant is representable, so a panic here marks a corrupt in-memory value
// rather than a recoverable condition.
func String(v any) string {
	s, err := Marshal(v)
	if err != nil {
		panic(err)
	}
	return s
}

func marshalValue(v reflect.Value) (string, *Error) {
	if !v.IsValid() {
		return "", nil
	}

	// A nil never reaches a marshaler method: absence wins over the
	// element type's own rendering.
	if k := v.Kind(); k == reflect.Pointer || k == reflect.Interface {
		if v.IsNil() {
			return "", nil
		}
	}

	if m, ok := textMarshaler(v); ok {
		text, err := m.MarshalText()
		if err != nil {
			return "", adoptErr(err)
		}
		return string(text), nil
	}

	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		return marshalValue(v.Elem())
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'g', -1, v.Type().Bits()), nil
	case reflect.Complex64, reflect.Complex128:
		return strconv.FormatComplex(v.Complex(), 'g', -1, v.Type().Bits()), nil
	case reflect.String:
		return v.String(), nil
	case reflect.Struct:
		// Only the unnamed empty struct is the unit value. A named
		// zero-field type is a distinct shape and stays rejected, or a
		// round trip would silently conflate it with unit.
		if v.NumField() == 0 && v.Type().Name() == "" {
			return "", nil
		}
		return "", &Error{Unrepresentable: true}
	default:
		return "", &Error{Unrepresentable: true}
	}
}

// textMarshaler returns v's encoding.TextMarshaler. A pointer-receiver
// implementation on an unaddressable value is reached through an addressable
// copy.
func textMarshaler(v reflect.Value) (encoding.TextMarshaler, bool) {
	if v.Type().Implements(textMarshalerType) {
		return v.Interface().(encoding.TextMarshaler), true
	}
	if reflect.PointerTo(v.Type()).Implements(textMarshalerType) {
		if v.CanAddr() {
			return v.Addr().Interface().(encoding.TextMarshaler), true
		}
		p := reflect.New(v.Type())
		p.Elem().Set(v)
		return p.Interface().(encoding.TextMarshaler), true
	}
	return nil, false
}
