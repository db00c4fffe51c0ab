package plain

import "fmt"

// Setter is the parsing half of flag.Value. Types that already know how to
// parse themselves expose it, and generated Set methods provide it.
type Setter interface {
	Set(string) error
}

// MarshalText derives the encoding.TextMarshaler side from an existing String
// method, for types whose rendering is hand-written rather than generated:
//
//	func (p Priority) MarshalText() ([]byte, error) { return plain.MarshalText(p) }
//
// Every structured framework that honors encoding.TextMarshaler then renders
// the type exactly as its String method does.
func MarshalText(v fmt.Stringer) ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText derives the encoding.TextUnmarshaler side from an existing
// Set method. expected describes the accepted input and is quoted into the
// invalid-value message when Set rejects the text, with Set's own error kept
// as the cause:
//
//	func (p *Priority) UnmarshalText(text []byte) error {
//		return plain.UnmarshalText(p, text, "a priority between 0 and 9")
//	}
func UnmarshalText(v Setter, text []byte, expected string) error {
	if err := v.Set(string(text)); err != nil {
		return invalidValue(string(text), expected, err)
	}
	return nil
}
