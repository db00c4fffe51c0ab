// Package plain converts values to and from their plain, unstructured string
// form.
//
// The plain form of a value is the bare token a structured format would use
// for it: what encoding/json puts between the quotes, what a TOML value or a
// CLI flag carries. Marshal renders bools, integers, floats, complex numbers
// and strings through strconv, treats nil pointers and untyped nil as the
// empty string, and dereferences non-nil pointers. A type implementing
// encoding.TextMarshaler or encoding.TextUnmarshaler owns its own conversion,
// which keeps plain output byte-identical with every structured framework
// honoring those interfaces. fmt.Stringer is deliberately ignored: String is
// a display concern and following it would let plain output drift from the
// serialized schema.
//
// Values with internal structure have no plain form. Marshal rejects slices,
// byte slices included, arrays, maps, structs with fields and named
// zero-field structs with an error satisfying
//
//	errors.Is(err, plain.ErrUnrepresentable)
//
// The intended use is keeping free-form string handling, CLI flags above
// all, in lockstep with a serialization schema. For an enum type
//
//	type Level int
//
//	const (
//	    LevelDebug Level = iota
//	    LevelInfo
//	    LevelError
//	)
//
// the plaingen tool (cmd/plaingen) generates MarshalText, UnmarshalText,
// String, Set, Type and ParseLevel from the declared constants, with
// configurable renaming (snake_case, kebab-case, ...). The generated type
// satisfies flag.Value, pflag.Value, fmt.Stringer and both encoding.Text
// interfaces from one variant table, so "--level=debug", JSON, YAML and TOML
// all agree on the spelling, and an unknown input reports
//
//	unknown variant `warn`, expected `debug`, `info` or `error`
//
// For the opposite direction, types with a hand-written String or Set method
// can derive the encoding.Text side from them with plain.MarshalText and
// plain.UnmarshalText.
package plain
