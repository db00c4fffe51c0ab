package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"strings"
)

const plainPackagePath = "github.com/plainkit/plain"

type printFn func(format string, args ...any)

// emit renders the generated file for pkgName's enums, gofmt-formatted.
func emit(pkgName string, enums []*enum) ([]byte, error) {
	var body bytes.Buffer
	p := func(format string, args ...any) {
		_, _ = fmt.Fprintln(&body, fmt.Sprintf(format, args...))
	}

	p(`// Code generated by plaingen. DO NOT EDIT.`)
	p(``)
	p(`package %s`, pkgName)
	p(``)
	p(`import (`)
	p(`	"encoding"`)
	p(``)
	p(`	"%s"`, plainPackagePath)
	p(`)`)

	for _, e := range enums {
		emitEnum(p, e)
	}

	src, err := format.Source(body.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated code for package %s: %w", pkgName, err)
	}
	return src, nil
}

func emitEnum(p printFn, e *enum) {
	t := e.typeName()
	names := e.parseNames()

	p(``)
	p(`// MarshalText implements encoding.TextMarshaler for %s.`, t)
	p(`func (x %s) MarshalText() ([]byte, error) {`, t)
	p(`	switch x {`)
	for _, v := range e.variants {
		if v.aliasOf >= 0 {
			continue
		}
		p(`	case %s:`, v.constName)
		p(`		return []byte(%q), nil`, v.name)
	}
	p(`	}`)
	p(`	return nil, %s`, invalidValueExpr(e))
	p(`}`)

	p(``)
	p(`// UnmarshalText implements encoding.TextUnmarshaler for %s.`, t)
	p(`func (x *%s) UnmarshalText(text []byte) error {`, t)
	p(`	switch string(text) {`)
	emitted := make(map[string]bool, len(e.variants))
	for _, v := range e.variants {
		if emitted[v.name] {
			continue
		}
		emitted[v.name] = true
		p(`	case %q:`, v.name)
		p(`		*x = %s`, v.constName)
	}
	p(`	default:`)
	p(`		return plain.UnknownVariantError(string(text), %s)`, quoteList(names))
	p(`	}`)
	p(`	return nil`)
	p(`}`)

	p(``)
	p(`// String implements fmt.Stringer for %s.`, t)
	p(`func (x %s) String() string {`, t)
	p(`	return plain.String(x)`)
	p(`}`)

	p(``)
	p(`// Set implements flag.Value for %s.`, t)
	p(`func (x *%s) Set(s string) error {`, t)
	p(`	return plain.Unmarshal(s, x)`)
	p(`}`)

	p(``)
	p(`// Type names %s for pflag-style flag registration.`, t)
	p(`func (%s) Type() string {`, t)
	p(`	return %q`, t)
	p(`}`)

	ctor := constructorName(t)
	p(``)
	p(`// %s parses a %s from its plain string form.`, ctor, t)
	p(`func %s(s string) (%s, error) {`, ctor, t)
	p(`	return plain.Parse[%s](s)`, t)
	p(`}`)

	p(``)
	p(`var _ encoding.TextMarshaler = *new(%s)`, t)
	p(`var _ encoding.TextUnmarshaler = (*%s)(nil)`, t)
}

// invalidValueExpr is the MarshalText fallback for in-memory values that are
// not declared variants.
func invalidValueExpr(e *enum) string {
	if e.stringBacked() {
		return fmt.Sprintf("plain.Errorf(\"invalid value `%%s`, expected a valid %s\", string(x))", e.typeName())
	}
	cast := "int64"
	if e.unsigned() {
		cast = "uint64"
	}
	return fmt.Sprintf("plain.Errorf(\"invalid value `%%d`, expected a valid %s\", %s(x))", e.typeName(), cast)
}

// generatedMethodNames are the methods every enum gains; plus the Parse
// constructor, they make up the surface a package must not already declare.
var generatedMethodNames = []string{"MarshalText", "UnmarshalText", "String", "Set", "Type"}

// constructorName is the Parse function's name, unexported for unexported
// types.
func constructorName(typeName string) string {
	if token.IsExported(typeName) {
		return "Parse" + typeName
	}
	return "parse" + toPascal(typeName)
}

func quoteList(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = fmt.Sprintf("%q", n)
	}
	return strings.Join(quoted, ", ")
}
