package codegen

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/exp/maps"
)

// renamePolicies maps policy names to the transformation applied to a
// variant's base name (the constant identifier minus the trimmed prefix).
// Word boundaries are uppercase runes, nothing smarter: FooBarBaz splits as
// Foo/Bar/Baz and an acronym like HTTP splits per letter. Enums whose names
// need hand-tuned spellings should be string-backed, the declared value is
// taken verbatim.
var renamePolicies = map[string]func(string) string{
	"none":                 func(s string) string { return s },
	"lowercase":            strings.ToLower,
	"UPPERCASE":            strings.ToUpper,
	"PascalCase":           toPascal,
	"camelCase":            toCamel,
	"snake_case":           toSnake,
	"SCREAMING_SNAKE_CASE": toScreamingSnake,
	"kebab-case":           toKebab,
	"SCREAMING-KEBAB-CASE": toScreamingKebab,
}

// renamePolicy resolves a policy by name. The empty name is "none".
func renamePolicy(name string) (func(string) string, error) {
	if name == "" {
		name = "none"
	}
	fn, ok := renamePolicies[name]
	if !ok {
		known := maps.Keys(renamePolicies)
		sort.Strings(known)
		return nil, fmt.Errorf("unknown rename policy %q, expected one of %s", name, strings.Join(known, ", "))
	}
	return fn, nil
}

func toSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

func toScreamingSnake(s string) string {
	return strings.ToUpper(toSnake(s))
}

func toKebab(s string) string {
	return strings.ReplaceAll(toSnake(s), "_", "-")
}

func toScreamingKebab(s string) string {
	return strings.ReplaceAll(toScreamingSnake(s), "_", "-")
}

func toCamel(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

func toPascal(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
