package codegen

import (
	"testing"
)

func TestRenamePolicies(t *testing.T) {
	for _, test := range []struct {
		policy string
		in     string
		want   string
	}{
		{"none", "FooBarBaz", "FooBarBaz"},
		{"lowercase", "FooBarBaz", "foobarbaz"},
		{"UPPERCASE", "FooBarBaz", "FOOBARBAZ"},
		{"PascalCase", "fooBarBaz", "FooBarBaz"},
		{"camelCase", "FooBarBaz", "fooBarBaz"},
		{"snake_case", "FooBarBaz", "foo_bar_baz"},
		{"SCREAMING_SNAKE_CASE", "FooBarBaz", "FOO_BAR_BAZ"},
		{"kebab-case", "FooBarBaz", "foo-bar-baz"},
		{"SCREAMING-KEBAB-CASE", "FooBarBaz", "FOO-BAR-BAZ"},

		// Word boundaries are uppercase runes, so acronyms split per
		// letter. String-backed enums are the escape hatch.
		{"snake_case", "HTTPStatus", "h_t_t_p_status"},
		{"kebab-case", "OAuth", "o-auth"},

		// The empty policy means none.
		{"", "FooBarBaz", "FooBarBaz"},

		{"camelCase", "", ""},
		{"PascalCase", "x", "X"},
		{"snake_case", "Solo", "solo"},
	} {
		t.Run(test.policy+"/"+test.in, func(t *testing.T) {
			fn, err := renamePolicy(test.policy)
			if err != nil {
				t.Fatal(err)
			}
			if got, want := fn(test.in), test.want; got != want {
				t.Errorf("%s(%q): got %q, want %q", test.policy, test.in, got, want)
			}
		})
	}
}

func TestUnknownRenamePolicy(t *testing.T) {
	_, err := renamePolicy("SHOUTING")
	if err == nil {
		t.Fatal("got nil error for an unknown policy")
	}
	want := `unknown rename policy "SHOUTING", expected one of ` +
		"PascalCase, SCREAMING-KEBAB-CASE, SCREAMING_SNAKE_CASE, UPPERCASE, " +
		"camelCase, kebab-case, lowercase, none, snake_case"
	if got := err.Error(); got != want {
		t.Errorf("got  %q\nwant %q", got, want)
	}
}
