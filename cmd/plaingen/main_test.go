package main

import (
	"os"
	"slices"
	"strings"
	"testing"
)

// The loglevel example ships a go:generate directive invoking this command,
// and its checked-in generated file was produced with exactly the directive's
// settings. pflag only accepts long flags spelled with a double dash, so the
// directive must parse here or `go generate` on the example fails.
func TestExampleDirectiveParses(t *testing.T) {
	src, err := os.ReadFile("../../examples/loglevel/level.go")
	if err != nil {
		t.Fatal(err)
	}
	var args []string
	for _, line := range strings.Split(string(src), "\n") {
		rest, ok := strings.CutPrefix(line, "//go:generate ")
		if !ok {
			continue
		}
		fields := strings.Fields(rest)
		for i, f := range fields {
			if strings.HasSuffix(f, "cmd/plaingen") {
				args = fields[i+1:]
			}
		}
	}
	if args == nil {
		t.Fatal("examples/loglevel/level.go has no go:generate directive invoking cmd/plaingen")
	}

	cmd, flags, err := rootCmd().Find(args)
	if err != nil {
		t.Fatalf("Find(%v): %v", args, err)
	}
	if got, want := cmd.Name(), "generate"; got != want {
		t.Fatalf("Find(%v): got command %q, want %q", args, got, want)
	}
	if err := cmd.ParseFlags(flags); err != nil {
		t.Fatalf("ParseFlags(%v): %v", flags, err)
	}
	for flag, want := range map[string]string{
		"type":       "Level",
		"rename":     "lowercase",
		"trimprefix": "Level",
	} {
		got, err := cmd.Flags().GetString(flag)
		if err != nil {
			t.Fatalf("GetString(%q): %v", flag, err)
		}
		if got != want {
			t.Errorf("flag --%s: got %q, want %q", flag, got, want)
		}
	}
	if got, want := cmd.Flags().Args(), []string{"."}; !slices.Equal(got, want) {
		t.Errorf("positional args: got %v, want %v", got, want)
	}
}

// The usage example in the package comment must stay parseable too.
func TestUsageCommentParses(t *testing.T) {
	args := []string{"generate", "--type=Level", "--rename=lowercase", "--trimprefix=Level", "./..."}
	cmd, flags, err := rootCmd().Find(args)
	if err != nil {
		t.Fatalf("Find(%v): %v", args, err)
	}
	if err := cmd.ParseFlags(flags); err != nil {
		t.Fatalf("ParseFlags(%v): %v", flags, err)
	}
	if got, want := cmd.Flags().Args(), []string{"./..."}; !slices.Equal(got, want) {
		t.Errorf("positional args: got %v, want %v", got, want)
	}
}
