package codegen

import (
	"errors"
	"fmt"
	"go/token"
	"io"
	"log/slog"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/packages"

	"github.com/plainkit/plain/internal/files"
)

const defaultOutput = "plain_gen.go"

// Options configure Generate.
type Options struct {
	// Types names the enum types to generate for. When empty, the
	// package's plain.toml [types] sections supply the list.
	Types []string

	// Rename, TrimPrefix and Output override the package's plain.toml.
	// Empty means unset.
	Rename     string
	TrimPrefix string
	Output     string

	// Logger receives progress at debug level. Nil discards it.
	Logger *slog.Logger
}

// Generate loads the packages matching patterns, relative to dir, and writes
// one file per package implementing the text codec surface of the requested
// enum types. Packages are processed concurrently and diagnostics from all
// of them are reported together, not just the first failure.
func Generate(dir string, patterns []string, opts Options) error {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if len(patterns) == 0 {
		patterns = []string{"."}
	}

	fset := token.NewFileSet()
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedSyntax | packages.NeedImports | packages.NeedTypes | packages.NeedTypesInfo,
		Dir:  dir,
		Fset: fset,
	}
	pkgList, err := packages.Load(cfg, patterns...)
	if err != nil {
		return fmt.Errorf("packages.Load: %w", err)
	}
	if len(pkgList) == 0 {
		return fmt.Errorf("no packages matched %v", patterns)
	}

	start := time.Now()
	errs := make([]error, len(pkgList))
	var group errgroup.Group
	group.SetLimit(runtime.GOMAXPROCS(0))
	for i, pkg := range pkgList {
		i, pkg := i, pkg
		group.Go(func() error {
			errs[i] = generatePackage(fset, pkg, opts)
			return nil
		})
	}
	_ = group.Wait()
	if err := errors.Join(errs...); err != nil {
		return err
	}

	opts.Logger.Debug("generation complete",
		"packages", len(pkgList),
		"elapsed", time.Since(start),
	)
	return nil
}

func generatePackage(fset *token.FileSet, pkg *packages.Package, opts Options) error {
	if len(pkg.Syntax) == 0 {
		var errs []error
		for _, perr := range pkg.Errors {
			errs = append(errs, perr)
		}
		return errors.Join(errs...)
	}

	g, err := newGenerator(pkg, fset, opts)
	if err != nil {
		return err
	}
	return g.generate()
}

type generator struct {
	pkg    *packages.Package
	fset   *token.FileSet
	opts   Options
	output string
	enums  []*enum
}

func newGenerator(pkg *packages.Package, fset *token.FileSet, opts Options) (*generator, error) {
	cfg, err := loadConfig(pkgDir(fset, pkg))
	if err != nil {
		return nil, err
	}

	typeNames := opts.Types
	if len(typeNames) == 0 {
		typeNames = cfg.typeNames()
	}
	if len(typeNames) == 0 {
		return nil, fmt.Errorf("%s: no types requested, pass --type or add [types] sections to %s",
			pkg.PkgPath, configFile)
	}

	var errs []error
	for _, perr := range pkg.Errors {
		if tolerableError(perr, typeNames) {
			opts.Logger.Debug("tolerating load error for a declaration scheduled for generation",
				"package", pkg.PkgPath, "err", perr.Msg)
			continue
		}
		errs = append(errs, perr)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	output := opts.Output
	if output == "" {
		output = cfg.Output
	}
	if output == "" {
		output = defaultOutput
	}

	g := &generator{pkg: pkg, fset: fset, opts: opts, output: output}
	for _, typeName := range typeNames {
		policyName := opts.Rename
		if policyName == "" {
			policyName = cfg.renameFor(typeName)
		}
		rename, err := renamePolicy(policyName)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %s: %w", pkg.PkgPath, typeName, err))
			continue
		}
		trimPrefix := opts.TrimPrefix
		if trimPrefix == "" {
			trimPrefix = cfg.trimPrefixFor(typeName)
		}

		e, err := findEnum(pkg, typeName)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if e.stringBacked() && policyName != "" && policyName != "none" {
			opts.Logger.Debug("rename policy ignored, string-backed enums carry explicit values",
				"package", pkg.PkgPath, "type", typeName, "rename", policyName)
		}
		if err := applyNaming(fset, e, rename, trimPrefix); err != nil {
			errs = append(errs, err)
			continue
		}
		if err := g.checkCollisions(e); err != nil {
			errs = append(errs, err)
			continue
		}

		opts.Logger.Debug("enum discovered",
			"package", pkg.PkgPath,
			"type", typeName,
			"variants", len(e.variants),
			"stringBacked", e.stringBacked(),
		)
		g.enums = append(g.enums, e)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	return g, nil
}

// tolerableError reports whether a load error only concerns declarations
// generation is about to (re)create: the Parse constructors and the
// generated methods. Packages that already call the generated surface could
// otherwise never bootstrap or regenerate after removing a variant.
func tolerableError(perr packages.Error, typeNames []string) bool {
	if perr.Kind == packages.ListError || perr.Kind == packages.ParseError {
		return false
	}
	for _, t := range typeNames {
		if strings.Contains(perr.Msg, "undefined: "+constructorName(t)) {
			return true
		}
		if !strings.Contains(perr.Msg, "type "+t+" ") {
			continue
		}
		for _, m := range generatedMethodNames {
			if strings.Contains(perr.Msg, "no field or method "+m+")") {
				return true
			}
		}
	}
	return false
}

// checkCollisions rejects enums that declare the generated surface outside
// the output file. A previous run's output is fair game to overwrite.
func (g *generator) checkCollisions(e *enum) error {
	var errs []error
	fromOutput := func(pos token.Pos) bool {
		return filepath.Base(g.fset.Position(pos).Filename) == g.output
	}

	for i := 0; i < e.named.NumMethods(); i++ {
		m := e.named.Method(i)
		if !slices.Contains(generatedMethodNames, m.Name()) {
			continue
		}
		if fromOutput(m.Pos()) {
			continue
		}
		errs = append(errs, errorf(g.fset, m.Pos(),
			"%s already declares %s, which plaingen would generate", e.typeName(), m.Name()))
	}

	ctor := constructorName(e.typeName())
	if obj := g.pkg.Types.Scope().Lookup(ctor); obj != nil && !fromOutput(obj.Pos()) {
		errs = append(errs, errorf(g.fset, obj.Pos(),
			"%s is already declared, which plaingen would generate for %s", ctor, e.typeName()))
	}

	return errors.Join(errs...)
}

func (g *generator) generate() error {
	if len(g.enums) == 0 {
		return nil
	}

	src, err := emit(g.pkg.Name, g.enums)
	if err != nil {
		return err
	}

	filename := filepath.Join(pkgDir(g.fset, g.pkg), g.output)
	dst := files.NewWriter(filename)
	defer dst.Cleanup()
	if _, err := dst.Write(src); err != nil {
		return err
	}
	if err := dst.Close(); err != nil {
		return err
	}

	g.opts.Logger.Debug("wrote generated file",
		"file", filename,
		"bytes", len(src),
		"enums", len(g.enums),
	)
	return nil
}

// pkgDir is the directory holding pkg's first source file.
func pkgDir(fset *token.FileSet, pkg *packages.Package) string {
	return filepath.Dir(fset.Position(pkg.Syntax[0].Package).Filename)
}

// errorf prefixes an error with its file:line:column position, relative to
// the working directory when possible.
func errorf(fset *token.FileSet, pos token.Pos, format string, args ...any) error {
	position := fset.Position(pos)
	if cwd, err := filepath.Abs("."); err == nil {
		if filename, err := filepath.Rel(cwd, position.Filename); err == nil {
			position.Filename = filename
		}
	}
	return fmt.Errorf("%s: %w", position, fmt.Errorf(format, args...))
}
