package codegen

import (
	"errors"
	"fmt"
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"strings"

	"golang.org/x/tools/go/packages"
)

// enum is a defined integer- or string-backed type together with every
// package-level constant declared with that exact type, in declaration
// order. Declaration order is load-bearing: it fixes both the rendered name
// of aliased values and the expected-variant list in parse errors.
type enum struct {
	obj      *types.TypeName
	named    *types.Named
	basic    *types.Basic
	variants []*variant
}

// variant is one declared constant of an enum type.
type variant struct {
	constName string // declared identifier
	name      string // serialized spelling, filled in by applyNaming
	value     constant.Value
	pos       token.Pos

	// aliasOf is the index of the first variant sharing this value, or -1.
	// Aliases parse under their own name but never render: the first
	// declaration owns the value's string form.
	aliasOf int
}

func (e *enum) typeName() string {
	return e.obj.Name()
}

func (e *enum) stringBacked() bool {
	return e.basic.Info()&types.IsString != 0
}

func (e *enum) unsigned() bool {
	return e.basic.Info()&types.IsUnsigned != 0
}

// parseNames returns the serialized spellings accepted by UnmarshalText, in
// declaration order, deduplicated.
func (e *enum) parseNames() []string {
	seen := make(map[string]bool, len(e.variants))
	var names []string
	for _, v := range e.variants {
		if seen[v.name] {
			continue
		}
		seen[v.name] = true
		names = append(names, v.name)
	}
	return names
}

// findEnum locates typeName in pkg and collects its variants.
func findEnum(pkg *packages.Package, typeName string) (*enum, error) {
	obj := pkg.Types.Scope().Lookup(typeName)
	if obj == nil {
		return nil, fmt.Errorf("%s: no type named %s", pkg.PkgPath, typeName)
	}
	tn, ok := obj.(*types.TypeName)
	if !ok {
		return nil, errorf(pkg.Fset, obj.Pos(), "%s is not a type", typeName)
	}
	if tn.IsAlias() {
		return nil, errorf(pkg.Fset, obj.Pos(), "%s is a type alias, enums must be defined types", typeName)
	}
	named, ok := tn.Type().(*types.Named)
	if !ok {
		return nil, errorf(pkg.Fset, obj.Pos(), "%s is not a defined type", typeName)
	}
	if named.TypeParams().Len() > 0 {
		return nil, errorf(pkg.Fset, obj.Pos(), "%s is generic, enums cannot have type parameters", typeName)
	}
	basic, ok := named.Underlying().(*types.Basic)
	if !ok || basic.Info()&(types.IsInteger|types.IsString) == 0 {
		return nil, errorf(pkg.Fset, obj.Pos(),
			"%s must be backed by an integer or string type, not %s", typeName, named.Underlying())
	}

	e := &enum{obj: tn, named: named, basic: basic}
	byValue := make(map[string]int)
	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			genDecl, ok := decl.(*ast.GenDecl)
			if !ok || genDecl.Tok != token.CONST {
				continue
			}
			for _, spec := range genDecl.Specs {
				valSpec, ok := spec.(*ast.ValueSpec)
				if !ok {
					continue
				}
				for _, ident := range valSpec.Names {
					if ident.Name == "_" {
						continue
					}
					def, ok := pkg.TypesInfo.Defs[ident]
					if !ok {
						continue
					}
					c, ok := def.(*types.Const)
					if !ok || !types.Identical(c.Type(), named) {
						continue
					}
					v := &variant{
						constName: ident.Name,
						value:     c.Val(),
						pos:       ident.Pos(),
						aliasOf:   -1,
					}
					key := c.Val().ExactString()
					if first, ok := byValue[key]; ok {
						v.aliasOf = first
					} else {
						byValue[key] = len(e.variants)
					}
					e.variants = append(e.variants, v)
				}
			}
		}
	}

	if len(e.variants) == 0 {
		return nil, errorf(pkg.Fset, obj.Pos(), "no constants of type %s declared in %s", typeName, pkg.PkgPath)
	}
	return e, nil
}

// applyNaming fills in each variant's serialized spelling. Integer-backed
// enums derive it from the constant identifier through trimPrefix and the
// rename policy; string-backed enums take the declared value verbatim. Two
// variants with distinct values may not share a spelling.
func applyNaming(fset *token.FileSet, e *enum, rename func(string) string, trimPrefix string) error {
	var errs []error
	first := make(map[string]*variant)
	for _, v := range e.variants {
		if e.stringBacked() {
			v.name = constant.StringVal(v.value)
		} else {
			base := strings.TrimPrefix(v.constName, trimPrefix)
			if base == "" {
				errs = append(errs, errorf(fset, v.pos,
					"trimming prefix %q leaves %s without a name", trimPrefix, v.constName))
				continue
			}
			v.name = rename(base)
		}

		prev, ok := first[v.name]
		if !ok {
			first[v.name] = v
			continue
		}
		if constant.Compare(prev.value, token.EQL, v.value) {
			// Same value, same spelling: a harmless alias.
			continue
		}
		errs = append(errs, errorf(fset, v.pos,
			"variant name %q of %s collides with %s, rename one or adjust the policy",
			v.name, v.constName, prev.constName))
	}
	return errors.Join(errs...)
}
