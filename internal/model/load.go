package model

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"
)

// Raw document shapes as they appear in a model file. Literal values are
// decoded into strings so they reach the output verbatim.
type rawModel struct {
	Namespace       string           `yaml:"namespace" toml:"namespace"`
	Version         string           `yaml:"version" toml:"version"`
	PublicationDate string           `yaml:"publication_date" toml:"publication_date"`
	Enumerations    []rawEnumeration `yaml:"enumerations" toml:"enumerations"`
	Classes         []rawClass       `yaml:"classes" toml:"classes"`
}

type rawEnumeration struct {
	Name        string       `yaml:"name" toml:"name"`
	Description string       `yaml:"description" toml:"description"`
	Literals    []rawLiteral `yaml:"literals" toml:"literals"`
}

type rawLiteral struct {
	Name  string `yaml:"name" toml:"name"`
	Value string `yaml:"value" toml:"value"`
}

type rawClass struct {
	Name        string        `yaml:"name" toml:"name"`
	Description string        `yaml:"description" toml:"description"`
	Abstract    bool          `yaml:"abstract" toml:"abstract"`
	Base        string        `yaml:"base" toml:"base"`
	Properties  []rawProperty `yaml:"properties" toml:"properties"`
}

type rawProperty struct {
	Name string `yaml:"name" toml:"name"`
	Type string `yaml:"type" toml:"type"`
}

// Load reads a model document (.yaml, .yml, or .toml by extension) and
// builds a validated SymbolTable. All validation problems found in one
// pass are joined into the returned error.
func Load(path string) (*SymbolTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model %s: %w", path, err)
	}

	var raw rawModel
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse model %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse model %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("model %s: unsupported extension %q (expected .yaml, .yml, or .toml)", path, ext)
	}

	st, err := build(&raw)
	if err != nil {
		return nil, fmt.Errorf("model %s: %w", path, err)
	}
	return st, nil
}

// build links and validates a raw document into a SymbolTable.
func build(raw *rawModel) (*SymbolTable, error) {
	var problems []error
	report := func(format string, args ...any) {
		problems = append(problems, fmt.Errorf(format, args...))
	}

	if raw.Namespace == "" {
		report("missing namespace")
	}
	if raw.Version == "" {
		report("missing version")
	}

	st := &SymbolTable{
		Namespace:       raw.Namespace,
		Version:         raw.Version,
		PublicationDate: raw.PublicationDate,
	}

	// First pass: create all entities so references and bases can be
	// resolved regardless of declaration order.
	byName := make(map[string]Entity)
	declare := func(name string, e Entity) {
		if name == "" {
			report("entity with empty name")
			return
		}
		if !isLegalIdentifier(name) {
			report("entity %q: illegal identifier", name)
		}
		if _, dup := byName[name]; dup {
			report("duplicate entity name %q", name)
			return
		}
		byName[name] = e
	}

	for _, re := range raw.Enumerations {
		e := &Enumeration{Name: re.Name, Description: re.Description}
		declare(re.Name, e)
		st.Enumerations = append(st.Enumerations, e)
	}
	for _, rc := range raw.Classes {
		c := &Class{Name: rc.Name, Description: rc.Description, Abstract: rc.Abstract}
		declare(rc.Name, c)
		st.Classes = append(st.Classes, c)
	}

	// Second pass: literals, bases, and property types.
	for i, re := range raw.Enumerations {
		e := st.Enumerations[i]
		seen := make(map[string]bool)
		for _, rl := range re.Literals {
			if rl.Name == "" {
				report("enumeration %s: literal with empty name", e.Name)
				continue
			}
			if !isLegalIdentifier(rl.Name) {
				report("enumeration %s: literal %q: illegal identifier", e.Name, rl.Name)
			}
			if seen[rl.Name] {
				report("enumeration %s: duplicate literal %q", e.Name, rl.Name)
				continue
			}
			seen[rl.Name] = true
			e.Literals = append(e.Literals, Literal{Name: rl.Name, Value: rl.Value})
		}
	}

	for i, rc := range raw.Classes {
		c := st.Classes[i]
		if rc.Base != "" {
			base, ok := byName[rc.Base]
			if !ok {
				report("class %s: unknown base %q", c.Name, rc.Base)
			} else if baseClass, isClass := base.(*Class); !isClass {
				report("class %s: base %q is not a class", c.Name, rc.Base)
			} else {
				c.Base = baseClass
			}
		}

		seen := make(map[string]bool)
		for _, rp := range rc.Properties {
			if rp.Name == "" {
				report("class %s: property with empty name", c.Name)
				continue
			}
			if !isLegalIdentifier(rp.Name) {
				report("class %s: property %q: illegal identifier", c.Name, rp.Name)
			}
			if seen[rp.Name] {
				report("class %s: duplicate property %q", c.Name, rp.Name)
				continue
			}
			seen[rp.Name] = true

			ta, err := ParseTypeExpr(rp.Type, byName)
			if err != nil {
				report("class %s: property %s: %w", c.Name, rp.Name, err)
				continue
			}
			c.Properties = append(c.Properties, Property{Name: rp.Name, Type: ta})
		}
	}

	// Third pass: inheritance cycles.
	for _, c := range st.Classes {
		slow, fast := c, c.Base
		for fast != nil {
			if fast == slow {
				report("class %s: inheritance cycle", c.Name)
				break
			}
			slow = slow.Base
			fast = fast.Base
			if fast != nil {
				fast = fast.Base
			}
		}
	}

	if len(problems) > 0 {
		return nil, errors.Join(problems...)
	}
	return st, nil
}

// ParseTypeExpr parses a property type expression into a TypeAnnotation.
// The grammar is: a primitive name (bool, int, float, string, bytes), an
// entity name, List[<expr>], or Optional[<expr>]. Optional may not wrap
// Optional, and Optional/List nest at most one level.
func ParseTypeExpr(expr string, entities map[string]Entity) (TypeAnnotation, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, errors.New("empty type expression")
	}

	if inner, ok := unwrap(expr, "Optional"); ok {
		ta, err := parseNonOptional(inner, entities)
		if err != nil {
			return nil, err
		}
		return Optional{Inner: ta}, nil
	}
	return parseNonOptional(expr, entities)
}

func parseNonOptional(expr string, entities map[string]Entity) (TypeAnnotation, error) {
	expr = strings.TrimSpace(expr)
	if _, ok := unwrap(expr, "Optional"); ok {
		return nil, fmt.Errorf("Optional may not be nested in %q", expr)
	}
	if inner, ok := unwrap(expr, "List"); ok {
		item, err := parseAtom(strings.TrimSpace(inner), entities)
		if err != nil {
			return nil, err
		}
		return List{Item: item}, nil
	}
	return parseAtom(expr, entities)
}

func parseAtom(expr string, entities map[string]Entity) (TypeAnnotation, error) {
	switch expr {
	case "bool":
		return Primitive{Kind: KindBool}, nil
	case "int":
		return Primitive{Kind: KindInt}, nil
	case "float":
		return Primitive{Kind: KindFloat}, nil
	case "string":
		return Primitive{Kind: KindString}, nil
	case "bytes":
		return Primitive{Kind: KindBytes}, nil
	}
	if strings.ContainsAny(expr, "[]") {
		return nil, fmt.Errorf("unsupported nesting in type expression %q", expr)
	}
	target, ok := entities[expr]
	if !ok {
		return nil, fmt.Errorf("unknown type %q", expr)
	}
	return Reference{Target: target}, nil
}

// unwrap returns the bracketed inner expression when expr has the form
// wrapper[...].
func unwrap(expr, wrapper string) (string, bool) {
	if strings.HasPrefix(expr, wrapper+"[") && strings.HasSuffix(expr, "]") {
		return expr[len(wrapper)+1 : len(expr)-1], true
	}
	return "", false
}

// isLegalIdentifier reports whether name is a letter followed by
// letters, digits, or underscores.
func isLegalIdentifier(name string) bool {
	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r == '_' && i > 0:
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return name != ""
}
