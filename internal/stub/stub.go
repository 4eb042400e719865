// Package stub loads declarative class descriptions from TOML files and
// builds type universes from them. Stubs stand in for a real front end: they
// describe the classes, members, and hierarchy the resolver works against.
package stub

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"breeze/internal/types"
)

// ClassStub describes one class in a stub file.
type ClassStub struct {
	Kind       string            `toml:"kind"`
	Super      string            `toml:"super"`
	Interfaces []string          `toml:"interfaces"`
	TypeParams []string          `toml:"type_params"`
	Anonymous  bool              `toml:"anonymous"`
	Fields     []FieldStub       `toml:"fields"`
	Methods    []MethodStub      `toml:"methods"`
	Properties []PropertyStub    `toml:"properties"`
	Ctors      []ConstructorStub `toml:"ctors"`
}

// FieldStub describes one field entry.
type FieldStub struct {
	Name     string `toml:"name"`
	Type     string `toml:"type"`
	Static   bool   `toml:"static"`
	Final    bool   `toml:"final"`
	InitType string `toml:"init_type"`
}

// MethodStub describes one method entry.
type MethodStub struct {
	Name      string   `toml:"name"`
	Returns   string   `toml:"returns"`
	Params    []string `toml:"params"`
	Static    bool     `toml:"static"`
	Abstract  bool     `toml:"abstract"`
	Synthetic bool     `toml:"synthetic"`
}

// PropertyStub describes one property entry. Field names the backing field
// declared on the same class, when there is one.
type PropertyStub struct {
	Name   string `toml:"name"`
	Type   string `toml:"type"`
	Static bool   `toml:"static"`
	Field  string `toml:"field"`
}

// ConstructorStub describes one constructor entry.
type ConstructorStub struct {
	Params []string `toml:"params"`
}

type stubFile struct {
	Class map[string]ClassStub `toml:"class"`
}

// ErrNoClasses indicates a stub file with no [class.*] sections.
var ErrNoClasses = errors.New("no [class] sections")

// LoadUniverse reads a stub file and builds a universe seeded with the
// builtins plus every class the file declares.
func LoadUniverse(path string) (*types.Universe, error) {
	var cfg stubFile
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("class") || len(cfg.Class) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoClasses)
	}
	u, err := Build(cfg.Class)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return u, nil
}

// Build constructs a universe from parsed class stubs. Classes are registered
// first so members and hierarchy edges can reference each other freely.
func Build(classes map[string]ClassStub) (*types.Universe, error) {
	u := types.NewUniverse()
	ids := make(map[string]types.ClassID, len(classes))

	names := sortedNames(classes)
	for _, name := range names {
		cs := classes[name]
		var id types.ClassID
		switch cs.Kind {
		case "", "class":
			id = u.AddClass(name, types.KindClass)
		case "interface":
			id = u.AddClass(name, types.KindInterface)
		case "placeholder":
			id = u.AddPlaceholder(name)
		default:
			return nil, fmt.Errorf("class %q: unknown kind %q", name, cs.Kind)
		}
		ids[name] = id
	}

	r := &resolver{universe: u, ids: ids}
	for _, name := range names {
		if err := r.populate(ids[name], name, classes[name]); err != nil {
			return nil, err
		}
	}
	return u, nil
}

type resolver struct {
	universe *types.Universe
	ids      map[string]types.ClassID
}

func (r *resolver) populate(id types.ClassID, name string, cs ClassStub) error {
	u := r.universe

	if cs.Super != "" {
		super, err := r.lookup(cs.Super)
		if err != nil {
			return fmt.Errorf("class %q: super: %w", name, err)
		}
		u.SetSuper(id, super)
	}
	for _, face := range cs.Interfaces {
		fid, err := r.lookup(face)
		if err != nil {
			return fmt.Errorf("class %q: interface: %w", name, err)
		}
		u.AddInterface(id, fid)
	}
	if len(cs.TypeParams) > 0 {
		params := make([]types.ClassID, 0, len(cs.TypeParams))
		for _, tp := range cs.TypeParams {
			pid, err := r.lookup(tp)
			if err != nil {
				return fmt.Errorf("class %q: type parameter: %w", name, err)
			}
			params = append(params, pid)
		}
		u.SetTypeParams(id, params)
	}
	if cs.Anonymous {
		u.SetAnonymous(id, true)
	}

	fieldByName := make(map[string]*types.Field, len(cs.Fields))
	for _, fs := range cs.Fields {
		if fs.Name == "" {
			return fmt.Errorf("class %q: field with no name", name)
		}
		typ, err := r.lookup(fs.Type)
		if err != nil {
			return fmt.Errorf("class %q: field %q: %w", name, fs.Name, err)
		}
		f := &types.Field{Name: fs.Name, Type: typ, Static: fs.Static, Final: fs.Final}
		if fs.InitType != "" {
			init, err := r.lookup(fs.InitType)
			if err != nil {
				return fmt.Errorf("class %q: field %q: init type: %w", name, fs.Name, err)
			}
			f.InitType = init
		}
		u.AddField(id, f)
		fieldByName[fs.Name] = f
	}

	for _, ms := range cs.Methods {
		if ms.Name == "" {
			return fmt.Errorf("class %q: method with no name", name)
		}
		returns, err := r.lookup(ms.Returns)
		if err != nil {
			return fmt.Errorf("class %q: method %q: returns: %w", name, ms.Name, err)
		}
		params, err := r.lookupAll(ms.Params)
		if err != nil {
			return fmt.Errorf("class %q: method %q: %w", name, ms.Name, err)
		}
		u.AddMethod(id, &types.Method{
			Name:      ms.Name,
			Returns:   returns,
			Params:    params,
			Static:    ms.Static,
			Abstract:  ms.Abstract,
			Synthetic: ms.Synthetic,
		})
	}

	for _, ps := range cs.Properties {
		if ps.Name == "" {
			return fmt.Errorf("class %q: property with no name", name)
		}
		typ, err := r.lookup(ps.Type)
		if err != nil {
			return fmt.Errorf("class %q: property %q: %w", name, ps.Name, err)
		}
		p := &types.Property{Name: ps.Name, Type: typ, Static: ps.Static}
		if ps.Field != "" {
			backing, ok := fieldByName[ps.Field]
			if !ok {
				return fmt.Errorf("class %q: property %q: no field %q", name, ps.Name, ps.Field)
			}
			p.Field = backing
		}
		u.AddProperty(id, p)
	}

	for i, ctor := range cs.Ctors {
		params, err := r.lookupAll(ctor.Params)
		if err != nil {
			return fmt.Errorf("class %q: constructor %d: %w", name, i, err)
		}
		u.AddConstructor(id, &types.Constructor{Params: params})
	}
	return nil
}

// lookup resolves a type reference: a stub class, a builtin (qualified or by
// its short name), or an array spelled with a [] suffix. An empty reference
// means Object.
func (r *resolver) lookup(ref string) (types.ClassID, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return r.universe.Builtins().Object, nil
	}
	if component, ok := strings.CutSuffix(ref, "[]"); ok {
		elem, err := r.lookup(component)
		if err != nil {
			return types.NoClassID, err
		}
		return r.universe.ArrayOf(elem), nil
	}
	if id, ok := r.ids[ref]; ok {
		return id, nil
	}
	if id, ok := r.universe.Lookup(ref); ok {
		return id, nil
	}
	if !strings.Contains(ref, ".") {
		if id, ok := r.universe.Lookup("breeze.lang." + ref); ok {
			return id, nil
		}
	}
	return types.NoClassID, fmt.Errorf("unknown type %q", ref)
}

func (r *resolver) lookupAll(refs []string) ([]types.ClassID, error) {
	out := make([]types.ClassID, 0, len(refs))
	for _, ref := range refs {
		id, err := r.lookup(ref)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}

func sortedNames(classes map[string]ClassStub) []string {
	names := make([]string, 0, len(classes))
	for name := range classes {
		names = append(names, name)
	}
	// deterministic registration order keeps class IDs stable across runs
	sort.Strings(names)
	return names
}
