package fluentexcel

import (
	"context"
	"fmt"
	"reflect"

	"github.com/locvowork/fluentexcel/internal/logger"
	"gopkg.in/yaml.v2"
)

// =============================================================================
// Profile
// =============================================================================

// Profile collects the column mappings for one target type. Builders are
// opened with Map and finalized together by Build. Profiles are configured
// on one goroutine during setup; the MappingSet produced by Build is safe
// for concurrent reads.
type Profile struct {
	typ      reflect.Type
	builders []*MappingBuilder

	// Named resolvers referenced from YAML configs.
	readResolvers  map[string]ReadResolver
	writeResolvers map[string]WriteResolver

	// Resolver names pending lookup at Build time, keyed by builder.
	pendingRead  map[*MappingBuilder]string
	pendingWrite map[*MappingBuilder]string

	err error
}

// NewProfile starts an untyped profile. Accessors are bound later with
// BindType, typically after loading a YAML config.
func NewProfile() *Profile {
	return &Profile{
		readResolvers:  make(map[string]ReadResolver),
		writeResolvers: make(map[string]WriteResolver),
		pendingRead:    make(map[*MappingBuilder]string),
		pendingWrite:   make(map[*MappingBuilder]string),
	}
}

// NewProfileFor starts a profile bound to the type of sample, so every
// Map call resolves its field accessor immediately.
func NewProfileFor(sample interface{}) *Profile {
	p := NewProfile()
	t := reflect.TypeOf(sample)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		p.err = fmt.Errorf("profile target must be a struct, got %v", reflect.TypeOf(sample))
		return p
	}
	p.typ = t
	return p
}

// Map opens a builder for one field of the target type. When the profile
// is typed the field accessor is resolved here, once.
func (p *Profile) Map(fieldName string) *MappingBuilder {
	b := NewMapping(fieldName)
	if p.typ != nil {
		acc, err := accessorFor(p.typ, fieldName)
		if err != nil {
			b.fail(err)
		} else {
			b.mapping.accessor = acc
		}
	}
	p.builders = append(p.builders, b)
	return b
}

// RegisterReadResolver registers a read resolver under a name, so YAML
// configs can reference it with read_using.
func (p *Profile) RegisterReadResolver(name string, r ReadResolver) *Profile {
	p.readResolvers[name] = r
	return p
}

// RegisterWriteResolver registers a write resolver under a name, so YAML
// configs can reference it with write_using.
func (p *Profile) RegisterWriteResolver(name string, w WriteResolver) *Profile {
	p.writeResolvers[name] = w
	return p
}

// BindType binds the profile to the type of sample and resolves accessors
// for every mapping that does not have one yet. Fields missing from the
// type are logged and reported as an error.
func (p *Profile) BindType(ctx context.Context, sample interface{}) error {
	t := reflect.TypeOf(sample)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return fmt.Errorf("profile target must be a struct, got %v", reflect.TypeOf(sample))
	}
	p.typ = t

	var firstErr error
	bound := 0
	for _, b := range p.builders {
		if b.mapping.accessor != nil {
			continue
		}
		acc, err := accessorFor(t, b.mapping.FieldName)
		if err != nil {
			logger.ErrorLog(ctx, fmt.Sprintf("bind %s: %v", t.Name(), err))
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		b.mapping.accessor = acc
		bound++
	}
	logger.DebugLog(ctx, "bound %d of %d mappings to %s", bound, len(p.builders), t.Name())
	return firstErr
}

// Build finalizes every mapping in the profile. It returns the first
// builder error, resolves named resolvers, and rejects duplicate explicit
// column indexes within a direction.
func (p *Profile) Build() (*MappingSet, error) {
	if p.err != nil {
		return nil, p.err
	}
	for b, name := range p.pendingRead {
		r, ok := p.readResolvers[name]
		if !ok {
			return nil, fmt.Errorf("%w: read_using %q for field %s", ErrUnknownResolver, name, b.mapping.FieldName)
		}
		b.ReadUsing(r)
	}
	for b, name := range p.pendingWrite {
		w, ok := p.writeResolvers[name]
		if !ok {
			return nil, fmt.Errorf("%w: write_using %q for field %s", ErrUnknownResolver, name, b.mapping.FieldName)
		}
		b.WriteUsing(w)
	}

	set := &MappingSet{
		byField: make(map[string]*Mapping),
		byIndex: map[Direction]map[int]*Mapping{
			DirectionRead:  {},
			DirectionWrite: {},
		},
		byHeader: map[Direction]map[string]*Mapping{
			DirectionRead:  {},
			DirectionWrite: {},
		},
	}
	for _, b := range p.builders {
		m, err := b.Build()
		if err != nil {
			return nil, err
		}
		set.mappings = append(set.mappings, m)
		set.byField[m.FieldName] = m
		for _, dir := range []Direction{DirectionRead, DirectionWrite} {
			if idx := m.IndexFor(dir); idx > 0 {
				if prev, ok := set.byIndex[dir][idx]; ok {
					return nil, fmt.Errorf("%w: %s column %d claimed by %s and %s",
						ErrDuplicateIndex, dir, idx, prev.FieldName, m.FieldName)
				}
				set.byIndex[dir][idx] = m
			}
			if h := m.HeaderFor(dir); h != "" {
				set.byHeader[dir][h] = m
			}
		}
	}
	return set, nil
}

// =============================================================================
// MappingSet
// =============================================================================

// MappingSet is the finished, read-only collection of mappings the
// consuming engine queries per column.
type MappingSet struct {
	mappings []*Mapping
	byField  map[string]*Mapping
	byIndex  map[Direction]map[int]*Mapping
	byHeader map[Direction]map[string]*Mapping
}

// Mappings returns the records in declaration order.
func (s *MappingSet) Mappings() []*Mapping {
	return s.mappings
}

// ByField returns the mapping for a field name, or nil.
func (s *MappingSet) ByField(name string) *Mapping {
	return s.byField[name]
}

// ByIndex returns the mapping claiming a one-based column index for a
// direction, or nil.
func (s *MappingSet) ByIndex(dir Direction, index int) *Mapping {
	return s.byIndex[dir][index]
}

// ByHeader returns the mapping claiming a header text for a direction,
// or nil.
func (s *MappingSet) ByHeader(dir Direction, header string) *Mapping {
	return s.byHeader[dir][header]
}

// =============================================================================
// YAML Configuration
// =============================================================================

// ProfileTemplate represents the YAML structure.
type ProfileTemplate struct {
	Mappings []MappingTemplate `yaml:"mappings"`
}

// MappingTemplate defines one mapping in the YAML. Directional keys
// override the unified key for their direction only, matching the builder.
type MappingTemplate struct {
	FieldName string `yaml:"field_name"`
	Type      string `yaml:"type"`

	Header      string `yaml:"header"`
	HeaderRead  string `yaml:"header_read"`
	HeaderWrite string `yaml:"header_write"`

	Index      int `yaml:"index"`
	IndexRead  int `yaml:"index_read"`
	IndexWrite int `yaml:"index_write"`

	Ignore      bool  `yaml:"ignore"`
	IgnoreRead  *bool `yaml:"ignore_read"`
	IgnoreWrite *bool `yaml:"ignore_write"`

	Constant      interface{} `yaml:"constant"`
	ConstantRead  interface{} `yaml:"constant_read"`
	ConstantWrite interface{} `yaml:"constant_write"`

	Default      interface{} `yaml:"default"`
	DefaultRead  interface{} `yaml:"default_read"`
	DefaultWrite interface{} `yaml:"default_write"`

	ReadUsing  string `yaml:"read_using"`
	WriteUsing string `yaml:"write_using"`

	Style *StyleTemplate `yaml:"style"`
}

// NewProfileFromYamlConfig builds a profile from a YAML mapping config.
// Resolver names referenced by the config must be registered before Build.
func NewProfileFromYamlConfig(yamlConfig string) (*Profile, error) {
	if yamlConfig == "" {
		return nil, fmt.Errorf("yaml config is empty")
	}
	var tmpl ProfileTemplate
	if err := yaml.Unmarshal([]byte(yamlConfig), &tmpl); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}

	p := NewProfile()
	for _, mt := range tmpl.Mappings {
		if mt.FieldName == "" {
			return nil, fmt.Errorf("mapping with empty field_name")
		}
		b := p.Map(mt.FieldName)

		if mt.Type != "" {
			ct, err := ParseColumnType(mt.Type)
			if err != nil {
				return nil, fmt.Errorf("field %s: %w", mt.FieldName, err)
			}
			b.ColumnType(ct)
		}

		// Unified keys first, then directional overrides, so the builder's
		// last-write-wins fan-out applies to YAML configs too.
		if mt.Header != "" {
			b.Header(mt.Header)
		}
		if mt.HeaderRead != "" {
			b.HeaderRead(mt.HeaderRead)
		}
		if mt.HeaderWrite != "" {
			b.HeaderWrite(mt.HeaderWrite)
		}

		if mt.Index != 0 {
			b.Index(mt.Index)
		}
		if mt.IndexRead != 0 {
			b.IndexRead(mt.IndexRead)
		}
		if mt.IndexWrite != 0 {
			b.IndexWrite(mt.IndexWrite)
		}

		if mt.Ignore {
			b.Ignore(true)
		}
		if mt.IgnoreRead != nil {
			b.IgnoreRead(*mt.IgnoreRead)
		}
		if mt.IgnoreWrite != nil {
			b.IgnoreWrite(*mt.IgnoreWrite)
		}

		if mt.Constant != nil {
			b.Constant(mt.Constant)
		}
		if mt.ConstantRead != nil {
			b.ConstantRead(mt.ConstantRead)
		}
		if mt.ConstantWrite != nil {
			b.ConstantWrite(mt.ConstantWrite)
		}

		if mt.Default != nil {
			b.Default(mt.Default)
		}
		if mt.DefaultRead != nil {
			b.DefaultRead(mt.DefaultRead)
		}
		if mt.DefaultWrite != nil {
			b.DefaultWrite(mt.DefaultWrite)
		}

		if mt.Style != nil {
			b.Style(mt.Style)
		}

		if mt.ReadUsing != "" {
			p.pendingRead[b] = mt.ReadUsing
		}
		if mt.WriteUsing != "" {
			p.pendingWrite[b] = mt.WriteUsing
		}
	}
	return p, nil
}

// ParseColumnType maps a YAML type name to a ColumnType.
func ParseColumnType(s string) (ColumnType, error) {
	switch s {
	case "", "general":
		return TypeGeneral, nil
	case "string":
		return TypeString, nil
	case "number":
		return TypeNumber, nil
	case "bool":
		return TypeBool, nil
	case "date":
		return TypeDate, nil
	case "formula":
		return TypeFormula, nil
	}
	return TypeGeneral, fmt.Errorf("unknown column type %q", s)
}
