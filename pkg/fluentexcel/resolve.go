package fluentexcel

// ResolutionPath identifies which configuration facet produced a value.
type ResolutionPath int

const (
	PathSkipped ResolutionPath = iota
	PathResolver
	PathConstant
	PathDefault
	PathValue
)

func (p ResolutionPath) String() string {
	switch p {
	case PathSkipped:
		return "skipped"
	case PathResolver:
		return "resolver"
	case PathConstant:
		return "constant"
	case PathDefault:
		return "default"
	case PathValue:
		return "value"
	}
	return "unknown"
}

// Resolution is the outcome of resolving one mapping for one direction.
type Resolution struct {
	Path  ResolutionPath
	Value interface{}
}

// Skipped reports whether the field is ignored for the resolved direction.
func (r Resolution) Skipped() bool {
	return r.Path == PathSkipped
}

// ResolveRead decides the value to assign to the field from row.
// Precedence: ignore flag, then resolver, then constant, then the raw cell
// value with the default substituted when the raw value is nil.
func (m *Mapping) ResolveRead(row Row) Resolution {
	if m.IgnoredRead {
		return Resolution{Path: PathSkipped}
	}
	if m.ReadResolver != nil {
		return Resolution{Path: PathResolver, Value: m.ReadResolver(row)}
	}
	if m.ConstantRead != nil {
		return Resolution{Path: PathConstant, Value: m.ConstantRead}
	}
	raw := m.rawFromRow(row)
	if raw == nil && m.DefaultRead != nil {
		return Resolution{Path: PathDefault, Value: m.DefaultRead}
	}
	return Resolution{Path: PathValue, Value: raw}
}

// ResolveWrite decides the cell value to emit for owner, with the same
// precedence as ResolveRead. The raw value comes from the bound accessor.
func (m *Mapping) ResolveWrite(owner interface{}) Resolution {
	if m.IgnoredWrite {
		return Resolution{Path: PathSkipped}
	}
	if m.WriteResolver != nil {
		return Resolution{Path: PathResolver, Value: m.WriteResolver(owner)}
	}
	if m.ConstantWrite != nil {
		return Resolution{Path: PathConstant, Value: m.ConstantWrite}
	}
	var raw interface{}
	if m.accessor != nil && m.accessor.Get != nil {
		raw = m.accessor.Get(owner)
	}
	if raw == nil && m.DefaultWrite != nil {
		return Resolution{Path: PathDefault, Value: m.DefaultWrite}
	}
	return Resolution{Path: PathValue, Value: raw}
}

// rawFromRow looks the cell value up by the read header, falling back to
// the field name when no header is configured.
func (m *Mapping) rawFromRow(row Row) interface{} {
	if row == nil {
		return nil
	}
	key := m.HeaderRead
	if key == "" {
		key = m.FieldName
	}
	return row[key]
}
