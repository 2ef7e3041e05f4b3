package fluentexcel

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// =============================================================================
// Constants & Types
// =============================================================================

// Direction distinguishes reading a column into a field from writing a
// field out to a column. Most configuration facets exist once per direction.
type Direction int

const (
	DirectionRead Direction = iota
	DirectionWrite
)

func (d Direction) String() string {
	switch d {
	case DirectionRead:
		return "read"
	case DirectionWrite:
		return "write"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

// ColumnType declares how the consuming engine should convert cell values
// for a column. TypeGeneral leaves conversion to the engine's defaults.
type ColumnType int

const (
	TypeGeneral ColumnType = iota
	TypeString
	TypeNumber
	TypeBool
	TypeDate
	TypeFormula
)

func (t ColumnType) String() string {
	switch t {
	case TypeGeneral:
		return "general"
	case TypeString:
		return "string"
	case TypeNumber:
		return "number"
	case TypeBool:
		return "bool"
	case TypeDate:
		return "date"
	case TypeFormula:
		return "formula"
	}
	return fmt.Sprintf("type(%d)", int(t))
}

// Row is one spreadsheet row as seen by read resolvers, keyed by header.
type Row map[string]interface{}

// ReadResolver overrides how a field value is produced from a row.
type ReadResolver func(row Row) interface{}

// WriteResolver overrides how a cell value is produced from the owning object.
type WriteResolver func(owner interface{}) interface{}

// =============================================================================
// Mapping Record
// =============================================================================

// Mapping holds every configurable facet of one field-to-column association.
// Unified fields (Constant, Default, Ignored, Index, Header) keep the value
// of the last unified setter call; the directional variants are what the
// consuming engine reads, so a directional setter issued after a unified one
// overrides only its own direction.
//
// A Mapping is mutated through a MappingBuilder during setup and must be
// treated as read-only once handed to the engine.
type Mapping struct {
	FieldName  string
	ColumnType ColumnType

	// nil means unset for constants and defaults.
	Constant      interface{}
	ConstantRead  interface{}
	ConstantWrite interface{}

	Default      interface{}
	DefaultRead  interface{}
	DefaultWrite interface{}

	Ignored      bool
	IgnoredRead  bool
	IgnoredWrite bool

	// One-based column positions; 0 means unset.
	Index      int
	IndexRead  int
	IndexWrite int

	// Header text used for column lookup (read) and emission (write).
	Header      string
	HeaderRead  string
	HeaderWrite string

	// Style applies to write operations only.
	Style *StyleTemplate

	ReadResolver  ReadResolver
	WriteResolver WriteResolver

	accessor *Accessor
}

// FieldAccessor returns the property accessor bound to this mapping, or nil
// if the mapping has not been bound to a target type yet.
func (m *Mapping) FieldAccessor() *Accessor {
	return m.accessor
}

// ConstantFor returns the fixed value for a direction, nil if unset.
func (m *Mapping) ConstantFor(dir Direction) interface{} {
	if dir == DirectionRead {
		return m.ConstantRead
	}
	return m.ConstantWrite
}

// DefaultFor returns the fallback value for a direction, nil if unset.
func (m *Mapping) DefaultFor(dir Direction) interface{} {
	if dir == DirectionRead {
		return m.DefaultRead
	}
	return m.DefaultWrite
}

// IgnoredFor reports whether the field is skipped entirely for a direction.
func (m *Mapping) IgnoredFor(dir Direction) bool {
	if dir == DirectionRead {
		return m.IgnoredRead
	}
	return m.IgnoredWrite
}

// IndexFor returns the one-based column position for a direction, 0 if unset.
func (m *Mapping) IndexFor(dir Direction) int {
	if dir == DirectionRead {
		return m.IndexRead
	}
	return m.IndexWrite
}

// HeaderFor returns the header text for a direction, "" if unset.
func (m *Mapping) HeaderFor(dir Direction) string {
	if dir == DirectionRead {
		return m.HeaderRead
	}
	return m.HeaderWrite
}

// ColumnRef returns the A1-style column name ("A", "B", ...) for the
// direction's configured index. It returns "" when no index is set.
func (m *Mapping) ColumnRef(dir Direction) (string, error) {
	idx := m.IndexFor(dir)
	if idx == 0 {
		return "", nil
	}
	name, err := excelize.ColumnNumberToName(idx)
	if err != nil {
		return "", fmt.Errorf("column ref for field %s: %w", m.FieldName, err)
	}
	return name, nil
}

// HasResolver reports whether a custom resolver is configured for a direction.
func (m *Mapping) HasResolver(dir Direction) bool {
	if dir == DirectionRead {
		return m.ReadResolver != nil
	}
	return m.WriteResolver != nil
}
