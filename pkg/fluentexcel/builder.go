package fluentexcel

import "fmt"

// MappingBuilder is a chainable facade over one Mapping. Every setter
// mutates the record and returns the same builder. Configuration errors
// (e.g. a non-positive index) do not break the chain; the first one is
// recorded and returned by Build.
//
// Unified setters fan out to both directional fields and the unified field
// itself, so a directional setter issued later wins for its direction only.
type MappingBuilder struct {
	mapping *Mapping
	err     error
}

// NewMapping starts a builder for a standalone mapping. The accessor is
// left unbound; bind it through a Profile or with Accessor.
func NewMapping(fieldName string) *MappingBuilder {
	return &MappingBuilder{mapping: &Mapping{FieldName: fieldName}}
}

// ColumnType declares the column data type used for conversion.
func (b *MappingBuilder) ColumnType(t ColumnType) *MappingBuilder {
	b.mapping.ColumnType = t
	return b
}

// Constant sets a fixed value for both directions, overriding the field value.
func (b *MappingBuilder) Constant(value interface{}) *MappingBuilder {
	b.mapping.Constant = value
	b.mapping.ConstantRead = value
	b.mapping.ConstantWrite = value
	return b
}

// ConstantRead sets a fixed value for the read direction only.
func (b *MappingBuilder) ConstantRead(value interface{}) *MappingBuilder {
	b.mapping.ConstantRead = value
	return b
}

// ConstantWrite sets a fixed value for the write direction only.
func (b *MappingBuilder) ConstantWrite(value interface{}) *MappingBuilder {
	b.mapping.ConstantWrite = value
	return b
}

// Default sets the fallback used when the source value is nil, both directions.
func (b *MappingBuilder) Default(value interface{}) *MappingBuilder {
	b.mapping.Default = value
	b.mapping.DefaultRead = value
	b.mapping.DefaultWrite = value
	return b
}

// DefaultRead sets the nil fallback for the read direction only.
func (b *MappingBuilder) DefaultRead(value interface{}) *MappingBuilder {
	b.mapping.DefaultRead = value
	return b
}

// DefaultWrite sets the nil fallback for the write direction only.
func (b *MappingBuilder) DefaultWrite(value interface{}) *MappingBuilder {
	b.mapping.DefaultWrite = value
	return b
}

// Ignore sets whether the field is skipped entirely, both directions.
func (b *MappingBuilder) Ignore(flag bool) *MappingBuilder {
	b.mapping.Ignored = flag
	b.mapping.IgnoredRead = flag
	b.mapping.IgnoredWrite = flag
	return b
}

// IgnoreRead sets the skip flag for the read direction only.
func (b *MappingBuilder) IgnoreRead(flag bool) *MappingBuilder {
	b.mapping.IgnoredRead = flag
	return b
}

// IgnoreWrite sets the skip flag for the write direction only.
func (b *MappingBuilder) IgnoreWrite(flag bool) *MappingBuilder {
	b.mapping.IgnoredWrite = flag
	return b
}

// Index sets the one-based column position for both directions.
func (b *MappingBuilder) Index(n int) *MappingBuilder {
	if !b.checkIndex(n) {
		return b
	}
	b.mapping.Index = n
	b.mapping.IndexRead = n
	b.mapping.IndexWrite = n
	return b
}

// IndexRead sets the one-based column position for the read direction only.
func (b *MappingBuilder) IndexRead(n int) *MappingBuilder {
	if !b.checkIndex(n) {
		return b
	}
	b.mapping.IndexRead = n
	return b
}

// IndexWrite sets the one-based column position for the write direction only.
func (b *MappingBuilder) IndexWrite(n int) *MappingBuilder {
	if !b.checkIndex(n) {
		return b
	}
	b.mapping.IndexWrite = n
	return b
}

// Header sets the column header text for both directions.
func (b *MappingBuilder) Header(text string) *MappingBuilder {
	b.mapping.Header = text
	b.mapping.HeaderRead = text
	b.mapping.HeaderWrite = text
	return b
}

// HeaderRead sets the header used for column lookup when reading.
func (b *MappingBuilder) HeaderRead(text string) *MappingBuilder {
	b.mapping.HeaderRead = text
	return b
}

// HeaderWrite sets the header emitted for the column when writing.
func (b *MappingBuilder) HeaderWrite(text string) *MappingBuilder {
	b.mapping.HeaderWrite = text
	return b
}

// ReadUsing stores a resolver that produces the field value from the row.
// A resolver takes precedence over constants and defaults for its direction.
func (b *MappingBuilder) ReadUsing(resolver ReadResolver) *MappingBuilder {
	if resolver == nil {
		b.fail(fmt.Errorf("%w: ReadUsing(%s)", ErrNilResolver, b.mapping.FieldName))
		return b
	}
	b.mapping.ReadResolver = resolver
	return b
}

// WriteUsing stores a resolver that produces the cell value from the owner.
func (b *MappingBuilder) WriteUsing(resolver WriteResolver) *MappingBuilder {
	if resolver == nil {
		b.fail(fmt.Errorf("%w: WriteUsing(%s)", ErrNilResolver, b.mapping.FieldName))
		return b
	}
	b.mapping.WriteResolver = resolver
	return b
}

// Style sets presentation metadata applied when writing.
func (b *MappingBuilder) Style(tmpl *StyleTemplate) *MappingBuilder {
	b.mapping.Style = tmpl
	return b
}

// Accessor overrides the getter/setter pair used for raw field access.
func (b *MappingBuilder) Accessor(acc *Accessor) *MappingBuilder {
	b.mapping.accessor = acc
	return b
}

// Build returns the finished record, or the first configuration error
// recorded during the chain.
func (b *MappingBuilder) Build() (*Mapping, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.mapping, nil
}

func (b *MappingBuilder) checkIndex(n int) bool {
	if n <= 0 {
		b.fail(fmt.Errorf("%w: field %s got %d", ErrInvalidIndex, b.mapping.FieldName, n))
		return false
	}
	return true
}

func (b *MappingBuilder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}
