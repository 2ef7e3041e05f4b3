package fluentexcel

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type employee struct {
	Name   string
	Age    int
	Salary float64
}

const employeeYaml = `
mappings:
  - field_name: Name
    header: Employee Name
    index: 1
    read_using: trim
  - field_name: Age
    header: Age
    default_read: 0
    ignore_write: true
  - field_name: Salary
    type: number
    header: Salary
    header_write: Annual Salary
    index_write: 3
    style:
      font:
        bold: true
      number_format: "#,##0.00"
`

func TestProfileFromYamlConfig(t *testing.T) {
	p, err := NewProfileFromYamlConfig(employeeYaml)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p.RegisterReadResolver("trim", func(row Row) interface{} {
		if s, ok := row["Employee Name"].(string); ok {
			return strings.TrimSpace(s)
		}
		return nil
	})
	if err := p.BindType(context.Background(), employee{}); err != nil {
		t.Fatalf("bind: %v", err)
	}

	set, err := p.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	name := set.ByField("Name")
	assert.Equal(t, "Employee Name", name.HeaderRead)
	assert.Equal(t, 1, name.IndexRead)
	assert.Equal(t, 1, name.IndexWrite)
	res := name.ResolveRead(Row{"Employee Name": "  Alice  "})
	assert.Equal(t, PathResolver, res.Path)
	assert.Equal(t, "Alice", res.Value)

	age := set.ByField("Age")
	assert.Equal(t, 0, age.DefaultRead)
	assert.Nil(t, age.DefaultWrite)
	assert.True(t, age.IgnoredWrite)
	assert.False(t, age.IgnoredRead)

	salary := set.ByField("Salary")
	assert.Equal(t, TypeNumber, salary.ColumnType)
	assert.Equal(t, "Salary", salary.HeaderRead)
	assert.Equal(t, "Annual Salary", salary.HeaderWrite)
	assert.Equal(t, 0, salary.IndexRead)
	assert.Equal(t, 3, salary.IndexWrite)
	if assert.NotNil(t, salary.Style) {
		assert.True(t, salary.Style.Font.Bold)
		assert.Equal(t, "#,##0.00", salary.Style.NumberFormat)
	}

	// Lookup tables the engine queries per column.
	assert.Same(t, name, set.ByHeader(DirectionRead, "Employee Name"))
	assert.Same(t, salary, set.ByHeader(DirectionWrite, "Annual Salary"))
	assert.Same(t, salary, set.ByIndex(DirectionWrite, 3))
	assert.Nil(t, set.ByIndex(DirectionRead, 3))
}

func TestProfileUnknownResolver(t *testing.T) {
	p, err := NewProfileFromYamlConfig(employeeYaml)
	assert.NoError(t, err)
	// "trim" never registered.
	_, err = p.Build()
	assert.ErrorIs(t, err, ErrUnknownResolver)
}

func TestProfileDuplicateIndex(t *testing.T) {
	p := NewProfileFor(employee{})
	p.Map("Name").Index(1)
	p.Map("Age").Index(1)
	_, err := p.Build()
	assert.ErrorIs(t, err, ErrDuplicateIndex)

	// Same index in opposite directions is fine.
	p = NewProfileFor(employee{})
	p.Map("Name").IndexRead(1)
	p.Map("Age").IndexWrite(1)
	_, err = p.Build()
	assert.NoError(t, err)
}

func TestProfileBindErrors(t *testing.T) {
	p := NewProfile()
	p.Map("Name")
	p.Map("Missing")
	err := p.BindType(context.Background(), employee{})
	assert.ErrorIs(t, err, ErrFieldNotFound)

	err = p.BindType(context.Background(), 42)
	assert.Error(t, err)
}

func TestProfileForRejectsNonStruct(t *testing.T) {
	p := NewProfileFor("not a struct")
	p.Map("Name")
	_, err := p.Build()
	assert.Error(t, err)
}

func TestProfileForMissingField(t *testing.T) {
	p := NewProfileFor(employee{})
	p.Map("Nope")
	_, err := p.Build()
	assert.ErrorIs(t, err, ErrFieldNotFound)
}

func TestProfileWriteUsesBoundAccessor(t *testing.T) {
	p := NewProfileFor(employee{})
	p.Map("Salary").Header("Salary")
	set, err := p.Build()
	assert.NoError(t, err)

	res := set.ByField("Salary").ResolveWrite(employee{Salary: 1200.5})
	assert.Equal(t, PathValue, res.Path)
	assert.Equal(t, 1200.5, res.Value)
}

func TestEmptyYamlConfig(t *testing.T) {
	_, err := NewProfileFromYamlConfig("")
	assert.Error(t, err)
}

func TestParseColumnType(t *testing.T) {
	cases := map[string]ColumnType{
		"":        TypeGeneral,
		"general": TypeGeneral,
		"string":  TypeString,
		"number":  TypeNumber,
		"bool":    TypeBool,
		"date":    TypeDate,
		"formula": TypeFormula,
	}
	for in, want := range cases {
		got, err := ParseColumnType(in)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseColumnType("decimal")
	assert.Error(t, err)
}
