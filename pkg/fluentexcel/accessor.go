package fluentexcel

import (
	"fmt"
	"reflect"
)

// Getter produces the current value of the mapped field on owner.
type Getter func(owner interface{}) interface{}

// Setter assigns value to the mapped field on owner. Owner must be
// addressable (a pointer to the target type) for assignment to stick.
type Setter func(owner interface{}, value interface{}) error

// Accessor is an explicit getter/setter pair for one field of the target
// type, resolved once when the mapping is bound. Callers may supply their
// own pair; the default is built from the struct field via reflection.
type Accessor struct {
	FieldName string
	Get       Getter
	Set       Setter
}

// accessorFor builds a reflection-backed accessor for fieldName on t.
// The field index is resolved here, once, so per-row access is a plain
// indexed field lookup.
func accessorFor(t reflect.Type, fieldName string) (*Accessor, error) {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("target type %s is not a struct", t)
	}
	f, ok := t.FieldByName(fieldName)
	if !ok || f.PkgPath != "" {
		return nil, fmt.Errorf("%w: %s.%s", ErrFieldNotFound, t.Name(), fieldName)
	}
	index := f.Index

	get := func(owner interface{}) interface{} {
		v := reflect.ValueOf(owner)
		for v.Kind() == reflect.Ptr {
			if v.IsNil() {
				return nil
			}
			v = v.Elem()
		}
		fv := v.FieldByIndex(index)
		if isNilable(fv.Kind()) && fv.IsNil() {
			return nil
		}
		return fv.Interface()
	}

	set := func(owner interface{}, value interface{}) error {
		v := reflect.ValueOf(owner)
		if v.Kind() != reflect.Ptr || v.IsNil() {
			return fmt.Errorf("set %s: owner must be a non-nil pointer", fieldName)
		}
		fv := v.Elem().FieldByIndex(index)
		if !fv.CanSet() {
			return fmt.Errorf("set %s: field is not settable", fieldName)
		}
		if value == nil {
			fv.Set(reflect.Zero(fv.Type()))
			return nil
		}
		vv := reflect.ValueOf(value)
		if vv.Type().AssignableTo(fv.Type()) {
			fv.Set(vv)
			return nil
		}
		if vv.Type().ConvertibleTo(fv.Type()) {
			fv.Set(vv.Convert(fv.Type()))
			return nil
		}
		return fmt.Errorf("set %s: cannot assign %s to %s", fieldName, vv.Type(), fv.Type())
	}

	return &Accessor{FieldName: fieldName, Get: get, Set: set}, nil
}

func isNilable(k reflect.Kind) bool {
	switch k {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return true
	}
	return false
}
