package schema

import (
	"fmt"
	"math"
	"reflect"
	"strings"
)

// Type checks that a supplied argument value carries a parameter's declared
// type. The type check runs before any Rule; a mismatch is reported alone,
// since rules assume the declared shape.
type Type interface {
	// Name returns the type name as written in configuration ("string",
	// "[int]", ...).
	Name() string

	// Validate returns a non-nil error when value does not carry the type.
	Validate(value any) error
}

// namedType is the shape shared by the scalar and custom types: a name plus
// a predicate over the dynamic value.
type namedType struct {
	name  string
	check func(value any) error
}

func (t namedType) Name() string             { return t.name }
func (t namedType) Validate(value any) error { return t.check(value) }

// String accepts string values.
func String() Type {
	return namedType{name: "string", check: func(value any) error {
		if _, ok := value.(string); !ok {
			return fmt.Errorf("expected string, got %T", value)
		}
		return nil
	}}
}

// Int accepts integer values. A whole float64 counts as an integer, since
// JSON decoding hands every number over as float64.
func Int() Type {
	return namedType{name: "int", check: func(value any) error {
		switch v := value.(type) {
		case int, int8, int16, int32, int64:
			return nil
		case float64:
			if v != math.Trunc(v) {
				return fmt.Errorf("expected int, got fractional number %v", v)
			}
			return nil
		default:
			return fmt.Errorf("expected int, got %T", value)
		}
	}}
}

// Float accepts any numeric value.
func Float() Type {
	return namedType{name: "float", check: func(value any) error {
		switch value.(type) {
		case float32, float64, int, int8, int16, int32, int64:
			return nil
		default:
			return fmt.Errorf("expected float, got %T", value)
		}
	}}
}

// Bool accepts boolean values.
func Bool() Type {
	return namedType{name: "bool", check: func(value any) error {
		if _, ok := value.(bool); !ok {
			return fmt.Errorf("expected bool, got %T", value)
		}
		return nil
	}}
}

// Custom builds a type from a host-supplied check. The name only serves
// error messages and configuration output.
func Custom(name string, check func(value any) error) Type {
	return namedType{name: name, check: check}
}

// Slice accepts slices or arrays whose elements all carry elem. The first
// offending element fails the whole value.
func Slice(elem Type) Type {
	return sliceType{elem: elem}
}

type sliceType struct {
	elem Type
}

func (t sliceType) Name() string {
	return "[" + t.elem.Name() + "]"
}

func (t sliceType) Validate(value any) error {
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return fmt.Errorf("expected %s, got %T", t.Name(), value)
	}
	for i := 0; i < rv.Len(); i++ {
		if err := t.elem.Validate(rv.Index(i).Interface()); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}
	return nil
}

// ParseType resolves a type name as written in configuration files: the
// scalar names plus a bracketed element type for slices, nesting allowed
// ("[string]", "[[int]]").
func ParseType(name string) (Type, error) {
	if inner, bracketed := strings.CutPrefix(name, "["); bracketed {
		inner, closed := strings.CutSuffix(inner, "]")
		if !closed || inner == "" {
			return nil, fmt.Errorf("unsupported type: %s", name)
		}
		elem, err := ParseType(inner)
		if err != nil {
			return nil, err
		}
		return Slice(elem), nil
	}

	switch name {
	case "string":
		return String(), nil
	case "int":
		return Int(), nil
	case "float":
		return Float(), nil
	case "bool":
		return Bool(), nil
	default:
		return nil, fmt.Errorf("unsupported type: %s", name)
	}
}
