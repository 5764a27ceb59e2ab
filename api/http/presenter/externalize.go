package presenter

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Externalize rewrites internal store identifiers into plain opaque
// strings, recursively through nested maps, slices and structs, so no
// reference-typed identifier ever crosses the HTTP boundary. Struct
// fields are emitted under their json tag names to keep the shape
// identical to direct serialization.
func Externalize(v any) any {
	return externalizeValue(reflect.ValueOf(v))
}

func externalizeValue(rv reflect.Value) any {
	if !rv.IsValid() {
		return nil
	}
	if rv.Type() == reflect.TypeOf(uuid.UUID{}) {
		return rv.Interface().(uuid.UUID).String()
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		return externalizeValue(rv.Elem())
	case reflect.Map:
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[mapKey(iter.Key())] = externalizeValue(iter.Value())
		}
		return out
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out[i] = externalizeValue(rv.Index(i))
		}
		return out
	case reflect.Struct:
		if t, ok := rv.Interface().(time.Time); ok {
			return t
		}
		return externalizeStruct(rv)
	default:
		return rv.Interface()
	}
}

func externalizeStruct(rv reflect.Value) map[string]any {
	t := rv.Type()
	out := make(map[string]any, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name, omitempty := jsonName(field)
		if name == "-" {
			continue
		}
		if omitempty && rv.Field(i).IsZero() {
			continue
		}
		out[name] = externalizeValue(rv.Field(i))
	}
	return out
}

func jsonName(field reflect.StructField) (name string, omitempty bool) {
	tag := field.Tag.Get("json")
	if tag == "" {
		return field.Name, false
	}
	parts := strings.Split(tag, ",")
	name = parts[0]
	if name == "" {
		name = field.Name
	}
	for _, opt := range parts[1:] {
		if opt == "omitempty" {
			omitempty = true
		}
	}
	return name, omitempty
}

func mapKey(rv reflect.Value) string {
	if rv.Kind() == reflect.String {
		return rv.String()
	}
	if rv.Type() == reflect.TypeOf(uuid.UUID{}) {
		return rv.Interface().(uuid.UUID).String()
	}
	return fmt.Sprint(rv.Interface())
}
