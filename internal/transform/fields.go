package transform

import (
	"reflect"
	"strings"
)

type absentMarker struct{}

// Absent marks a map value as "not provided". Firestore rejects explicit
// undefined-style markers but accepts omitted keys, so payload builders set
// Absent for optional fields and StripAbsentFields drops them before the
// write. An explicit nil is a real value (stored as a Firestore null) and is
// kept.
var Absent any = absentMarker{}

// StripAbsentFields returns a shallow copy of m without the keys whose value
// is Absent. The input map is never mutated.
func StripAbsentFields(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		if v == Absent {
			continue
		}
		out[k] = v
	}
	return out
}

// StripAbsentStruct flattens a typed update struct into a field map, keyed
// by json tag. Nil pointer fields mean "leave unchanged" and are omitted;
// set pointers are dereferenced. Non-pointer fields are always included.
// This is the typed allow-list counterpart of StripAbsentFields: the struct
// definition bounds which fields an update may touch.
func StripAbsentStruct(v any) map[string]any {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return map[string]any{}
		}
		rv = rv.Elem()
	}
	out := map[string]any{}
	if rv.Kind() != reflect.Struct {
		return out
	}
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}
		name := f.Name
		if tag := f.Tag.Get("json"); tag != "" {
			base, _, _ := strings.Cut(tag, ",")
			if base == "-" {
				continue
			}
			if base != "" {
				name = base
			}
		}
		fv := rv.Field(i)
		if fv.Kind() == reflect.Pointer {
			if fv.IsNil() {
				continue
			}
			out[name] = fv.Elem().Interface()
		} else {
			out[name] = fv.Interface()
		}
	}
	return out
}
