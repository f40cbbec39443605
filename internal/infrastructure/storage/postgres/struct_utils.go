package postgres

import (
	"reflect"
	"sync"
)

// column locates a db-tagged field, possibly inside embedded structs.
type column struct {
	name  string
	index []int
}

// columnCache holds []column per struct type.
var columnCache sync.Map

// columnsOf returns the db-tagged fields of t in declaration order.
// Embedded structs (entity.Catalog, entity.Timestamps) are flattened.
func columnsOf(t reflect.Type) []column {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if cached, ok := columnCache.Load(t); ok {
		return cached.([]column)
	}

	var cols []column
	if t.Kind() == reflect.Struct {
		cols = collectColumns(t, nil)
	}
	columnCache.Store(t, cols)
	return cols
}

func collectColumns(t reflect.Type, prefix []int) []column {
	var cols []column
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		index := append(append([]int{}, prefix...), i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			cols = append(cols, collectColumns(field.Type, index)...)
			continue
		}

		tag := field.Tag.Get("db")
		if tag == "" || tag == "-" {
			continue
		}
		cols = append(cols, column{name: tag, index: index})
	}
	return cols
}

// ExtractDBColumns returns the column names of T from its "db" tags.
//
//	ExtractDBColumns[store.Store]() // [id name updated_at location email]
func ExtractDBColumns[T any]() []string {
	cols := columnsOf(reflect.TypeOf((*T)(nil)).Elem())
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.name
	}
	return names
}

// StructToMap converts a struct (or pointer to struct) to column/value pairs.
// Returns nil for anything else.
func StructToMap(v any) map[string]any {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}

	cols := columnsOf(rv.Type())
	res := make(map[string]any, len(cols))
	for _, c := range cols {
		res[c.name] = rv.FieldByIndex(c.index).Interface()
	}
	return res
}
