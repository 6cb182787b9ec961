package utils

import (
	"reflect"
	"strings"
)

// GetFields returns the exported fields of a struct value in declaration order.
func GetFields(t any) []reflect.StructField {
	var result []reflect.StructField
	for _, field := range reflect.VisibleFields(reflect.TypeOf(t)) {
		if field.IsExported() && !field.Anonymous {
			result = append(result, field)
		}
	}
	return result
}

// ParquetTagToKeyValue splits a tag like "name=id, type=INT32". Entries without '=' are ignored.
func ParquetTagToKeyValue(tag string) map[string]string {
	result := make(map[string]string)
	for _, entry := range strings.Split(tag, ",") {
		key, value, found := strings.Cut(strings.TrimSpace(entry), "=")
		if !found {
			continue
		}
		result[key] = value
	}
	return result
}
