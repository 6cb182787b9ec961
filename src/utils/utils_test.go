package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type row struct {
	Id   int32  `parquet:"name=id, type=INT32"`
	Name string `parquet:"name=name, type=BYTE_ARRAY, convertedtype=UTF8"`
	note string
}

func TestGetFields(t *testing.T) {
	fields := GetFields(row{})

	assert.Len(t, fields, 2)
	assert.Equal(t, "Id", fields[0].Name)
	assert.Equal(t, "Name", fields[1].Name)
}

func TestParquetTagToKeyValue(t *testing.T) {
	assert.Equal(t,
		map[string]string{"name": "name", "type": "BYTE_ARRAY", "convertedtype": "UTF8"},
		ParquetTagToKeyValue("name=name, type=BYTE_ARRAY, convertedtype=UTF8"))
	assert.Equal(t, map[string]string{"name": "id"}, ParquetTagToKeyValue("name=id, required"))
	assert.Empty(t, ParquetTagToKeyValue(""))
}
