package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"reflect"

	"github.com/BielosX/wombat/pokedex/src/parquet"
	"github.com/BielosX/wombat/pokedex/src/utils"
	"github.com/xitongsys/parquet-go-source/buffer"
)

// PokemonWriter writes parquet.Pokemon rows as CSV, columns named after the parquet tags.
type PokemonWriter struct {
	buffer *buffer.BufferFile
	writer *csv.Writer
	fields []reflect.StructField
}

const InitialCapacity = 1024 * 1024

func NewPokemonWriter() PokemonWriter {
	bufferFile := buffer.NewBufferFileCapacity(InitialCapacity)
	writer := csv.NewWriter(bufferFile)
	fields := utils.GetFields(parquet.Pokemon{})
	return PokemonWriter{
		buffer: bufferFile,
		writer: writer,
		fields: fields,
	}
}

func (w *PokemonWriter) WriteHeader() error {
	var parquetNames []string
	for _, field := range w.fields {
		properties := utils.ParquetTagToKeyValue(field.Tag.Get("parquet"))
		parquetNames = append(parquetNames, properties["name"])
	}
	return w.writer.Write(parquetNames)
}

func (w *PokemonWriter) Write(pokemon parquet.Pokemon) error {
	value := reflect.ValueOf(pokemon)
	converted := make([]string, 0, len(w.fields))
	for _, field := range w.fields {
		converted = append(converted, fmt.Sprint(value.FieldByName(field.Name).Interface()))
	}
	return w.writer.Write(converted)
}

func (w *PokemonWriter) Finish() error {
	w.writer.Flush()
	if err := w.writer.Error(); err != nil {
		return err
	}
	_, err := w.buffer.Seek(0, io.SeekStart)
	return err
}

func (w *PokemonWriter) Size() int {
	return len(w.buffer.Bytes())
}

func (w *PokemonWriter) BufferReader() io.Reader {
	return w.buffer
}
