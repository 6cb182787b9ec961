package export

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/BielosX/wombat/pokedex/src/csv"
	"github.com/BielosX/wombat/pokedex/src/model"
	"github.com/BielosX/wombat/pokedex/src/parquet"
	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Uploader is satisfied by *s3.Client.
type Uploader interface {
	PutFile(ctx context.Context, reader io.Reader, bucket, key, contentType string) error
}

type Result struct {
	RunId           string `json:"runId"`
	ParquetFileName string `json:"parquetFileName"`
	CsvFileName     string `json:"csvFileName"`
	Rows            int    `json:"rows"`
}

type Exporter struct {
	uploader Uploader
	bucket   string
	prefix   string
	sugar    *zap.SugaredLogger
	newRunId func() string
}

func NewExporter(uploader Uploader, bucket, prefix string, sugar *zap.SugaredLogger) *Exporter {
	return &Exporter{
		uploader: uploader,
		bucket:   bucket,
		prefix:   strings.Trim(prefix, "/"),
		sugar:    sugar,
		newRunId: uuid.NewString,
	}
}

// Export writes the records as parquet and CSV and uploads both files.
// Nothing is uploaded for an empty list.
func (e *Exporter) Export(ctx context.Context, pokemon []model.Pokemon) (*Result, error) {
	if len(pokemon) == 0 {
		e.sugar.Infof("Nothing to export")
		return nil, nil
	}
	pokemonWriter, err := parquet.NewPokemonWriter()
	if err != nil {
		return nil, errors.Wrap(err, "create parquet writer")
	}
	csvWriter := csv.NewPokemonWriter()
	if err := csvWriter.WriteHeader(); err != nil {
		return nil, errors.Wrap(err, "write csv header")
	}
	for _, p := range pokemon {
		for _, row := range parquet.ToPokemon(p) {
			if err := pokemonWriter.WritePokemon(&row); err != nil {
				return nil, errors.Wrapf(err, "write %s to parquet", row.Name)
			}
			if err := csvWriter.Write(row); err != nil {
				return nil, errors.Wrapf(err, "write %s to csv", row.Name)
			}
		}
	}
	if err := pokemonWriter.Finish(); err != nil {
		return nil, errors.Wrap(err, "finish parquet")
	}
	if err := csvWriter.Finish(); err != nil {
		return nil, errors.Wrap(err, "finish csv")
	}

	runId := e.newRunId()
	baseName := fmt.Sprintf("%s/%d_%d", runId, pokemon[0].ID, pokemon[len(pokemon)-1].ID)
	if e.prefix != "" {
		baseName = e.prefix + "/" + baseName
	}
	result := &Result{
		RunId:           runId,
		ParquetFileName: baseName + ".parquet",
		CsvFileName:     baseName + ".csv",
		Rows:            pokemonWriter.Rows(),
	}
	e.sugar.Infof("Sending parquet file of size %d to %s/%s", pokemonWriter.Size(), e.bucket, result.ParquetFileName)
	if err := e.uploader.PutFile(ctx, pokemonWriter.BufferReader(), e.bucket, result.ParquetFileName, "application/vnd.apache.parquet"); err != nil {
		return nil, errors.Wrap(err, "upload parquet")
	}
	e.sugar.Infof("Sending CSV file of size %d to %s/%s", csvWriter.Size(), e.bucket, result.CsvFileName)
	if err := e.uploader.PutFile(ctx, csvWriter.BufferReader(), e.bucket, result.CsvFileName, "text/csv"); err != nil {
		return nil, errors.Wrap(err, "upload csv")
	}
	return result, nil
}
