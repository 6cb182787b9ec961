package app

import (
	"context"
	"net/http"

	"github.com/BielosX/wombat/pokedex/src/config"
	"github.com/BielosX/wombat/pokedex/src/export"
	"github.com/BielosX/wombat/pokedex/src/pokeapi"
	"github.com/BielosX/wombat/pokedex/src/pokedex"
	"github.com/BielosX/wombat/pokedex/src/s3"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/go-faster/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type App struct {
	Config *config.Config
	Sugar  *zap.SugaredLogger
	Client *pokeapi.Client
}

func New(cfg *config.Config, sugar *zap.SugaredLogger) *App {
	return &App{
		Config: cfg,
		Sugar:  sugar,
		Client: pokeapi.NewClient(sugar, cfg.BaseUrl, &http.Client{Timeout: cfg.HttpTimeout}),
	}
}

// NewLogger builds a console logger for development and a JSON one otherwise.
func NewLogger(level string, development bool) (*zap.SugaredLogger, error) {
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrapf(err, "parse log level %q", level)
	}
	zapConfig := zap.NewProductionConfig()
	if development {
		zapConfig = zap.NewDevelopmentConfig()
	}
	zapConfig.Level = zap.NewAtomicLevelAt(parsed)
	logger, err := zapConfig.Build(zap.AddStacktrace(zap.FatalLevel))
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

func (a *App) NewCollection() *pokedex.Collection {
	return pokedex.NewCollection(a.Client, a.Sugar, pokedex.WithConcurrency(a.Config.Concurrency))
}

func (a *App) NewDetail() *pokedex.Detail {
	return pokedex.NewDetail(a.Client, a.Sugar)
}

// Collect loads the first page and then up to pages-1 more, stopping early
// when upstream runs out or a page adds nothing.
func (a *App) Collect(ctx context.Context, collection *pokedex.Collection, pageSize, pages int) pokedex.Snapshot {
	if pageSize <= 0 {
		pageSize = a.Config.PageSize
	}
	collection.LoadInitial(ctx, pageSize)
	for i := 1; i < pages; i++ {
		before, _ := collection.Cursor()
		if !before.HasMore() {
			break
		}
		collection.LoadMore(ctx)
		after, _ := collection.Cursor()
		if after.Consumed() == before.Consumed() {
			break
		}
	}
	return collection.Snapshot()
}

func (a *App) NewExporter(ctx context.Context, bucket string) (*export.Exporter, error) {
	if bucket == "" {
		bucket = a.Config.BucketName
	}
	if bucket == "" {
		return nil, errors.New("no bucket configured, set BUCKET_NAME")
	}
	opts := []func(*awsconfig.LoadOptions) error{}
	if a.Config.Region != "" {
		opts = append(opts, awsconfig.WithRegion(a.Config.Region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "load AWS config")
	}
	return export.NewExporter(s3.NewClient(cfg), bucket, a.Config.ExportPrefix, a.Sugar), nil
}
