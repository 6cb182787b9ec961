package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/BielosX/wombat/pokedex/src/app"
	"github.com/BielosX/wombat/pokedex/src/cli"
	"github.com/BielosX/wombat/pokedex/src/config"
	"github.com/BielosX/wombat/pokedex/src/model"
	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"
)

var sugar *zap.SugaredLogger
var application *app.App

type CollectionRequest struct {
	PageSize int `json:"pageSize"`
	Pages    int `json:"pages"`
}

type CollectionResult struct {
	ParquetFileName string `json:"parquetFileName"`
	CsvFileName     string `json:"csvFileName"`
	Count           int    `json:"count"`
	Failed          int    `json:"failed"`
	Skipped         int    `json:"skipped"`
}

type DetailRequest struct {
	Id int `json:"id"`
}

func handleCollection(ctx context.Context, request CollectionRequest) (*CollectionResult, error) {
	sugar.Infof("Starting Collection Handler, pageSize: %d, pages: %d", request.PageSize, request.Pages)
	exporter, err := application.NewExporter(ctx, "")
	if err != nil {
		return nil, err
	}
	collection := application.NewCollection()
	defer collection.Close()
	snapshot := application.Collect(ctx, collection, request.PageSize, max(request.Pages, 1))
	sugar.Infof("Got %d Pokemon, %d failed, %d skipped", len(snapshot.Pokemon), snapshot.Failed, snapshot.Skipped)
	result := &CollectionResult{
		Count:   len(snapshot.Pokemon),
		Failed:  snapshot.Failed,
		Skipped: snapshot.Skipped,
	}
	exported, err := exporter.Export(ctx, snapshot.Pokemon)
	if err != nil {
		sugar.Errorf("Failed to export Pokemon: %s", err)
		return nil, err
	}
	if exported != nil {
		result.ParquetFileName = exported.ParquetFileName
		result.CsvFileName = exported.CsvFileName
	}
	return result, nil
}

func handleDetail(ctx context.Context, request DetailRequest) (*model.Pokemon, error) {
	sugar.Infof("Starting Detail Handler, id: %d", request.Id)
	detail := application.NewDetail()
	if !detail.Load(ctx, request.Id) {
		return nil, nil
	}
	return detail.State().Pokemon, nil
}

func syncLogger() {
	_ = sugar.Sync()
}

func startLambda(handler string) error {
	cfg, err := config.Load("")
	if err != nil {
		return err
	}
	sugar, err = app.NewLogger(cfg.LogLevel, false)
	if err != nil {
		return err
	}
	defer syncLogger()
	application = app.New(cfg, sugar)
	switch handler {
	case "collection":
		lambda.Start(handleCollection)
	case "detail":
		lambda.Start(handleDetail)
	default:
		return fmt.Errorf("unknown handler %s", handler)
	}
	return nil
}

func main() {
	if handler := os.Getenv("_HANDLER"); handler != "" {
		if err := startLambda(handler); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := cli.Execute(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
