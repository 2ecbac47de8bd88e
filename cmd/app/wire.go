//go:build wireinject
// +build wireinject

package main

import (
	"log/slog"

	"github.com/google/wire"

	"github.com/yanqian/yt-summarizer/internal/bootstrap"
	"github.com/yanqian/yt-summarizer/internal/domain/history"
	"github.com/yanqian/yt-summarizer/internal/domain/pipeline"
	"github.com/yanqian/yt-summarizer/internal/domain/summarizer"
	"github.com/yanqian/yt-summarizer/internal/domain/transcript"
	"github.com/yanqian/yt-summarizer/internal/infra/config"
	"github.com/yanqian/yt-summarizer/internal/infra/youtube"
	httpiface "github.com/yanqian/yt-summarizer/internal/interface/http"
	"github.com/yanqian/yt-summarizer/pkg/metrics"
)

var transcriptSet = wire.NewSet(
	provideTranscriptSource,
	transcript.NewService,
	wire.Bind(new(transcript.Source), new(*youtube.Client)),
)

var pipelineSet = wire.NewSet(
	transcriptSet,
	provideSummaryConfig,
	provideLanguageModel,
	provideHistoryRepository,
	summarizer.NewService,
	history.NewService,
	metrics.NewCollector,
	pipeline.NewService,
	wire.Bind(new(pipeline.Observer), new(*metrics.Collector)),
)

func initializeApp(cfg *config.Config, logger *slog.Logger) (*bootstrap.App, func(), error) {
	wire.Build(
		pipelineSet,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil, nil
}

func initializePipeline(cfg *config.Config, logger *slog.Logger) (pipeline.Service, func(), error) {
	wire.Build(pipelineSet)
	return nil, nil, nil
}

func initializeTranscripts(cfg *config.Config, logger *slog.Logger) transcript.Service {
	wire.Build(transcriptSet)
	return nil
}
