//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/doc-summarizer/internal/bootstrap"
	"github.com/yanqian/doc-summarizer/internal/domain/export"
	"github.com/yanqian/doc-summarizer/internal/domain/summarizer"
	"github.com/yanqian/doc-summarizer/internal/infra/config"
	"github.com/yanqian/doc-summarizer/internal/infra/extractor"
	"github.com/yanqian/doc-summarizer/internal/infra/llm"
	httpiface "github.com/yanqian/doc-summarizer/internal/interface/http"
	"github.com/yanqian/doc-summarizer/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		llm.NewRegistry,
		extractor.New,
		summarizer.NewService,
		export.NewService,
		wire.Bind(new(summarizer.EngineRegistry), new(*llm.Registry)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
