package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jonathan/company-scraper/internal/config"
	"github.com/jonathan/company-scraper/internal/extract"
	"github.com/jonathan/company-scraper/internal/fetch"
	"github.com/jonathan/company-scraper/internal/geocode"
	"github.com/jonathan/company-scraper/internal/llm"
	"github.com/jonathan/company-scraper/internal/nlp"
	"github.com/jonathan/company-scraper/internal/pipeline"
	"github.com/sirupsen/logrus"
)

// loadConfig reads the effective configuration.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// buildPipeline wires the fetcher, analyzer and extractors from cfg. The
// returned cleanup releases the LLM client, if one was created.
func buildPipeline(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*pipeline.Pipeline, func(), error) {
	cleanup := func() {}

	table, err := keywordTable(cfg.KeywordsPath)
	if err != nil {
		return nil, cleanup, err
	}
	lexicon := extract.NewLexicon(table)

	var tagger nlp.Tagger = nlp.NewRuleTagger()
	if cfg.GeminiAPIKey != "" {
		llmCfg := llm.DefaultConfig()
		if cfg.GeminiModel != "" {
			llmCfg = llmCfg.WithModel(cfg.GeminiModel)
		}
		client, err := llm.NewClient(ctx, llmCfg, cfg.GeminiAPIKey)
		if err != nil {
			return nil, cleanup, fmt.Errorf("failed to create LLM client: %w", err)
		}
		cleanup = func() { _ = client.Close() }
		tagger = nlp.NewLLMTagger(client, llmCfg.MaxInputChars)
		log.WithField("model", llmCfg.Model).Info("using Gemini entity tagger")
	} else {
		log.Debug("GEMINI_API_KEY not set, using rule-based entity tagger")
	}
	analyzer := nlp.NewAnalyzer(tagger, nlp.NewLinguaDetector(), log)

	fetchOpts := fetch.DefaultOptions()
	fetchOpts.Timeout = time.Duration(cfg.FetchTimeout)
	fetchOpts.UseBrowser = cfg.UseBrowser
	fetcher := fetch.NewFetcher(fetchOpts, log)

	geoOpts := geocode.DefaultOptions()
	geoOpts.Timeout = time.Duration(cfg.GeocodeTimeout)
	resolver, err := geocode.NewOpenCageClient(cfg.OpenCageAPIKey, geoOpts)
	if err != nil {
		cleanup()
		return nil, func() {}, fmt.Errorf("failed to create geocoder: %w", err)
	}
	locator := extract.NewLocator(resolver, cfg.GeocodeConcurrency, log)

	return pipeline.New(fetcher, analyzer, lexicon, locator, log), cleanup, nil
}

func keywordTable(path string) (*extract.KeywordTable, error) {
	if path == "" {
		return extract.DefaultKeywordTable()
	}
	return extract.LoadKeywordTable(path)
}
