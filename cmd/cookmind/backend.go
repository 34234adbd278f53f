package main

import (
	"context"
	"fmt"

	"cookmind/internal/client"
	"cookmind/internal/core/matching"
	"cookmind/internal/core/recipe"
	"cookmind/internal/infrastructure/config"
	"cookmind/internal/infrastructure/tablestore"
	"cookmind/internal/pkg/common"
	"cookmind/internal/telemetry"
)

// backend 本地引擎與遠端 API 共用的操作
type backend interface {
	Score(ctx context.Context, req common.MatchRequest) (common.ScoreResponse, error)
	Missing(ctx context.Context, req common.MatchRequest) (common.MissingResponse, error)
	Analyze(ctx context.Context, req common.MatchRequest) (common.AnalyzeResponse, error)
	Rank(ctx context.Context, req common.RankRequest) (common.RankResponse, error)
	Substitutions(ctx context.Context, ingredient string) (common.SubstitutionResponse, error)
	Explain(ctx context.Context, req common.ExplainRequest) (common.ExplainResponse, error)
}

// localBackend 在行程內執行比對引擎
type localBackend struct {
	svc *recipe.MatchService
}

func newLocalBackend(table *matching.SubstitutionTable) *localBackend {
	return &localBackend{
		svc: recipe.NewMatchService(matching.NewEngine(table), telemetry.NoopInstruments()),
	}
}

func (b *localBackend) Score(ctx context.Context, req common.MatchRequest) (common.ScoreResponse, error) {
	return b.svc.Score(ctx, req), nil
}

func (b *localBackend) Missing(ctx context.Context, req common.MatchRequest) (common.MissingResponse, error) {
	return b.svc.Missing(ctx, req), nil
}

func (b *localBackend) Analyze(ctx context.Context, req common.MatchRequest) (common.AnalyzeResponse, error) {
	return b.svc.Analyze(ctx, req), nil
}

func (b *localBackend) Rank(ctx context.Context, req common.RankRequest) (common.RankResponse, error) {
	return b.svc.Rank(ctx, req), nil
}

func (b *localBackend) Substitutions(ctx context.Context, ingredient string) (common.SubstitutionResponse, error) {
	return b.svc.Substitutions(ctx, ingredient), nil
}

func (b *localBackend) Explain(ctx context.Context, req common.ExplainRequest) (common.ExplainResponse, error) {
	return b.svc.Explain(ctx, req), nil
}

// backend 依 --server（或 COOKMIND_SERVER）選擇遠端或本地
func (a *cli) backend(ctx context.Context) (backend, error) {
	if endpoint := a.endpoint(); endpoint != "" {
		return client.New(endpoint, a.cfg.Client.Timeout), nil
	}

	table, err := loadTable(ctx, a.cfg)
	if err != nil {
		return nil, err
	}
	return newLocalBackend(table), nil
}

func loadTable(ctx context.Context, cfg *config.Config) (*matching.SubstitutionTable, error) {
	table, err := tablestore.Load(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load substitution table: %w", err)
	}
	return table, nil
}
