package tablestore

import (
	"context"
	"fmt"

	"cookmind/internal/core/matching"
	"cookmind/internal/infrastructure/config"
	"cookmind/internal/pkg/common"

	"go.uber.org/zap"
)

// Load 依設定的來源載入替代對照表
func Load(ctx context.Context, cfg *config.Config) (*matching.SubstitutionTable, error) {
	var (
		table *matching.SubstitutionTable
		err   error
	)

	switch cfg.Substitution.Source {
	case config.SourceBuiltin:
		table = matching.DefaultSubstitutionTable()
	case config.SourceFile:
		table, err = LoadFile(cfg.Substitution.File)
	case config.SourceRedis:
		client := NewRedisClient(cfg.Redis)
		defer client.Close()
		table, err = LoadRedis(ctx, client, cfg.Substitution.RedisKey)
	default:
		err = fmt.Errorf("unknown substitution source %q", cfg.Substitution.Source)
	}

	if err != nil {
		common.LogError("Failed to load substitution table",
			zap.String("source", cfg.Substitution.Source),
			zap.Bool("invalid_table", common.IsValidationError(err)),
			zap.Error(err),
		)
		return nil, err
	}

	common.LogInfo("Substitution table loaded",
		zap.String("source", cfg.Substitution.Source),
		zap.Int("entries", table.Len()),
	)

	return table, nil
}
