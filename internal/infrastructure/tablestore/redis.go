package tablestore

import (
	"context"
	"fmt"

	"cookmind/internal/core/matching"
	"cookmind/internal/infrastructure/config"
	"cookmind/internal/pkg/common"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// HashStore 讀寫替代對照表所需的 Redis 指令
type HashStore interface {
	HGetAll(ctx context.Context, key string) *redis.StringStringMapCmd
	HSet(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Rename(ctx context.Context, key, newkey string) *redis.StatusCmd
}

// stagingSuffix 寫入時使用的暫存 key 後綴
const stagingSuffix = ":staging"

// NewRedisClient 依設定建立 Redis 客戶端
func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: cfg.DialTimeout,
	})
}

// LoadRedis 從 Redis hash 讀取替代對照表
// 欄位為食材名稱，值為替代食材的 JSON 陣列。
func LoadRedis(ctx context.Context, store HashStore, key string) (*matching.SubstitutionTable, error) {
	fields, err := store.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, common.ErrTableSource.Wrap(fmt.Errorf("failed to read redis hash %s: %w", key, err))
	}

	if len(fields) == 0 {
		return nil, common.ErrInvalidTable.Wrap(common.NewValidationError(fmt.Sprintf("redis hash %s is empty", key)))
	}

	entries := make(map[string][]string, len(fields))
	for ingredient, raw := range fields {
		var substitutes []string
		if err := common.ParseJSON(raw, &substitutes); err != nil {
			return nil, common.ErrInvalidTable.Wrap(fmt.Errorf("invalid substitutes for %q: %w", ingredient, err))
		}
		entries[ingredient] = substitutes
	}

	table, err := matching.NewSubstitutionTable(entries)
	if err != nil {
		return nil, common.ErrInvalidTable.Wrap(err)
	}

	common.LogDebug("Substitution table read from redis",
		zap.String("key", key),
		zap.Int("entries", table.Len()),
	)

	return table, nil
}

// SaveRedis 以對照表內容覆寫 Redis hash
// 先寫入暫存 key，再以 RENAME 原子地取代正式 key；寫入失敗時正式 key 保持不變。
func SaveRedis(ctx context.Context, store HashStore, key string, table *matching.SubstitutionTable) error {
	entries := table.Entries()
	if len(entries) == 0 {
		return common.NewValidationError("refusing to write an empty substitution table")
	}

	values := make([]interface{}, 0, len(entries)*2)
	for _, ingredient := range table.Keys() {
		raw, err := common.ToJSON(entries[ingredient])
		if err != nil {
			return fmt.Errorf("failed to encode substitutes for %q: %w", ingredient, err)
		}
		values = append(values, ingredient, raw)
	}

	staging := key + stagingSuffix
	if err := store.Del(ctx, staging).Err(); err != nil {
		return common.ErrTableSource.Wrap(fmt.Errorf("failed to clear redis hash %s: %w", staging, err))
	}
	if err := store.HSet(ctx, staging, values...).Err(); err != nil {
		if delErr := store.Del(ctx, staging).Err(); delErr != nil {
			common.LogWarn("Failed to remove staging hash",
				zap.String("key", staging),
				zap.Error(delErr),
			)
		}
		return common.ErrTableSource.Wrap(fmt.Errorf("failed to write redis hash %s: %w", staging, err))
	}
	if err := store.Rename(ctx, staging, key).Err(); err != nil {
		return common.ErrTableSource.Wrap(fmt.Errorf("failed to replace redis hash %s: %w", key, err))
	}

	common.LogInfo("Substitution table written to redis",
		zap.String("key", key),
		zap.Int("entries", len(entries)),
	)

	return nil
}
