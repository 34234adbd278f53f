package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// 替代對照表來源
const (
	SourceBuiltin = "builtin"
	SourceFile    = "file"
	SourceRedis   = "redis"
)

// Config 應用配置
type Config struct {
	App          AppConfig          `mapstructure:"app"`
	Server       ServerConfig       `mapstructure:"server"`
	RateLimit    RateLimitConfig    `mapstructure:"rate_limit"`
	Substitution SubstitutionConfig `mapstructure:"substitution"`
	Redis        RedisConfig        `mapstructure:"redis"`
	Client       ClientConfig       `mapstructure:"client"`
	LogLevel     string             `mapstructure:"log_level"`
	LogMode      string             `mapstructure:"log_mode"`
	LogFile      string             `mapstructure:"log_file"`
}

// AppConfig 應用程式設定
type AppConfig struct {
	Env     string `mapstructure:"env"`
	Debug   bool   `mapstructure:"debug"`
	Version string `mapstructure:"version"`
	Name    string `mapstructure:"name"`
}

// ServerConfig 服務器配置
type ServerConfig struct {
	Port           int           `mapstructure:"port"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout"`
	IdleTimeout    time.Duration `mapstructure:"idle_timeout"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	MaxBodyBytes   int64         `mapstructure:"max_body_bytes"`
}

// RateLimitConfig 速率限制配置
type RateLimitConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

// SubstitutionConfig 替代對照表設定
type SubstitutionConfig struct {
	Source   string `mapstructure:"source"`
	File     string `mapstructure:"file"`
	RedisKey string `mapstructure:"redis_key"`
}

// RedisConfig Redis 連線設定
type RedisConfig struct {
	Addr        string        `mapstructure:"addr"`
	Password    string        `mapstructure:"password"`
	DB          int           `mapstructure:"db"`
	DialTimeout time.Duration `mapstructure:"dial_timeout"`
}

// ClientConfig CLI 連線 API 的設定
type ClientConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// LoadConfig 載入設定
// .env 由呼叫端以 godotenv 載入，這裡只讀取環境變數與預設值。
func LoadConfig() (*Config, error) {
	v := viper.New()

	// 設定預設值
	setDefaults(v)

	// 設定環境變數前綴
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 綁定環境變量
	bindings := map[string]string{
		"server.port":            "SERVER_PORT",
		"substitution.source":    "SUBSTITUTION_SOURCE",
		"substitution.file":      "SUBSTITUTION_FILE",
		"substitution.redis_key": "SUBSTITUTION_REDIS_KEY",
		"redis.addr":             "REDIS_ADDR",
		"redis.password":         "REDIS_PASSWORD",
		"redis.db":               "REDIS_DB",
		"rate_limit.enabled":     "RATE_LIMIT_ENABLED",
		"rate_limit.requests":    "RATE_LIMIT_REQUESTS",
		"rate_limit.window":      "RATE_LIMIT_WINDOW",
		"client.base_url":        "COOKMIND_SERVER",
		"log_level":              "LOG_LEVEL",
		"log_mode":               "LOG_MODE",
		"log_file":               "LOG_FILE",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind env %s: %w", env, err)
		}
	}

	// 解析設定
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 驗證必要設定
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// setDefaults 設定預設值
func setDefaults(v *viper.Viper) {
	// 應用程式設定
	v.SetDefault("app.env", "development")
	v.SetDefault("app.debug", true)
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("app.name", "cookmind")

	// 伺服器設定
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.idle_timeout", "120s")
	v.SetDefault("server.request_timeout", "10s")
	v.SetDefault("server.max_body_bytes", 1<<20) // 1MB

	// 限流設定
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.requests", 100)
	v.SetDefault("rate_limit.window", "1m")

	// 替代對照表設定
	v.SetDefault("substitution.source", SourceBuiltin)
	v.SetDefault("substitution.file", "")
	v.SetDefault("substitution.redis_key", "cookmind:substitutions")

	// Redis 設定
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.dial_timeout", "5s")

	// CLI 設定
	v.SetDefault("client.base_url", "")
	v.SetDefault("client.timeout", "10s")

	// 日誌設定
	v.SetDefault("log_level", "info")
	v.SetDefault("log_mode", "")
	v.SetDefault("log_file", "logs/app.log")
}

// validateConfig 驗證設定
func validateConfig(config *Config) error {
	// 驗證伺服器設定
	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", config.Server.Port)
	}
	if config.Server.RequestTimeout <= 0 {
		return fmt.Errorf("invalid request timeout")
	}
	if config.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("invalid max body bytes")
	}

	// 驗證限流設定
	if config.RateLimit.Enabled {
		if config.RateLimit.Requests <= 0 {
			return fmt.Errorf("invalid rate limit requests")
		}
		if config.RateLimit.Window <= 0 {
			return fmt.Errorf("invalid rate limit window")
		}
	}

	// 驗證替代對照表來源
	switch config.Substitution.Source {
	case SourceBuiltin:
	case SourceFile:
		if config.Substitution.File == "" {
			return fmt.Errorf("substitution file is required when source is %q", SourceFile)
		}
	case SourceRedis:
		if config.Redis.Addr == "" {
			return fmt.Errorf("redis addr is required when source is %q", SourceRedis)
		}
		if config.Substitution.RedisKey == "" {
			return fmt.Errorf("substitution redis key is required when source is %q", SourceRedis)
		}
	default:
		return fmt.Errorf("unknown substitution source %q", config.Substitution.Source)
	}

	return nil
}

// MaskSecret 遮罩敏感字串，只顯示前後各 2 個字符
func MaskSecret(secret string) string {
	if secret == "" {
		return ""
	}
	if len(secret) <= 6 {
		return "****"
	}
	return secret[:2] + "..." + secret[len(secret)-2:]
}
