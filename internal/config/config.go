package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	APIBaseURL      string        // 外部バックエンドAPIのベースURL
	UpstreamTimeout time.Duration // 外部API呼び出しのタイムアウト

	JWTSecret string // JWT検証シークレット

	GoEnv    string // dev/prod
	FEURL    string // フロントURL（CORSで使う）
	LogLevel string // debug/info/warn/error

	// 配送料と税額。現状の業務ルールではどちらも0だが、
	// 恒久ルールか未確定のため設定値として持つ。
	DeliveryFee int64
	TaxAmount   int64

	SuggestCacheTTL time.Duration // サジェストキャッシュのTTL
}

// Loadは環境変数
func Load() (Config, error) {
	cfg := Config{
		Port:       os.Getenv("PORT"),
		APIBaseURL: os.Getenv("API_BASE_URL"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		GoEnv:      os.Getenv("GO_ENV"),
		FEURL:      os.Getenv("FE_URL"),
		LogLevel:   os.Getenv("LOG_LEVEL"),
	}

	//必須チェック
	if cfg.Port == "" {
		return Config{}, fmt.Errorf("PORT is required")
	}
	if cfg.APIBaseURL == "" {
		return Config{}, fmt.Errorf("API_BASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.GoEnv == "" {
		return Config{}, fmt.Errorf("GO_ENV is required")
	}

	var err error
	cfg.DeliveryFee, err = optionalInt64("DELIVERY_FEE", 0)
	if err != nil {
		return Config{}, err
	}
	cfg.TaxAmount, err = optionalInt64("TAX_AMOUNT", 0)
	if err != nil {
		return Config{}, err
	}
	cfg.UpstreamTimeout, err = optionalDuration("UPSTREAM_TIMEOUT", 10*time.Second)
	if err != nil {
		return Config{}, err
	}
	cfg.SuggestCacheTTL, err = optionalDuration("SUGGEST_CACHE_TTL", 5*time.Minute)
	if err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func optionalInt64(key string, def int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}

func optionalDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be duration: %w", key, err)
	}
	return d, nil
}
