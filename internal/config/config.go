package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server      ServerConfig
	Redis       RedisConfig
	S3          S3Config
	Transcoder  TranscoderConfig
	Cache       CacheConfig
	Coordinator CoordinatorConfig
	Auth        AuthConfig
}

type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdowntimeout"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"accesskeyid"`
	SecretAccessKey string `mapstructure:"secretaccesskey"`
	Region          string `mapstructure:"region"`
	VODBucket       string `mapstructure:"vodbucket"`
	SourceBucket    string `mapstructure:"sourcebucket"`
}

type TranscoderConfig struct {
	Endpoint string `mapstructure:"endpoint"`
	APIKey   string `mapstructure:"apikey"`
}

// CacheConfig はキャッシュエントリと変換リースのTTLを保持する。
// ゼロ値のフィールドはインフラ層のデフォルトTTLが使われる。
type CacheConfig struct {
	PlaylistTTL  time.Duration `mapstructure:"playlistttl"`
	ThumbnailTTL time.Duration `mapstructure:"thumbnailttl"`
	LockTTL      time.Duration `mapstructure:"lockttl"`
}

type CoordinatorConfig struct {
	// Policy はリース競合時の振る舞い（"wait" または "fail-fast"）
	Policy string `mapstructure:"policy"`
}

type AuthConfig struct {
	APISecret string `mapstructure:"apisecret"`
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/vodfront/")

	viper.SetEnvPrefix("VODFRONT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// 設定ファイルが無い場合は環境変数のみで動作する
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("設定ファイルの読み込みに失敗しました: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("設定の展開に失敗しました: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.shutdowntimeout", "30s")

	viper.SetDefault("redis.host", "")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	viper.SetDefault("s3.endpoint", "")
	viper.SetDefault("s3.accesskeyid", "")
	viper.SetDefault("s3.secretaccesskey", "")
	viper.SetDefault("s3.region", "us-east-1")
	viper.SetDefault("s3.vodbucket", "")
	viper.SetDefault("s3.sourcebucket", "videos")

	viper.SetDefault("transcoder.endpoint", "")
	viper.SetDefault("transcoder.apikey", "")

	viper.SetDefault("cache.playlistttl", time.Duration(0))
	viper.SetDefault("cache.thumbnailttl", time.Duration(0))
	viper.SetDefault("cache.lockttl", time.Duration(0))

	viper.SetDefault("coordinator.policy", "wait")

	viper.SetDefault("auth.apisecret", "")
}

func (c *Config) validate() error {
	var missing []string
	if c.Redis.Host == "" {
		missing = append(missing, "redis.host")
	}
	if c.S3.Endpoint == "" {
		missing = append(missing, "s3.endpoint")
	}
	if c.S3.AccessKeyID == "" {
		missing = append(missing, "s3.accesskeyid")
	}
	if c.S3.SecretAccessKey == "" {
		missing = append(missing, "s3.secretaccesskey")
	}
	if c.S3.VODBucket == "" {
		missing = append(missing, "s3.vodbucket")
	}
	if c.Transcoder.Endpoint == "" {
		missing = append(missing, "transcoder.endpoint")
	}
	if c.Auth.APISecret == "" {
		missing = append(missing, "auth.apisecret")
	}
	if len(missing) > 0 {
		return fmt.Errorf("必須の設定が不足しています: %s", strings.Join(missing, ", "))
	}
	return nil
}

func (c RedisConfig) String() string {
	return fmt.Sprintf("RedisConfig{Host: %s, Port: %d, Password: ***, DB: %d}",
		c.Host, c.Port, c.DB)
}

func (c S3Config) String() string {
	return fmt.Sprintf("S3Config{Endpoint: %s, AccessKeyID: %s, SecretAccessKey: ***, Region: %s, VODBucket: %s, SourceBucket: %s}",
		c.Endpoint, c.AccessKeyID, c.Region, c.VODBucket, c.SourceBucket)
}

func (c TranscoderConfig) String() string {
	return fmt.Sprintf("TranscoderConfig{Endpoint: %s, APIKey: ***}", c.Endpoint)
}

func (c AuthConfig) String() string {
	return "AuthConfig{APISecret: ***}"
}
