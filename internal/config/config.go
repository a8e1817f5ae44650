package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Источники списка фотографий.
const (
	SourceUpstream = "upstream"
	SourcePostgres = "postgres"
)

// DefaultPhotosURL — внешняя коллекция фотографий.
const DefaultPhotosURL = "https://jsonplaceholder.typicode.com/photos"

// Config хранит все конфигурационные параметры приложения.
type Config struct {
	ServerPort     string        `env:"SERVER_PORT"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Внешний источник фото
	PhotosURL       string        `env:"PHOTOS_URL"`
	UpstreamTimeout time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"10s"`
	UpstreamRPS     float64       `env:"UPSTREAM_RPS" envDefault:"0"`

	// PhotoSource: upstream (по умолчанию) или postgres (зеркало)
	PhotoSource string `env:"PHOTO_SOURCE" envDefault:"upstream"`
	DatabaseURL string `env:"DATABASE_URL"`

	// Настройки для MinIO (архив снимков коллекции), пустой endpoint отключает архив
	MinioEndpoint        string `env:"MINIO_ENDPOINT"`
	MinioAccessKeyID     string `env:"MINIO_ACCESS_KEY_ID"`
	MinioSecretAccessKey string `env:"MINIO_SECRET_ACCESS_KEY"`
	MinioUseSSL          bool   `env:"MINIO_USE_SSL"`
	MinioBucketName      string `env:"MINIO_BUCKET_NAME" envDefault:"photo-snapshots"`
	MinioRegion          string `env:"MINIO_REGION" envDefault:"us-east-1"`

	RabbitMQ struct {
		RabbitMQURL       string `env:"RABBITMQ_URL"`
		RabbitMQQueueName string `env:"RABBITMQ_QUEUE_NAME" envDefault:"photo_sync_queue"`
	}
}

// LoadConfig загружает конфигурацию из переменных окружения.
// В режиме разработки пытается загрузить .env файл.
func LoadConfig() (*Config, error) {
	if _, err := os.Stat(".env"); !os.IsNotExist(err) {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("ошибка загрузки .env файла: %w", err)
		}
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("ошибка парсинга конфигурации из окружения: %w", err)
	}

	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.PhotosURL == "" {
		cfg.PhotosURL = DefaultPhotosURL
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate проверяет согласованность параметров.
func (c *Config) Validate() error {
	switch c.PhotoSource {
	case SourceUpstream:
	case SourcePostgres:
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL обязателен при PHOTO_SOURCE=postgres")
		}
	default:
		return fmt.Errorf("неизвестный PHOTO_SOURCE: %q (используйте %q или %q)", c.PhotoSource, SourceUpstream, SourcePostgres)
	}
	if c.UpstreamRPS < 0 {
		return fmt.Errorf("UPSTREAM_RPS не может быть отрицательным: %v", c.UpstreamRPS)
	}
	return nil
}

// SnapshotsEnabled сообщает, настроен ли архив снимков в MinIO.
func (c *Config) SnapshotsEnabled() bool {
	return c.MinioEndpoint != ""
}

// BrokerEnabled сообщает, настроен ли RabbitMQ.
func (c *Config) BrokerEnabled() bool {
	return c.RabbitMQ.RabbitMQURL != ""
}
