package di

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/GoArmGo/photopager/internal/adapter/jsonplaceholder"
	"github.com/GoArmGo/photopager/internal/adapter/storage/minio"
	"github.com/GoArmGo/photopager/internal/app"
	"github.com/GoArmGo/photopager/internal/config"
	"github.com/GoArmGo/photopager/internal/core/ports"
	"github.com/GoArmGo/photopager/internal/database/client"
	"github.com/GoArmGo/photopager/internal/database/storage"
	"github.com/GoArmGo/photopager/internal/logger"
	"github.com/GoArmGo/photopager/internal/rabbitmq"
	"github.com/GoArmGo/photopager/internal/usecase"
)

// newLogger создаёт основной логгер из конфигурации.
func newLogger(cfg *config.Config) *slog.Logger {
	slogger := logger.NewSlog(logger.SlogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: os.Stdout,
	})
	slogger.Info("logger initialized", "level", cfg.LogLevel, "format", cfg.LogFormat)
	return slogger
}

// BuildApp инициализирует все зависимости и возвращает готовый объект App.
// Postgres, MinIO и RabbitMQ подключаются только если заданы в конфигурации.
func BuildApp(ctx context.Context) (*app.App, error) {
	// 1. Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	slogger := newLogger(cfg)

	var closers []func() error
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			_ = closers[i]()
		}
	}

	// 2. Внешний источник коллекции
	upstream := jsonplaceholder.NewClient(jsonplaceholder.Options{
		PhotosURL: cfg.PhotosURL,
		Timeout:   cfg.UpstreamTimeout,
		RPS:       cfg.UpstreamRPS,
	}, slogger)

	// 3. Зеркало в PostgreSQL
	var mirror ports.PhotoMirror
	if cfg.DatabaseURL != "" {
		dbClient, err := client.NewClient(ctx, cfg.DatabaseURL, slogger)
		if err != nil {
			return nil, err
		}
		closers = append(closers, dbClient.Close)
		mirror = storage.NewPostgresStorage(dbClient.DB, slogger)
	}

	// 4. Архив снимков в MinIO
	var snapshots ports.SnapshotStore
	if cfg.SnapshotsEnabled() {
		fileStorage, err := minio.NewMinioClient(ctx, cfg, slogger)
		if err != nil {
			cleanup()
			return nil, err
		}
		snapshots = fileStorage
	}

	// 5. RabbitMQ: один клиент служит и publisher, и consumer
	var (
		publisher ports.SyncPublisher
		consumer  ports.SyncConsumer
	)
	if cfg.BrokerEnabled() {
		rabbitMQClient, err := rabbitmq.NewClient(cfg.RabbitMQ.RabbitMQURL, cfg.RabbitMQ.RabbitMQQueueName, slogger)
		if err != nil {
			cleanup()
			return nil, err
		}
		closers = append(closers, rabbitMQClient.Close)
		publisher = rabbitMQClient
		consumer = rabbitMQClient
	}

	// 6. Источник для страниц
	source, sourceName, err := selectSource(cfg, upstream, mirror)
	if err != nil {
		cleanup()
		return nil, err
	}

	// 7. Бизнес-логика
	galleryUseCase := usecase.NewGalleryUseCase(source, sourceName, slogger)
	syncUseCase := usecase.NewSyncUseCase(upstream, mirror, snapshots, slogger)

	application := app.NewApp(
		cfg,
		slogger,
		galleryUseCase,
		syncUseCase,
		publisher,
		consumer,
		closers...,
	)

	slogger.Info("all dependencies initialized",
		"photo_source", sourceName,
		"mirror", mirror != nil,
		"snapshots", snapshots != nil,
		"broker", publisher != nil,
	)
	return application, nil
}

// selectSource выбирает, откуда брать коллекцию для страниц.
func selectSource(cfg *config.Config, upstream ports.PhotoSource, mirror ports.PhotoMirror) (ports.PhotoSource, string, error) {
	switch cfg.PhotoSource {
	case config.SourcePostgres:
		if mirror == nil {
			return nil, "", fmt.Errorf("PHOTO_SOURCE=%s требует DATABASE_URL", config.SourcePostgres)
		}
		return mirror, config.SourcePostgres, nil
	default:
		return upstream, config.SourceUpstream, nil
	}
}

// Migrate применяет миграции и сообщает, сколько фото уже в зеркале.
func Migrate(ctx context.Context) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	slogger := newLogger(cfg)

	if cfg.DatabaseURL == "" {
		return errors.New("migrate: DATABASE_URL не задан")
	}

	dbClient, err := client.NewClient(ctx, cfg.DatabaseURL, slogger)
	if err != nil {
		return err
	}
	defer func() { _ = dbClient.Close() }()

	count, err := storage.NewPostgresStorage(dbClient.DB, slogger).CountPhotos(ctx)
	if err != nil {
		return err
	}
	slogger.Info("migrations applied", "mirrored_photos", count)
	return nil
}
