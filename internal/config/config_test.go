package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoadConfig_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	for _, key := range []string{"SERVER_PORT", "PHOTOS_URL", "PHOTO_SOURCE", "DATABASE_URL", "MINIO_ENDPOINT", "RABBITMQ_URL"} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, DefaultPhotosURL, cfg.PhotosURL)
	assert.Equal(t, SourceUpstream, cfg.PhotoSource)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 10*time.Second, cfg.UpstreamTimeout)
	assert.Equal(t, "photo_sync_queue", cfg.RabbitMQ.RabbitMQQueueName)
	assert.False(t, cfg.SnapshotsEnabled())
	assert.False(t, cfg.BrokerEnabled())
}

func TestLoadConfig_PostgresRequiresDatabaseURL(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PHOTO_SOURCE", SourcePostgres)
	t.Setenv("DATABASE_URL", "")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "upstream", cfg: Config{PhotoSource: SourceUpstream}},
		{name: "postgres with dsn", cfg: Config{PhotoSource: SourcePostgres, DatabaseURL: "postgres://x"}},
		{name: "unknown source", cfg: Config{PhotoSource: "redis"}, wantErr: true},
		{name: "negative rps", cfg: Config{PhotoSource: SourceUpstream, UpstreamRPS: -1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
