package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/bizops/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

func validStorageConfig() *config.StorageConfig {
	return &config.StorageConfig{
		Bucket:       "reports",
		AccessKey:    "test-key",
		SecretKey:    "test-secret",
		Endpoint:     "http://localhost:9000",
		UsePathStyle: true,
	}
}

func TestNewS3ReportStorage_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.StorageConfig)
		want   string
	}{
		{"missing bucket", func(c *config.StorageConfig) { c.Bucket = "" }, "bucket is required"},
		{"missing access key", func(c *config.StorageConfig) { c.AccessKey = "" }, "access key is required"},
		{"missing secret key", func(c *config.StorageConfig) { c.SecretKey = "" }, "secret key is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validStorageConfig()
			tt.mutate(cfg)
			_, err := NewS3ReportStorage(cfg, nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	_, err := NewS3ReportStorage(nil, nil)
	assert.Error(t, err)
}

func TestNewS3ReportStorage_Defaults(t *testing.T) {
	s, err := NewS3ReportStorage(validStorageConfig(), zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "reports", s.Bucket())
	assert.Equal(t, defaultPresignExpiration, s.presignExpiration)
}

func TestNormalizeEndpoint(t *testing.T) {
	assert.Equal(t, defaultEndpoint, normalizeEndpoint("", false))
	assert.Equal(t, "http://minio:9000", normalizeEndpoint("minio:9000", false))
	assert.Equal(t, "https://s3.example.com", normalizeEndpoint("s3.example.com", true))
	assert.Equal(t, "http://already:1", normalizeEndpoint("http://already:1", true))
}

func TestS3ReportStorage_GenerateDownloadURL(t *testing.T) {
	s, err := NewS3ReportStorage(validStorageConfig(), nil)
	require.NoError(t, err)
	ctx := context.Background()

	_, _, err = s.GenerateDownloadURL(ctx, "", time.Minute)
	assert.ErrorIs(t, err, errEmptyKey)

	// presigning is local and needs no server
	link, expiresAt, err := s.GenerateDownloadURL(ctx, "alerts/critical-20240101T000000Z.csv", 0)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(link, "http://localhost:9000/reports/alerts/critical-20240101T000000Z.csv?"))
	assert.Contains(t, link, "X-Amz-Expires=900")
	assert.WithinDuration(t, time.Now().Add(defaultPresignExpiration), expiresAt, 5*time.Second)
}

func TestS3ReportStorage_UploadRequiresKey(t *testing.T) {
	s, err := NewS3ReportStorage(validStorageConfig(), nil)
	require.NoError(t, err)
	assert.ErrorIs(t, s.Upload(context.Background(), "", []byte("x"), "text/csv"), errEmptyKey)
}

func TestS3ReportStorage_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "minio/minio:latest",
			ExposedPorts: []string{"9000/tcp"},
			Cmd:          []string{"server", "/data"},
			Env: map[string]string{
				"MINIO_ROOT_USER":     "minioadmin",
				"MINIO_ROOT_PASSWORD": "minioadmin",
			},
			WaitingFor: wait.ForHTTP("/minio/health/live").WithPort("9000/tcp").
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err, "Failed to start MinIO container")
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "9000")
	require.NoError(t, err)

	s, err := NewS3ReportStorage(&config.StorageConfig{
		Bucket:       "bizops-reports",
		AccessKey:    "minioadmin",
		SecretKey:    "minioadmin",
		Endpoint:     fmt.Sprintf("%s:%s", host, port.Port()),
		UsePathStyle: true,
	}, zap.NewNop())
	require.NoError(t, err)

	require.NoError(t, s.EnsureBucket(ctx))
	require.NoError(t, s.EnsureBucket(ctx), "second call is a no-op")

	body := []byte("product_id,shortage\nabc,2\n")
	require.NoError(t, s.Upload(ctx, "alerts/test.csv", body, "text/csv"))

	link, _, err := s.GenerateDownloadURL(ctx, "alerts/test.csv", time.Minute)
	require.NoError(t, err)

	resp, err := http.Get(link)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	got, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, body, got)
}
