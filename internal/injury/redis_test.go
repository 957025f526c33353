package injury

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startRedis(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping redis integration test in short mode")
	}

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Skipf("redis container unavailable: %v", err)
	}
	t.Cleanup(func() {
		_ = container.Terminate(ctx)
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379/tcp")
	require.NoError(t, err)
	return fmt.Sprintf("redis://%s:%s/0", host, port.Port())
}

func TestRedisStore_RoundTrip(t *testing.T) {
	url := startRedis(t)
	ctx := context.Background()

	store, err := NewRedisStore(ctx, url)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.HealthCheck(ctx))

	_, err = store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrCacheMiss)

	require.NoError(t, store.Set(ctx, ReportCacheKey, `[]`, time.Minute))
	v, err := store.Get(ctx, ReportCacheKey)
	require.NoError(t, err)
	assert.Equal(t, `[]`, v)
}

func TestCachedSource_WithRedis(t *testing.T) {
	url := startRedis(t)
	ctx := context.Background()

	store, err := NewRedisStore(ctx, url)
	require.NoError(t, err)
	defer store.Close()

	src := &countingSource{report: sampleReport}
	cached := NewCachedSource(src, store, time.Minute)

	for i := 0; i < 3; i++ {
		report, err := cached.Fetch(ctx)
		require.NoError(t, err)
		assert.Equal(t, sampleReport, report)
	}
	assert.Equal(t, 1, src.calls)
}

func TestNewRedisStore_InvalidURL(t *testing.T) {
	_, err := NewRedisStore(context.Background(), "not-a-url")
	assert.Error(t, err)
}
