package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRecorder struct {
	mu     sync.Mutex
	events []string
}

func (r *recordingRecorder) ObserveCache(backend string, hit bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	outcome := "miss"
	if hit {
		outcome = "hit"
	}
	r.events = append(r.events, backend+":"+outcome)
}

func newRedisCache(t *testing.T, ttl time.Duration, rec Recorder) (*BuildCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client, err := NewRedisClient(context.Background(), "redis://"+mr.Addr())
	require.NoError(t, err)
	c := New(client, ttl, rec)
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

func TestBuildCache_Redis(t *testing.T) {
	ctx := context.Background()
	rec := &recordingRecorder{}
	c, mr := newRedisCache(t, time.Hour, rec)

	assert.Equal(t, BackendRedis, c.Backend())
	assert.Equal(t, BackendRedis, c.Health(ctx))

	require.NoError(t, c.Put(ctx, "order-1", []byte(`{"ok":true}`)))
	assert.True(t, mr.Exists("ezhelp:build:order-1"))
	assert.Equal(t, time.Hour, mr.TTL("ezhelp:build:order-1"))

	got, err := c.Get(ctx, "order-1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(got))

	_, err = c.Get(ctx, "order-2")
	assert.ErrorIs(t, err, ErrCacheMiss)

	mr.FastForward(2 * time.Hour)
	_, err = c.Get(ctx, "order-1")
	assert.ErrorIs(t, err, ErrCacheMiss)

	hits, misses := c.Stats()
	assert.EqualValues(t, 1, hits)
	assert.EqualValues(t, 2, misses)
	assert.Equal(t, []string{"redis:hit", "redis:miss", "redis:miss"}, rec.events)
}

func TestBuildCache_RedisOutageFallsBackToMemory(t *testing.T) {
	ctx := context.Background()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	client, err := NewRedisClient(ctx, "redis://"+mr.Addr())
	require.NoError(t, err)
	c := New(client, time.Hour, nil)
	defer c.Close()

	mr.Close()
	assert.Equal(t, "degraded", c.Health(ctx))

	require.NoError(t, c.Put(ctx, "order-1", []byte("bundle")))
	got, err := c.Get(ctx, "order-1")
	require.NoError(t, err)
	assert.Equal(t, "bundle", string(got))
}

func TestBuildCache_MemoryOnly(t *testing.T) {
	ctx := context.Background()
	c := New(nil, 0, nil)

	assert.Equal(t, BackendMemory, c.Backend())
	assert.Equal(t, BackendMemory, c.Health(ctx))
	assert.NoError(t, c.Close())

	_, err := c.Get(ctx, "nope")
	assert.ErrorIs(t, err, ErrCacheMiss)

	require.NoError(t, c.Put(ctx, "order-1", []byte("a")))
	require.NoError(t, c.Put(ctx, "order-1", []byte("b")))
	got, err := c.Get(ctx, "order-1")
	require.NoError(t, err)
	assert.Equal(t, "b", string(got))
}

func TestBuildCache_MemoryExpiry(t *testing.T) {
	ctx := context.Background()
	c := New(nil, 20*time.Millisecond, nil)

	require.NoError(t, c.Put(ctx, "order-1", []byte("a")))
	assert.Eventually(t, func() bool {
		_, err := c.Get(ctx, "order-1")
		return err == ErrCacheMiss
	}, time.Second, 10*time.Millisecond)
}

func TestNewRedisClient_Errors(t *testing.T) {
	_, err := NewRedisClient(context.Background(), "not a url")
	assert.Error(t, err)

	_, err = NewRedisClient(context.Background(), "redis://127.0.0.1:1")
	assert.Error(t, err)
}
