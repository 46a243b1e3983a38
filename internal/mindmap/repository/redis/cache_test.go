package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"mindmap-srv/internal/mindmap/repository"
	"mindmap-srv/internal/model"
	"mindmap-srv/pkg/log"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRedis struct {
	data   map[string]string
	ttls   map[string]time.Duration
	getErr error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	switch v := value.(type) {
	case []byte:
		f.data[key] = string(v)
	case string:
		f.data[key] = v
	}
	f.ttls[key] = ttl
	return nil
}

func (f *fakeRedis) Get(_ context.Context, key string) (string, error) {
	if f.getErr != nil {
		return "", f.getErr
	}
	v, ok := f.data[key]
	if !ok {
		return "", goredis.Nil
	}
	return v, nil
}

func (f *fakeRedis) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(f.data, k)
	}
	return nil
}

func (f *fakeRedis) Exists(_ context.Context, key string) (bool, error) {
	_, ok := f.data[key]
	return ok, nil
}

func (f *fakeRedis) TTL(_ context.Context, key string) (time.Duration, error) {
	return f.ttls[key], nil
}

func (f *fakeRedis) Close() error                 { return nil }
func (f *fakeRedis) Ping(_ context.Context) error { return nil }
func (f *fakeRedis) GetClient() *goredis.Client   { return nil }

func TestCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	fr := newFakeRedis()
	repo := New(fr, log.NewNop(), 10*time.Minute)

	_, err := repo.GetNodes(ctx, "vid1")
	assert.ErrorIs(t, err, repository.ErrCacheMiss)

	nodes := []model.MindMapNode{{ID: "a", VideoID: "vid1", Content: "root", NodeType: "root", Keywords: []string{"x"}}}
	require.NoError(t, repo.SetNodes(ctx, "vid1", nodes))
	assert.Equal(t, 10*time.Minute, fr.ttls["mindmap:nodes:vid1"])

	got, err := repo.GetNodes(ctx, "vid1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "root", got[0].Content)

	require.NoError(t, repo.DeleteNodes(ctx, "vid1"))
	_, err = repo.GetNodes(ctx, "vid1")
	assert.ErrorIs(t, err, repository.ErrCacheMiss)
}

func TestCacheCorruptedEntryIsMiss(t *testing.T) {
	fr := newFakeRedis()
	fr.data["mindmap:nodes:vid1"] = "{not json"
	repo := New(fr, log.NewNop(), 0)

	_, err := repo.GetNodes(context.Background(), "vid1")
	assert.ErrorIs(t, err, repository.ErrCacheMiss)
	_, ok := fr.data["mindmap:nodes:vid1"]
	assert.False(t, ok)
}

func TestCacheBackendError(t *testing.T) {
	fr := newFakeRedis()
	fr.getErr = errors.New("connection refused")
	repo := New(fr, log.NewNop(), 0)

	_, err := repo.GetNodes(context.Background(), "vid1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrCacheMiss)
}
