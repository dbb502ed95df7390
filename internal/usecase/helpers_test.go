package usecase_test

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shiosai/vodfront/internal/domain"
	"github.com/shiosai/vodfront/internal/usecase"
)

func mustAssetKey(t *testing.T, bucket, path string) domain.AssetKey {
	t.Helper()
	key, err := domain.NewAssetKey(bucket, path)
	if err != nil {
		t.Fatalf("NewAssetKey(%q, %q) error = %v", bucket, path, err)
	}
	return key
}

// memArtifactCache はリースのTTL失効まで再現するインメモリのArtifactCache実装。
// 複数ゴルーチンからの同時アクセスを前提とする。
type memArtifactCache struct {
	mu         sync.Mutex
	playlists  map[string]string
	thumbnails map[string]string
	locks      map[string]lockEntry
}

type lockEntry struct {
	holder    string
	expiresAt time.Time
}

func newMemArtifactCache() *memArtifactCache {
	return &memArtifactCache{
		playlists:  map[string]string{},
		thumbnails: map[string]string{},
		locks:      map[string]lockEntry{},
	}
}

var _ usecase.ArtifactCache = (*memArtifactCache)(nil)

func (c *memArtifactCache) GetPlaylist(_ context.Context, key domain.AssetKey) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	text, ok := c.playlists[key.CacheKeyTail()]
	if !ok {
		return "", usecase.ErrCacheMiss
	}
	return text, nil
}

func (c *memArtifactCache) SetPlaylist(_ context.Context, key domain.AssetKey, text string, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.playlists[key.CacheKeyTail()] = text
	return nil
}

func (c *memArtifactCache) DeletePlaylist(_ context.Context, key domain.AssetKey) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.playlists, key.CacheKeyTail())
	return nil
}

func (c *memArtifactCache) GetThumbnail(_ context.Context, key domain.AssetKey) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	url, ok := c.thumbnails[key.CacheKeyTail()]
	if !ok {
		return "", usecase.ErrCacheMiss
	}
	return url, nil
}

func (c *memArtifactCache) SetThumbnail(_ context.Context, key domain.AssetKey, url string, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.thumbnails[key.CacheKeyTail()] = url
	return nil
}

func (c *memArtifactCache) DeleteThumbnail(_ context.Context, key domain.AssetKey) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.thumbnails, key.CacheKeyTail())
	return nil
}

func (c *memArtifactCache) TryAcquireLock(_ context.Context, key domain.AssetKey, holder string, ttl time.Duration) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.locks[key.CacheKeyTail()]
	if ok && time.Now().Before(entry.expiresAt) {
		return false, nil
	}
	c.locks[key.CacheKeyTail()] = lockEntry{holder: holder, expiresAt: time.Now().Add(ttl)}
	return true, nil
}

func (c *memArtifactCache) ReleaseLock(_ context.Context, key domain.AssetKey, holder string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.locks[key.CacheKeyTail()]
	if ok && entry.holder == holder {
		delete(c.locks, key.CacheKeyTail())
	}
	return nil
}

// holdLock は別ホルダーが保持中のリースを直接植え付ける
func (c *memArtifactCache) holdLock(key domain.AssetKey, holder string, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.locks[key.CacheKeyTail()] = lockEntry{holder: holder, expiresAt: time.Now().Add(ttl)}
}

// memObjectStorage はソースと変換成果物を別マップで持つインメモリのObjectStorage実装
type memObjectStorage struct {
	mu      sync.Mutex
	objects map[string]string
}

func newMemObjectStorage() *memObjectStorage {
	return &memObjectStorage{objects: map[string]string{}}
}

var _ usecase.ObjectStorage = (*memObjectStorage)(nil)

func (s *memObjectStorage) put(bucket, key, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[bucket+"/"+key] = text
}

func (s *memObjectStorage) GetObjectText(_ context.Context, bucket, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	text, ok := s.objects[bucket+"/"+key]
	if !ok {
		return "", usecase.ErrObjectNotFound
	}
	return text, nil
}

func (s *memObjectStorage) ObjectExists(_ context.Context, bucket, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.objects[bucket+"/"+key]
	return ok, nil
}

func (s *memObjectStorage) DeletePrefix(_ context.Context, bucket, prefix string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k := range s.objects {
		if strings.HasPrefix(k, bucket+"/"+prefix) {
			delete(s.objects, k)
		}
	}
	return nil
}

// countingTranscoder は呼び出し回数を数え、成功時に成果物をストアへ書き込む
type countingTranscoder struct {
	calls   atomic.Int32
	delay   time.Duration
	storage *memObjectStorage
	bucket  string
	output  string
}

var _ usecase.Transcoder = (*countingTranscoder)(nil)

func (tc *countingTranscoder) Convert(ctx context.Context, bucket, objectPath string, _ domain.ConversionMode) error {
	tc.calls.Add(1)
	if tc.delay > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(tc.delay):
		}
	}
	key, err := domain.NewAssetKey(bucket, objectPath)
	if err != nil {
		return err
	}
	tc.storage.put(tc.bucket, key.PlaylistObjectKey(), tc.output)
	return nil
}

// fakeSigner はオブジェクトキーから決定的なURLを組み立てるURLSigner実装
type fakeSigner struct{}

var _ usecase.URLSigner = (*fakeSigner)(nil)

func (fakeSigner) GenerateGetURL(_ context.Context, bucket, key string, _ time.Duration) (string, error) {
	return "https://store.example/" + bucket + "/" + key + "?signature=stub", nil
}

// fakeCacheConfig は固定TTLを返すCacheConfig実装
type fakeCacheConfig struct {
	playlistTTL  time.Duration
	thumbnailTTL time.Duration
	lockTTL      time.Duration
}

var _ usecase.CacheConfig = (*fakeCacheConfig)(nil)

func (c fakeCacheConfig) PlaylistTTL() time.Duration  { return c.playlistTTL }
func (c fakeCacheConfig) ThumbnailTTL() time.Duration { return c.thumbnailTTL }
func (c fakeCacheConfig) LockTTL() time.Duration      { return c.lockTTL }
