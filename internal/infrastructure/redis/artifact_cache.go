package redis

import (
	"context"
	"errors"
	"time"

	"github.com/shiosai/vodfront/internal/domain"
	"github.com/shiosai/vodfront/internal/usecase"
)

var _ usecase.ArtifactCache = (*ArtifactCacheImpl)(nil)

// releaseLockScript はホルダートークンが一致する場合のみリースを削除する。
// 遅延したホルダーが他人の新しいリースを解放してしまうことを防ぐ。
const releaseLockScript = `if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
else
	return 0
end`

// ArtifactCacheImpl は共有Redisストア上の成果物キャッシュと変換リースの実装
type ArtifactCacheImpl struct {
	client *RedisClient
}

func NewArtifactCache(client *RedisClient) *ArtifactCacheImpl {
	return &ArtifactCacheImpl{
		client: client,
	}
}

func (c *ArtifactCacheImpl) GetPlaylist(ctx context.Context, key domain.AssetKey) (string, error) {
	return c.get(ctx, PlaylistKey(key.CacheKeyTail()))
}

func (c *ArtifactCacheImpl) SetPlaylist(ctx context.Context, key domain.AssetKey, text string, ttl time.Duration) error {
	return c.client.Set(ctx, PlaylistKey(key.CacheKeyTail()), text, ttl)
}

func (c *ArtifactCacheImpl) DeletePlaylist(ctx context.Context, key domain.AssetKey) error {
	return c.client.Delete(ctx, PlaylistKey(key.CacheKeyTail()))
}

func (c *ArtifactCacheImpl) GetThumbnail(ctx context.Context, key domain.AssetKey) (string, error) {
	return c.get(ctx, ThumbnailKey(key.CacheKeyTail()))
}

func (c *ArtifactCacheImpl) SetThumbnail(ctx context.Context, key domain.AssetKey, url string, ttl time.Duration) error {
	return c.client.Set(ctx, ThumbnailKey(key.CacheKeyTail()), url, ttl)
}

func (c *ArtifactCacheImpl) DeleteThumbnail(ctx context.Context, key domain.AssetKey) error {
	return c.client.Delete(ctx, ThumbnailKey(key.CacheKeyTail()))
}

// TryAcquireLock はSETNXによるアトミックなtest-and-setでリースを取得する。
// 排他はRedis側で保証されるため、複数インスタンス間でも高々1つのリースしか存在しない。
func (c *ArtifactCacheImpl) TryAcquireLock(ctx context.Context, key domain.AssetKey, holder string, ttl time.Duration) (bool, error) {
	return c.client.SetNX(ctx, LockKey(key.CacheKeyTail()), holder, ttl)
}

// ReleaseLock はホルダーが一致する場合のみリースを解放する（不一致時は何もしない）
func (c *ArtifactCacheImpl) ReleaseLock(ctx context.Context, key domain.AssetKey, holder string) error {
	_, err := c.client.Eval(ctx, releaseLockScript, []string{LockKey(key.CacheKeyTail())}, holder)
	return err
}

func (c *ArtifactCacheImpl) get(ctx context.Context, key string) (string, error) {
	val, err := c.client.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrCacheMiss) {
			return "", usecase.ErrCacheMiss
		}
		return "", err
	}
	return val, nil
}
