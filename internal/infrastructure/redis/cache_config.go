package redis

import (
	"time"

	"github.com/shiosai/vodfront/internal/usecase"
)

var _ usecase.CacheConfig = (*CacheConfigImpl)(nil)

// CacheConfigImpl は成果物クラスごとのTTLポリシーを提供する
type CacheConfigImpl struct {
	playlistTTL  time.Duration
	thumbnailTTL time.Duration
	lockTTL      time.Duration
}

func NewCacheConfig() *CacheConfigImpl {
	return NewCacheConfigWithTTLs(0, 0, 0)
}

// NewCacheConfigWithTTLs はTTLを上書きしたCacheConfigImplを生成する。
// ゼロ値のTTLにはデフォルト値が使われる。
func NewCacheConfigWithTTLs(playlistTTL, thumbnailTTL, lockTTL time.Duration) *CacheConfigImpl {
	if playlistTTL == 0 {
		playlistTTL = PlaylistTTL
	}
	if thumbnailTTL == 0 {
		thumbnailTTL = ThumbnailTTL
	}
	if lockTTL == 0 {
		lockTTL = LockTTL
	}
	return &CacheConfigImpl{
		playlistTTL:  playlistTTL,
		thumbnailTTL: thumbnailTTL,
		lockTTL:      lockTTL,
	}
}

func (c *CacheConfigImpl) PlaylistTTL() time.Duration {
	return c.playlistTTL
}

func (c *CacheConfigImpl) ThumbnailTTL() time.Duration {
	return c.thumbnailTTL
}

func (c *CacheConfigImpl) LockTTL() time.Duration {
	return c.lockTTL
}
