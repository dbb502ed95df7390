//go:generate mockgen -source=$GOFILE -destination=../../tests/usecase/mock_cache_interfaces.go -package=usecase
package usecase

import (
	"context"
	"time"

	"github.com/shiosai/vodfront/internal/domain"
)

// ArtifactCache は派生成果物キャッシュと変換リースへの型付きアクセスを提供する。
// Get系は存在しないエントリに対してErrCacheMissを返す。
// TryAcquireLockはアトミックなtest-and-setで、有効なリースが存在しない場合のみ成功する。
// ReleaseLockはホルダートークンが一致しない場合は何もしない。
type ArtifactCache interface {
	GetPlaylist(ctx context.Context, key domain.AssetKey) (string, error)
	SetPlaylist(ctx context.Context, key domain.AssetKey, text string, ttl time.Duration) error
	DeletePlaylist(ctx context.Context, key domain.AssetKey) error

	GetThumbnail(ctx context.Context, key domain.AssetKey) (string, error)
	SetThumbnail(ctx context.Context, key domain.AssetKey, url string, ttl time.Duration) error
	DeleteThumbnail(ctx context.Context, key domain.AssetKey) error

	TryAcquireLock(ctx context.Context, key domain.AssetKey, holder string, ttl time.Duration) (bool, error)
	ReleaseLock(ctx context.Context, key domain.AssetKey, holder string) error
}

// CacheConfig は成果物クラスごとのTTLポリシーを提供する
type CacheConfig interface {
	PlaylistTTL() time.Duration
	ThumbnailTTL() time.Duration
	LockTTL() time.Duration
}
