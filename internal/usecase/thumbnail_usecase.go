//go:generate mockgen -source=$GOFILE -destination=../../tests/usecase/mock_thumbnail_usecase.go -package=usecase
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shiosai/vodfront/internal/domain"
	"github.com/shiosai/vodfront/internal/metrics"
)

// ThumbnailURLTTL はサムネイルの署名付きURLの有効期間
const ThumbnailURLTTL = time.Hour

// ThumbnailUseCase はサムネイルの署名付きURLの発行とキャッシュを担う
type ThumbnailUseCase interface {
	GetOrSignThumbnail(ctx context.Context, key domain.AssetKey) (string, error)
}

type thumbnailUseCaseImpl struct {
	cache       ArtifactCache
	cacheConfig CacheConfig
	storage     ObjectStorage
	signer      URLSigner
	coordinator *coordinator
}

func NewThumbnailUseCase(
	cache ArtifactCache,
	cacheConfig CacheConfig,
	storage ObjectStorage,
	signer URLSigner,
	policy CoordinatorPolicy,
) ThumbnailUseCase {
	return &thumbnailUseCaseImpl{
		cache:       cache,
		cacheConfig: cacheConfig,
		storage:     storage,
		signer:      signer,
		coordinator: newCoordinator(cache, cacheConfig, policy),
	}
}

// GetOrSignThumbnail はキャッシュ済みの署名付きURLを返し、無ければ新しく署名してキャッシュする。
// サムネイルに変換は不要なため、生成ステップは署名のみだが、リース・キャッシュの骨格は
// プレイリストと共通のcoordinatorを使う。
func (uc *thumbnailUseCaseImpl) GetOrSignThumbnail(ctx context.Context, key domain.AssetKey) (string, error) {
	url, err := uc.cache.GetThumbnail(ctx, key)
	if err == nil {
		metrics.CacheHitsTotal.WithLabelValues(domain.KindThumbnail.String()).Inc()
		return url, nil
	}
	if !errors.Is(err, ErrCacheMiss) {
		return "", fmt.Errorf("%w: read thumbnail cache: %v", ErrStoreUnavailable, err)
	}
	metrics.CacheMissesTotal.WithLabelValues(domain.KindThumbnail.String()).Inc()

	exists, err := uc.storage.ObjectExists(ctx, key.Bucket(), key.Path())
	if err != nil {
		return "", err
	}
	if !exists {
		return "", ErrObjectNotFound
	}

	return uc.coordinator.run(ctx, key, artifactStrategy{
		kind: domain.KindThumbnail,
		get: func(ctx context.Context, key domain.AssetKey) (string, error) {
			return uc.cache.GetThumbnail(ctx, key)
		},
		set: func(ctx context.Context, key domain.AssetKey, url string) error {
			return uc.cache.SetThumbnail(ctx, key, url, uc.thumbnailCacheTTL())
		},
		produce: func(ctx context.Context, key domain.AssetKey) (string, error) {
			url, err := uc.signer.GenerateGetURL(ctx, key.Bucket(), key.Path(), ThumbnailURLTTL)
			if err != nil {
				return "", err
			}
			signed, err := domain.NewSignedURL(ctx, key.Path(), url, ThumbnailURLTTL)
			if err != nil {
				return "", err
			}
			slog.Info("thumbnail URL signed",
				"asset", key.String(), "expires_at", signed.ExpiresAt())
			return signed.URL(), nil
		},
	})
}

// thumbnailCacheTTL はキャッシュエントリが署名の失効後も生き残らないよう、
// 署名URLの有効期間を上限としたTTLを返す
func (uc *thumbnailUseCaseImpl) thumbnailCacheTTL() time.Duration {
	ttl := uc.cacheConfig.ThumbnailTTL()
	if ttl > ThumbnailURLTTL {
		return ThumbnailURLTTL
	}
	return ttl
}
