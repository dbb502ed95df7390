//go:generate mockgen -source=$GOFILE -destination=../../tests/usecase/mock_invalidation_usecase.go -package=usecase
package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shiosai/vodfront/internal/domain"
)

// InvalidationUseCase はキャッシュエントリの削除と派生成果物の削除を担う。
// キャッシュのみの削除はソースを残したまま再変換を強制する管理操作として明示的にサポートする。
type InvalidationUseCase interface {
	Invalidate(ctx context.Context, kind domain.ArtifactKind, key domain.AssetKey) error
	DeleteDerivedOutput(ctx context.Context, key domain.AssetKey) error
}

type invalidationUseCaseImpl struct {
	cache     ArtifactCache
	storage   ObjectStorage
	vodBucket string
}

func NewInvalidationUseCase(cache ArtifactCache, storage ObjectStorage, vodBucket string) InvalidationUseCase {
	return &invalidationUseCaseImpl{
		cache:     cache,
		storage:   storage,
		vodBucket: vodBucket,
	}
}

// Invalidate は指定種別のキャッシュエントリを無条件に削除する。
// 存在しないエントリの削除はエラーにしない（冪等）。
func (uc *invalidationUseCaseImpl) Invalidate(ctx context.Context, kind domain.ArtifactKind, key domain.AssetKey) error {
	var err error
	switch kind {
	case domain.KindPlaylist:
		err = uc.cache.DeletePlaylist(ctx, key)
	case domain.KindThumbnail:
		err = uc.cache.DeleteThumbnail(ctx, key)
	default:
		return domain.ErrInvalidArtifactKind
	}
	if err != nil {
		return fmt.Errorf("%w: invalidate %s cache: %v", ErrStoreUnavailable, kind.String(), err)
	}

	slog.Info("cache invalidated", "kind", kind.String(), "asset", key.String())
	return nil
}

// DeleteDerivedOutput は変換成果物フォルダをストアから削除し、対応するキャッシュも破棄する。
// ストア削除が部分的に失敗しても古いエントリが残らないよう、キャッシュを先に削除する。
func (uc *invalidationUseCaseImpl) DeleteDerivedOutput(ctx context.Context, key domain.AssetKey) error {
	if err := uc.cache.DeletePlaylist(ctx, key); err != nil {
		return fmt.Errorf("%w: invalidate playlist cache: %v", ErrStoreUnavailable, err)
	}

	if err := uc.storage.DeletePrefix(ctx, uc.vodBucket, key.DerivedPrefix()); err != nil {
		return err
	}

	slog.Info("derived output deleted", "asset", key.String(), "prefix", key.DerivedPrefix())
	return nil
}
