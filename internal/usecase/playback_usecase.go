//go:generate mockgen -source=$GOFILE -destination=../../tests/usecase/mock_playback_usecase.go -package=usecase
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/newmo-oss/ctxtime"

	"github.com/shiosai/vodfront/internal/domain"
	"github.com/shiosai/vodfront/internal/metrics"
)

const (
	// 変換成功後にプレイリストオブジェクトが可視になるまでの再取得回数と間隔
	playlistFetchAttempts = 10
	playlistFetchInterval = time.Second
)

// PlaybackUseCase はHLSプレイリストの配信と遅延変換を担う
type PlaybackUseCase interface {
	GetOrConvertPlaylist(ctx context.Context, key domain.AssetKey, mode domain.ConversionMode) (string, error)
	GetCachedPlaylist(ctx context.Context, key domain.AssetKey) (string, error)
}

type playbackUseCaseImpl struct {
	cache         ArtifactCache
	cacheConfig   CacheConfig
	storage       ObjectStorage
	transcoder    Transcoder
	rewriter      PlaylistRewriter
	coordinator   *coordinator
	vodBucket     string
	fetchAttempts int
	fetchInterval time.Duration
}

func NewPlaybackUseCase(
	cache ArtifactCache,
	cacheConfig CacheConfig,
	storage ObjectStorage,
	transcoder Transcoder,
	rewriter PlaylistRewriter,
	vodBucket string,
	policy CoordinatorPolicy,
) PlaybackUseCase {
	return &playbackUseCaseImpl{
		cache:         cache,
		cacheConfig:   cacheConfig,
		storage:       storage,
		transcoder:    transcoder,
		rewriter:      rewriter,
		coordinator:   newCoordinator(cache, cacheConfig, policy),
		vodBucket:     vodBucket,
		fetchAttempts: playlistFetchAttempts,
		fetchInterval: playlistFetchInterval,
	}
}

// GetOrConvertPlaylist はキャッシュまたはストアからプレイリストを返し、
// どちらにも無ければ変換を1回だけ起動して結果を返す。
// 返されるテキストのセグメント参照は毎回新しく署名される。
func (uc *playbackUseCaseImpl) GetOrConvertPlaylist(ctx context.Context, key domain.AssetKey, mode domain.ConversionMode) (string, error) {
	raw, err := uc.cache.GetPlaylist(ctx, key)
	if err == nil {
		metrics.CacheHitsTotal.WithLabelValues(domain.KindPlaylist.String()).Inc()
		return uc.rewriter.Rewrite(ctx, key, raw)
	}
	if !errors.Is(err, ErrCacheMiss) {
		return "", fmt.Errorf("%w: read playlist cache: %v", ErrStoreUnavailable, err)
	}
	metrics.CacheMissesTotal.WithLabelValues(domain.KindPlaylist.String()).Inc()

	// キャッシュに無くても変換済みの場合がある（他インスタンスや事前変換によるもの）
	raw, err = uc.storage.GetObjectText(ctx, uc.vodBucket, key.PlaylistObjectKey())
	if err == nil {
		if err := uc.cache.SetPlaylist(ctx, key, raw, uc.cacheConfig.PlaylistTTL()); err != nil {
			return "", fmt.Errorf("%w: store playlist cache: %v", ErrStoreUnavailable, err)
		}
		return uc.rewriter.Rewrite(ctx, key, raw)
	}
	if !errors.Is(err, ErrObjectNotFound) {
		return "", err
	}

	// ソースが存在しない場合はリースを取らずに失敗させる
	exists, err := uc.storage.ObjectExists(ctx, key.Bucket(), key.Path())
	if err != nil {
		return "", err
	}
	if !exists {
		return "", ErrObjectNotFound
	}

	slog.Info("playlist missing, triggering lazy conversion",
		"asset", key.String(), "mode", mode.String())

	raw, err = uc.coordinator.run(ctx, key, artifactStrategy{
		kind: domain.KindPlaylist,
		get: func(ctx context.Context, key domain.AssetKey) (string, error) {
			return uc.cache.GetPlaylist(ctx, key)
		},
		set: func(ctx context.Context, key domain.AssetKey, text string) error {
			return uc.cache.SetPlaylist(ctx, key, text, uc.cacheConfig.PlaylistTTL())
		},
		produce: func(ctx context.Context, key domain.AssetKey) (string, error) {
			return uc.convertAndFetch(ctx, key, mode)
		},
	})
	if err != nil {
		return "", err
	}

	return uc.rewriter.Rewrite(ctx, key, raw)
}

// GetCachedPlaylist は変換を起動しない読み取り専用の配信パス。
// キャッシュに無い場合はストアの変換済みプレイリストでキャッシュを埋める。
func (uc *playbackUseCaseImpl) GetCachedPlaylist(ctx context.Context, key domain.AssetKey) (string, error) {
	raw, err := uc.cache.GetPlaylist(ctx, key)
	if err == nil {
		metrics.CacheHitsTotal.WithLabelValues(domain.KindPlaylist.String()).Inc()
		return uc.rewriter.Rewrite(ctx, key, raw)
	}
	if !errors.Is(err, ErrCacheMiss) {
		return "", fmt.Errorf("%w: read playlist cache: %v", ErrStoreUnavailable, err)
	}
	metrics.CacheMissesTotal.WithLabelValues(domain.KindPlaylist.String()).Inc()

	raw, err = uc.storage.GetObjectText(ctx, uc.vodBucket, key.PlaylistObjectKey())
	if err != nil {
		return "", err
	}

	if err := uc.cache.SetPlaylist(ctx, key, raw, uc.cacheConfig.PlaylistTTL()); err != nil {
		return "", fmt.Errorf("%w: store playlist cache: %v", ErrStoreUnavailable, err)
	}

	return uc.rewriter.Rewrite(ctx, key, raw)
}

// convertAndFetch は変換ワーカーを同期的に呼び出し、生成されたプレイリストの生テキストを取得する
func (uc *playbackUseCaseImpl) convertAndFetch(ctx context.Context, key domain.AssetKey, mode domain.ConversionMode) (string, error) {
	start := ctxtime.Now(ctx)
	if err := uc.transcoder.Convert(ctx, key.Bucket(), key.Path(), mode); err != nil {
		metrics.ConversionsTotal.WithLabelValues(mode.String(), "error").Inc()
		return "", fmt.Errorf("%w: %v", ErrConversionFailed, err)
	}
	metrics.ConversionsTotal.WithLabelValues(mode.String(), "success").Inc()
	metrics.ConversionDuration.WithLabelValues(mode.String()).Observe(ctxtime.Now(ctx).Sub(start).Seconds())

	for attempt := 0; attempt < uc.fetchAttempts; attempt++ {
		text, err := uc.storage.GetObjectText(ctx, uc.vodBucket, key.PlaylistObjectKey())
		if err == nil {
			return text, nil
		}
		if !errors.Is(err, ErrObjectNotFound) {
			return "", err
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(uc.fetchInterval):
		}
	}

	return "", fmt.Errorf("%w: playlist not available after conversion of %s", ErrConversionFailed, key.String())
}
