package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/shiosai/vodfront/internal/domain"
	"github.com/shiosai/vodfront/internal/metrics"
)

// CoordinatorPolicy はリース取得に失敗したリクエストの振る舞いを決める
type CoordinatorPolicy string

const (
	// PolicyWaitForResult は他ホルダーの変換完了をキャッシュのポーリングで待つ
	PolicyWaitForResult CoordinatorPolicy = "wait"
	// PolicyFailFast は即座にErrConversionInProgressを返し、リトライを呼び出し側に委ねる
	PolicyFailFast CoordinatorPolicy = "fail-fast"
)

// NewCoordinatorPolicy は文字列からCoordinatorPolicyを生成する。空文字列はwaitとして扱う
func NewCoordinatorPolicy(s string) (CoordinatorPolicy, error) {
	switch CoordinatorPolicy(s) {
	case PolicyWaitForResult, PolicyFailFast:
		return CoordinatorPolicy(s), nil
	case "":
		return PolicyWaitForResult, nil
	default:
		return "", fmt.Errorf("invalid coordinator policy: %q", s)
	}
}

const defaultPollInterval = 500 * time.Millisecond

// artifactStrategy は成果物種別ごとのキャッシュアクセスと生成手段をまとめたもの。
// coordinatorはこのタグを通じてプレイリストとサムネイルを同じ骨格で扱う。
type artifactStrategy struct {
	kind    domain.ArtifactKind
	get     func(ctx context.Context, key domain.AssetKey) (string, error)
	set     func(ctx context.Context, key domain.AssetKey, value string) error
	produce func(ctx context.Context, key domain.AssetKey) (string, error)
}

// coordinator はAssetKeyごとに変換を高々1つに抑えるリースプロトコルを実装する。
// 調整状態はすべて共有キャッシュストア上にあり、プロセスローカルな状態は持たない。
type coordinator struct {
	cache        ArtifactCache
	cacheConfig  CacheConfig
	policy       CoordinatorPolicy
	pollInterval time.Duration
}

func newCoordinator(cache ArtifactCache, cacheConfig CacheConfig, policy CoordinatorPolicy) *coordinator {
	return &coordinator{
		cache:        cache,
		cacheConfig:  cacheConfig,
		policy:       policy,
		pollInterval: defaultPollInterval,
	}
}

// run はリースを取得して成果物を生成し、キャッシュに格納して返す。
// リースが取れない場合はポリシーに従って待機または即時失敗する。
// 取得したリースはいかなる失敗経路でも解放される（解放漏れはTTLで自己回復する）。
func (c *coordinator) run(ctx context.Context, key domain.AssetKey, st artifactStrategy) (string, error) {
	holder := uuid.NewString()

	acquired, err := c.cache.TryAcquireLock(ctx, key, holder, c.cacheConfig.LockTTL())
	if err != nil {
		return "", fmt.Errorf("%w: acquire lock: %v", ErrStoreUnavailable, err)
	}
	if !acquired {
		metrics.LockContentionTotal.WithLabelValues(st.kind.String()).Inc()
		if c.policy == PolicyFailFast {
			return "", ErrConversionInProgress
		}
		return c.awaitResult(ctx, key, st)
	}

	defer func() {
		// リクエストがキャンセルされていてもリースは解放する
		releaseCtx := context.WithoutCancel(ctx)
		if err := c.cache.ReleaseLock(releaseCtx, key, holder); err != nil {
			slog.Warn("failed to release conversion lock, lease will expire",
				"asset", key.String(), "error", err)
		}
	}()

	// リース取得までの間に並行ホルダーが完了している可能性がある
	value, err := st.get(ctx, key)
	if err == nil {
		return value, nil
	}
	if !errors.Is(err, ErrCacheMiss) {
		return "", fmt.Errorf("%w: read cache: %v", ErrStoreUnavailable, err)
	}

	value, err = st.produce(ctx, key)
	if err != nil {
		return "", err
	}

	// キャッシュへの書き込みは変換成功後の全体のみ（部分書き込みはしない）
	if err := st.set(ctx, key, value); err != nil {
		return "", fmt.Errorf("%w: store artifact: %v", ErrStoreUnavailable, err)
	}

	return value, nil
}

// awaitResult はリースのTTLを上限として、他ホルダーの成果物がキャッシュに現れるのを待つ
func (c *coordinator) awaitResult(ctx context.Context, key domain.AssetKey, st artifactStrategy) (string, error) {
	attempts := int(c.cacheConfig.LockTTL() / c.pollInterval)
	if attempts < 1 {
		attempts = 1
	}

	for i := 0; i < attempts; i++ {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(c.pollInterval):
		}

		value, err := st.get(ctx, key)
		if err == nil {
			return value, nil
		}
		if !errors.Is(err, ErrCacheMiss) {
			return "", fmt.Errorf("%w: read cache: %v", ErrStoreUnavailable, err)
		}
	}

	return "", fmt.Errorf("%w: timed out waiting for concurrent conversion of %s", ErrConversionFailed, key.String())
}
