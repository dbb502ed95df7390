package domain

import (
	"context"
	"time"

	"github.com/newmo-oss/ctxtime"
)

// SignedURL は期限付きアクセスURLを表す値オブジェクト
type SignedURL struct {
	objectKey string
	url       string
	expiresAt time.Time
}

// NewSignedURL は署名時点の時刻から失効時刻を刻印してSignedURLを生成する
func NewSignedURL(ctx context.Context, objectKey, url string, ttl time.Duration) (SignedURL, error) {
	if objectKey == "" || url == "" || ttl <= 0 {
		return SignedURL{}, ErrInvalidSignedURL
	}
	return SignedURL{
		objectKey: objectKey,
		url:       url,
		expiresAt: ctxtime.Now(ctx).Add(ttl),
	}, nil
}

func (u SignedURL) ObjectKey() string {
	return u.objectKey
}

func (u SignedURL) URL() string {
	return u.url
}

func (u SignedURL) ExpiresAt() time.Time {
	return u.expiresAt
}

// RemainingLifetime は現時点からの残り有効期間を返す（失効済みなら0）
func (u SignedURL) RemainingLifetime(ctx context.Context) time.Duration {
	remaining := u.expiresAt.Sub(ctxtime.Now(ctx))
	if remaining < 0 {
		return 0
	}
	return remaining
}
