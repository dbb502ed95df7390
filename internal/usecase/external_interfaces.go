//go:generate mockgen -source=$GOFILE -destination=../../tests/usecase/mock_external_interfaces.go -package=usecase
package usecase

import (
	"context"
	"time"

	"github.com/shiosai/vodfront/internal/domain"
)

// ObjectStorage はオブジェクトストアへの読み取り・削除操作を抽象化する。
// 存在しないオブジェクトの読み取りはErrObjectNotFoundを返す。
type ObjectStorage interface {
	GetObjectText(ctx context.Context, bucket, key string) (string, error)
	ObjectExists(ctx context.Context, bucket, key string) (bool, error)
	DeletePrefix(ctx context.Context, bucket, prefix string) error
}

// URLSigner は期限付きアクセスURLの発行を抽象化する
type URLSigner interface {
	GenerateGetURL(ctx context.Context, bucket, key string, ttl time.Duration) (string, error)
}

// Transcoder は変換ワーカーの呼び出しを抽象化する。
// Convertは同期的に実行され、成功時には派生成果物がVODバケットに存在する。
type Transcoder interface {
	Convert(ctx context.Context, bucket, objectPath string, mode domain.ConversionMode) error
}
