package usecase

import "errors"

var (
	// ErrObjectNotFound はソースオブジェクトがオブジェクトストアに存在しない場合のエラー
	ErrObjectNotFound = errors.New("source object not found")

	// ErrConversionFailed は変換ワーカーが失敗した、または成果物が現れなかった場合のエラー
	ErrConversionFailed = errors.New("conversion failed")

	// ErrConversionInProgress は別のホルダーが変換中の場合のエラー（fail-fastポリシー時）
	ErrConversionInProgress = errors.New("conversion already in progress")

	// ErrStoreUnavailable はキャッシュストアまたはオブジェクトストアに到達できない場合のエラー
	ErrStoreUnavailable = errors.New("backing store unavailable")

	// ErrCacheMiss はキャッシュにエントリが存在しない場合のエラー
	ErrCacheMiss = errors.New("cache miss")

	// ErrUnauthorized は特権操作の資格情報検証に失敗した場合のエラー
	ErrUnauthorized = errors.New("unauthorized")
)
