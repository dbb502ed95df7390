package domain

import (
	"path"
	"strings"
)

// AssetKey は配信アセットの論理的な識別子（バケット＋オブジェクトパス）を表す値オブジェクト
type AssetKey struct {
	bucket string
	path   string
}

// NewAssetKey はバケット名とオブジェクトパスを検証してAssetKeyを生成する
func NewAssetKey(bucket, objectPath string) (AssetKey, error) {
	if bucket == "" {
		return AssetKey{}, ErrInvalidAssetKey
	}
	if objectPath == "" || strings.HasPrefix(objectPath, "/") {
		return AssetKey{}, ErrInvalidAssetKey
	}
	for _, segment := range strings.Split(objectPath, "/") {
		if segment == "" || segment == "." || segment == ".." {
			return AssetKey{}, ErrInvalidAssetKey
		}
	}
	return AssetKey{bucket: bucket, path: objectPath}, nil
}

func (k AssetKey) Bucket() string {
	return k.bucket
}

func (k AssetKey) Path() string {
	return k.path
}

// Name はパスから拡張子を除いたアセット名を返す（例: "dir/clip1.mp4" → "clip1"）
func (k AssetKey) Name() string {
	base := path.Base(k.path)
	return strings.TrimSuffix(base, path.Ext(base))
}

// PlaylistObjectKey は変換済みHLSプレイリストのオブジェクトキーを返す
func (k AssetKey) PlaylistObjectKey() string {
	return k.Name() + "/index.m3u8"
}

// SegmentObjectKey はプレイリスト内のセグメント参照に対応するオブジェクトキーを返す
func (k AssetKey) SegmentObjectKey(segment string) string {
	return k.Name() + "/" + segment
}

// DerivedPrefix は変換で生成された成果物フォルダのキープレフィックスを返す
func (k AssetKey) DerivedPrefix() string {
	return k.Name() + "/"
}

// CacheKeyTail はキャッシュキーの末尾部分（プレフィックスを除く部分）を返す
func (k AssetKey) CacheKeyTail() string {
	return k.bucket + ":" + k.path
}

func (k AssetKey) String() string {
	return k.bucket + "/" + k.path
}
