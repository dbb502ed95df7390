package domain_test

import (
	"errors"
	"testing"

	"github.com/shiosai/vodfront/internal/domain"
)

func TestNewAssetKey(t *testing.T) {
	type args struct {
		bucket string
		path   string
	}
	tests := []struct {
		name    string
		args    args
		wantErr error
	}{
		{
			name:    "正常系: バケットとパスからAssetKeyを生成できる",
			args:    args{bucket: "videos", path: "clip1.mp4"},
			wantErr: nil,
		},
		{
			name:    "正常系: サブディレクトリを含むパスを受け付ける",
			args:    args{bucket: "videos", path: "2026/08/clip1.mp4"},
			wantErr: nil,
		},
		{
			name:    "異常系: バケットが空の場合エラーが返る",
			args:    args{bucket: "", path: "clip1.mp4"},
			wantErr: domain.ErrInvalidAssetKey,
		},
		{
			name:    "異常系: パスが空の場合エラーが返る",
			args:    args{bucket: "videos", path: ""},
			wantErr: domain.ErrInvalidAssetKey,
		},
		{
			name:    "異常系: 先頭スラッシュを含むパスは拒否される",
			args:    args{bucket: "videos", path: "/clip1.mp4"},
			wantErr: domain.ErrInvalidAssetKey,
		},
		{
			name:    "異常系: パストラバーサルを含むパスは拒否される",
			args:    args{bucket: "videos", path: "../secret/clip1.mp4"},
			wantErr: domain.ErrInvalidAssetKey,
		},
		{
			name:    "異常系: 空のパスセグメントは拒否される",
			args:    args{bucket: "videos", path: "a//b.mp4"},
			wantErr: domain.ErrInvalidAssetKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.NewAssetKey(tt.args.bucket, tt.args.path)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewAssetKey() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestAssetKey_DerivedKeys(t *testing.T) {
	key, err := domain.NewAssetKey("videos", "movies/clip1.mp4")
	if err != nil {
		t.Fatalf("NewAssetKey() unexpected error = %v", err)
	}

	if got := key.Name(); got != "clip1" {
		t.Errorf("Name() = %q, want %q", got, "clip1")
	}
	if got := key.PlaylistObjectKey(); got != "clip1/index.m3u8" {
		t.Errorf("PlaylistObjectKey() = %q, want %q", got, "clip1/index.m3u8")
	}
	if got := key.SegmentObjectKey("index0.ts"); got != "clip1/index0.ts" {
		t.Errorf("SegmentObjectKey() = %q, want %q", got, "clip1/index0.ts")
	}
	if got := key.DerivedPrefix(); got != "clip1/" {
		t.Errorf("DerivedPrefix() = %q, want %q", got, "clip1/")
	}
	if got := key.CacheKeyTail(); got != "videos:movies/clip1.mp4" {
		t.Errorf("CacheKeyTail() = %q, want %q", got, "videos:movies/clip1.mp4")
	}
}

func TestAssetKey_CacheKeyTail_Distinct(t *testing.T) {
	// 異なるバケット/パスの組み合わせが別々のキャッシュキーに写ることを確認する
	a, _ := domain.NewAssetKey("bucketA", "pathX")
	b, _ := domain.NewAssetKey("bucketA", "pathY")
	c, _ := domain.NewAssetKey("bucketB", "pathX")

	tails := map[string]struct{}{
		a.CacheKeyTail(): {},
		b.CacheKeyTail(): {},
		c.CacheKeyTail(): {},
	}
	if len(tails) != 3 {
		t.Errorf("CacheKeyTail() collision: %v", tails)
	}
}
