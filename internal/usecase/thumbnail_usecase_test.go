package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/shiosai/vodfront/internal/usecase"
	mock_usecase "github.com/shiosai/vodfront/tests/usecase"
)

func TestThumbnailUseCase_GetOrSignThumbnail(t *testing.T) {
	const signedURL = "https://store.example/images/photo.jpg?signature=stub"

	type fields struct {
		cache   func(ctrl *gomock.Controller) usecase.ArtifactCache
		storage func(ctrl *gomock.Controller) usecase.ObjectStorage
		signer  func(ctrl *gomock.Controller) usecase.URLSigner
		cfg     fakeCacheConfig
	}
	tests := []struct {
		name    string
		fields  fields
		want    string
		wantErr error
	}{
		{
			name: "正常系: キャッシュヒット時は署名もストアアクセスも発生しない",
			fields: fields{
				cache: func(ctrl *gomock.Controller) usecase.ArtifactCache {
					mock := mock_usecase.NewMockArtifactCache(ctrl)
					mock.EXPECT().GetThumbnail(gomock.Any(), gomock.Any()).Return(signedURL, nil)
					return mock
				},
				storage: func(ctrl *gomock.Controller) usecase.ObjectStorage {
					return mock_usecase.NewMockObjectStorage(ctrl)
				},
				signer: func(ctrl *gomock.Controller) usecase.URLSigner {
					return mock_usecase.NewMockURLSigner(ctrl)
				},
				cfg: fakeCacheConfig{thumbnailTTL: 45 * time.Minute, lockTTL: 2 * time.Minute},
			},
			want: signedURL,
		},
		{
			name: "正常系: キャッシュミス時は新しく署名してキャッシュする",
			fields: fields{
				cache: func(ctrl *gomock.Controller) usecase.ArtifactCache {
					mock := mock_usecase.NewMockArtifactCache(ctrl)
					mock.EXPECT().GetThumbnail(gomock.Any(), gomock.Any()).Return("", usecase.ErrCacheMiss).Times(2)
					mock.EXPECT().TryAcquireLock(gomock.Any(), gomock.Any(), gomock.Any(), 2*time.Minute).Return(true, nil)
					mock.EXPECT().SetThumbnail(gomock.Any(), gomock.Any(), signedURL, 45*time.Minute).Return(nil)
					mock.EXPECT().ReleaseLock(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
					return mock
				},
				storage: func(ctrl *gomock.Controller) usecase.ObjectStorage {
					mock := mock_usecase.NewMockObjectStorage(ctrl)
					mock.EXPECT().ObjectExists(gomock.Any(), "images", "photo.jpg").Return(true, nil)
					return mock
				},
				signer: func(ctrl *gomock.Controller) usecase.URLSigner {
					mock := mock_usecase.NewMockURLSigner(ctrl)
					mock.EXPECT().GenerateGetURL(gomock.Any(), "images", "photo.jpg", usecase.ThumbnailURLTTL).Return(signedURL, nil)
					return mock
				},
				cfg: fakeCacheConfig{thumbnailTTL: 45 * time.Minute, lockTTL: 2 * time.Minute},
			},
			want: signedURL,
		},
		{
			name: "正常系: キャッシュTTLは署名URLの有効期間を超えない",
			fields: fields{
				cache: func(ctrl *gomock.Controller) usecase.ArtifactCache {
					mock := mock_usecase.NewMockArtifactCache(ctrl)
					mock.EXPECT().GetThumbnail(gomock.Any(), gomock.Any()).Return("", usecase.ErrCacheMiss).Times(2)
					mock.EXPECT().TryAcquireLock(gomock.Any(), gomock.Any(), gomock.Any(), 2*time.Minute).Return(true, nil)
					mock.EXPECT().SetThumbnail(gomock.Any(), gomock.Any(), signedURL, usecase.ThumbnailURLTTL).Return(nil)
					mock.EXPECT().ReleaseLock(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
					return mock
				},
				storage: func(ctrl *gomock.Controller) usecase.ObjectStorage {
					mock := mock_usecase.NewMockObjectStorage(ctrl)
					mock.EXPECT().ObjectExists(gomock.Any(), "images", "photo.jpg").Return(true, nil)
					return mock
				},
				signer: func(ctrl *gomock.Controller) usecase.URLSigner {
					mock := mock_usecase.NewMockURLSigner(ctrl)
					mock.EXPECT().GenerateGetURL(gomock.Any(), "images", "photo.jpg", usecase.ThumbnailURLTTL).Return(signedURL, nil)
					return mock
				},
				cfg: fakeCacheConfig{thumbnailTTL: 4 * time.Hour, lockTTL: 2 * time.Minute},
			},
			want: signedURL,
		},
		{
			name: "異常系: ソースが存在しない場合はリースを取らずに失敗する",
			fields: fields{
				cache: func(ctrl *gomock.Controller) usecase.ArtifactCache {
					mock := mock_usecase.NewMockArtifactCache(ctrl)
					mock.EXPECT().GetThumbnail(gomock.Any(), gomock.Any()).Return("", usecase.ErrCacheMiss)
					return mock
				},
				storage: func(ctrl *gomock.Controller) usecase.ObjectStorage {
					mock := mock_usecase.NewMockObjectStorage(ctrl)
					mock.EXPECT().ObjectExists(gomock.Any(), "images", "photo.jpg").Return(false, nil)
					return mock
				},
				signer: func(ctrl *gomock.Controller) usecase.URLSigner {
					return mock_usecase.NewMockURLSigner(ctrl)
				},
				cfg: fakeCacheConfig{thumbnailTTL: 45 * time.Minute, lockTTL: 2 * time.Minute},
			},
			wantErr: usecase.ErrObjectNotFound,
		},
		{
			name: "異常系: 署名に失敗した場合でもリースは解放される",
			fields: fields{
				cache: func(ctrl *gomock.Controller) usecase.ArtifactCache {
					mock := mock_usecase.NewMockArtifactCache(ctrl)
					mock.EXPECT().GetThumbnail(gomock.Any(), gomock.Any()).Return("", usecase.ErrCacheMiss).Times(2)
					mock.EXPECT().TryAcquireLock(gomock.Any(), gomock.Any(), gomock.Any(), 2*time.Minute).Return(true, nil)
					mock.EXPECT().ReleaseLock(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
					return mock
				},
				storage: func(ctrl *gomock.Controller) usecase.ObjectStorage {
					mock := mock_usecase.NewMockObjectStorage(ctrl)
					mock.EXPECT().ObjectExists(gomock.Any(), "images", "photo.jpg").Return(true, nil)
					return mock
				},
				signer: func(ctrl *gomock.Controller) usecase.URLSigner {
					mock := mock_usecase.NewMockURLSigner(ctrl)
					mock.EXPECT().GenerateGetURL(gomock.Any(), "images", "photo.jpg", usecase.ThumbnailURLTTL).Return("", errors.New("presign failed"))
					return mock
				},
				cfg: fakeCacheConfig{thumbnailTTL: 45 * time.Minute, lockTTL: 2 * time.Minute},
			},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			uc := usecase.NewThumbnailUseCase(
				tt.fields.cache(ctrl),
				tt.fields.cfg,
				tt.fields.storage(ctrl),
				tt.fields.signer(ctrl),
				usecase.PolicyWaitForResult,
			)
			key := mustAssetKey(t, "images", "photo.jpg")

			got, err := uc.GetOrSignThumbnail(context.Background(), key)
			if tt.want == "" {
				if err == nil {
					t.Error("GetOrSignThumbnail() error = nil, want error")
				}
				if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
					t.Errorf("GetOrSignThumbnail() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("GetOrSignThumbnail() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("GetOrSignThumbnail() = %q, want %q", got, tt.want)
			}
		})
	}
}
