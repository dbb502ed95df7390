package handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"go.uber.org/mock/gomock"

	"github.com/shiosai/vodfront/internal/domain"
	"github.com/shiosai/vodfront/internal/handler"
	"github.com/shiosai/vodfront/internal/handler/middleware"
	"github.com/shiosai/vodfront/internal/usecase"
	mock_usecase "github.com/shiosai/vodfront/tests/usecase"
)

func TestCacheHandler_HandleInvalidateVideo(t *testing.T) {
	type fields struct {
		invalidation func(ctrl *gomock.Controller) usecase.InvalidationUseCase
	}
	tests := []struct {
		name       string
		fields     fields
		wantStatus int
	}{
		{
			name: "正常系: プレイリストのキャッシュが無効化される",
			fields: fields{
				invalidation: func(ctrl *gomock.Controller) usecase.InvalidationUseCase {
					mock := mock_usecase.NewMockInvalidationUseCase(ctrl)
					key, _ := domain.NewAssetKey("videos", "clip1.mp4")
					mock.EXPECT().Invalidate(gomock.Any(), domain.KindPlaylist, key).Return(nil)
					return mock
				},
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "異常系: キャッシュストアに到達できない場合は503が返る",
			fields: fields{
				invalidation: func(ctrl *gomock.Controller) usecase.InvalidationUseCase {
					mock := mock_usecase.NewMockInvalidationUseCase(ctrl)
					mock.EXPECT().Invalidate(gomock.Any(), domain.KindPlaylist, gomock.Any()).
						Return(errors.Join(usecase.ErrStoreUnavailable, errors.New("connection refused")))
					return mock
				},
			},
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			h := handler.NewCacheHandler(tt.fields.invalidation(ctrl), "videos")

			e := echo.New()
			req := httptest.NewRequest(http.MethodDelete, "/cache/video/clip1", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.SetParamNames("video")
			c.SetParamValues("clip1")

			err := h.HandleInvalidateVideo(c)

			if tt.wantStatus == http.StatusOK {
				if err != nil {
					t.Fatalf("HandleInvalidateVideo() error = %v", err)
				}
				if rec.Code != http.StatusOK {
					t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
				}
				return
			}

			var appErr *middleware.AppError
			if !errors.As(err, &appErr) {
				t.Fatalf("error = %v, want AppError", err)
			}
			if appErr.StatusCode != tt.wantStatus {
				t.Errorf("StatusCode = %d, want %d", appErr.StatusCode, tt.wantStatus)
			}
		})
	}
}

func TestCacheHandler_HandleInvalidateImage(t *testing.T) {
	type fields struct {
		invalidation func(ctrl *gomock.Controller) usecase.InvalidationUseCase
	}
	tests := []struct {
		name       string
		fields     fields
		wildcard   string
		wantStatus int
	}{
		{
			name: "正常系: ワイルドカードの先頭セグメントがバケットとして解釈される",
			fields: fields{
				invalidation: func(ctrl *gomock.Controller) usecase.InvalidationUseCase {
					mock := mock_usecase.NewMockInvalidationUseCase(ctrl)
					key, _ := domain.NewAssetKey("images", "photos/cat.jpg")
					mock.EXPECT().Invalidate(gomock.Any(), domain.KindThumbnail, key).Return(nil)
					return mock
				},
			},
			wildcard:   "images/photos/cat.jpg",
			wantStatus: http.StatusOK,
		},
		{
			name: "異常系: パス部分が欠けている場合は400が返る",
			fields: fields{
				invalidation: func(ctrl *gomock.Controller) usecase.InvalidationUseCase {
					return mock_usecase.NewMockInvalidationUseCase(ctrl)
				},
			},
			wildcard:   "images",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			h := handler.NewCacheHandler(tt.fields.invalidation(ctrl), "videos")

			e := echo.New()
			req := httptest.NewRequest(http.MethodDelete, "/cache/img/"+tt.wildcard, nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.SetParamNames("*")
			c.SetParamValues(tt.wildcard)

			err := h.HandleInvalidateImage(c)

			if tt.wantStatus == http.StatusOK {
				if err != nil {
					t.Fatalf("HandleInvalidateImage() error = %v", err)
				}
				if rec.Code != http.StatusOK {
					t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
				}
				return
			}

			var appErr *middleware.AppError
			if !errors.As(err, &appErr) {
				t.Fatalf("error = %v, want AppError", err)
			}
			if appErr.StatusCode != tt.wantStatus {
				t.Errorf("StatusCode = %d, want %d", appErr.StatusCode, tt.wantStatus)
			}
		})
	}
}
