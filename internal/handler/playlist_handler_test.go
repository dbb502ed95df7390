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

func TestPlaylistHandler_HandleVideoPlaylist(t *testing.T) {
	const signedPlaylist = "#EXTM3U\nhttps://store.example/vod-derived/clip1/seg0.ts?sig=a\n"

	type fields struct {
		playback func(ctrl *gomock.Controller) usecase.PlaybackUseCase
	}
	tests := []struct {
		name       string
		fields     fields
		video      string
		wantStatus int
		wantBody   string
	}{
		{
			name: "正常系: 変換済みプレイリストが返る",
			fields: fields{
				playback: func(ctrl *gomock.Controller) usecase.PlaybackUseCase {
					mock := mock_usecase.NewMockPlaybackUseCase(ctrl)
					key, _ := domain.NewAssetKey("videos", "clip1.mp4")
					mock.EXPECT().GetCachedPlaylist(gomock.Any(), key).Return(signedPlaylist, nil)
					return mock
				},
			},
			video:      "clip1",
			wantStatus: http.StatusOK,
			wantBody:   signedPlaylist,
		},
		{
			name: "異常系: 未変換の場合は404が返る",
			fields: fields{
				playback: func(ctrl *gomock.Controller) usecase.PlaybackUseCase {
					mock := mock_usecase.NewMockPlaybackUseCase(ctrl)
					mock.EXPECT().GetCachedPlaylist(gomock.Any(), gomock.Any()).Return("", usecase.ErrObjectNotFound)
					return mock
				},
			},
			video:      "clip1",
			wantStatus: http.StatusNotFound,
		},
		{
			name: "異常系: ストアに到達できない場合は503が返る",
			fields: fields{
				playback: func(ctrl *gomock.Controller) usecase.PlaybackUseCase {
					mock := mock_usecase.NewMockPlaybackUseCase(ctrl)
					mock.EXPECT().GetCachedPlaylist(gomock.Any(), gomock.Any()).
						Return("", errors.Join(usecase.ErrStoreUnavailable, errors.New("connection refused")))
					return mock
				},
			},
			video:      "clip1",
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			h := handler.NewPlaylistHandler(tt.fields.playback(ctrl), "videos")

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/video/"+tt.video+"/playlist.m3u8", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.SetParamNames("video")
			c.SetParamValues(tt.video)

			err := h.HandleVideoPlaylist(c)

			if tt.wantStatus == http.StatusOK {
				if err != nil {
					t.Fatalf("HandleVideoPlaylist() error = %v", err)
				}
				if rec.Code != http.StatusOK {
					t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
				}
				if got := rec.Header().Get(echo.HeaderContentType); got != handler.PlaylistContentType {
					t.Errorf("Content-Type = %q, want %q", got, handler.PlaylistContentType)
				}
				if rec.Body.String() != tt.wantBody {
					t.Errorf("body = %q, want %q", rec.Body.String(), tt.wantBody)
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
