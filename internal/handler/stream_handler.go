package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/shiosai/vodfront/internal/domain"
	"github.com/shiosai/vodfront/internal/handler/middleware"
	"github.com/shiosai/vodfront/internal/usecase"
)

const (
	playlistSuffix  = "/playlist.m3u8"
	thumbnailSuffix = "/thumbnail"
)

// StreamHandler は GET /stream/:bucket/* を処理する。
// パス末尾のサフィックスで要求される成果物を判別する:
//   - {path}/playlist.m3u8 → 遅延変換つきプレイリスト配信
//   - {path}/thumbnail     → 署名付きURLへのリダイレクト
type StreamHandler struct {
	playback  usecase.PlaybackUseCase
	thumbnail usecase.ThumbnailUseCase
}

func NewStreamHandler(playback usecase.PlaybackUseCase, thumbnail usecase.ThumbnailUseCase) *StreamHandler {
	return &StreamHandler{
		playback:  playback,
		thumbnail: thumbnail,
	}
}

func (h *StreamHandler) Handle(c echo.Context) error {
	bucket := c.Param("bucket")
	rest := c.Param("*")

	switch {
	case strings.HasSuffix(rest, playlistSuffix):
		return h.handlePlaylist(c, bucket, strings.TrimSuffix(rest, playlistSuffix))
	case strings.HasSuffix(rest, thumbnailSuffix):
		return h.handleThumbnail(c, bucket, strings.TrimSuffix(rest, thumbnailSuffix))
	default:
		return middleware.NewAppError(http.StatusNotFound, "未知のリソース種別です", nil)
	}
}

func (h *StreamHandler) handlePlaylist(c echo.Context, bucket, path string) error {
	key, err := domain.NewAssetKey(bucket, path)
	if err != nil {
		return toAppError(err)
	}

	mode, err := domain.NewConversionMode(c.QueryParam("mode"))
	if err != nil {
		return toAppError(err)
	}

	text, err := h.playback.GetOrConvertPlaylist(c.Request().Context(), key, mode)
	if err != nil {
		return toAppError(err)
	}

	return c.Blob(http.StatusOK, PlaylistContentType, []byte(text))
}

func (h *StreamHandler) handleThumbnail(c echo.Context, bucket, path string) error {
	key, err := domain.NewAssetKey(bucket, path)
	if err != nil {
		return toAppError(err)
	}

	url, err := h.thumbnail.GetOrSignThumbnail(c.Request().Context(), key)
	if err != nil {
		return toAppError(err)
	}

	return c.Redirect(http.StatusFound, url)
}
