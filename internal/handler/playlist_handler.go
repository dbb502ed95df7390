package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shiosai/vodfront/internal/domain"
	"github.com/shiosai/vodfront/internal/usecase"
)

// PlaylistContentType はHLSプレイリストのContent-Type
const PlaylistContentType = "application/vnd.apple.mpegurl"

// sourceVideoExt はアセット名のみで指定されたソース動画に補うデフォルト拡張子
const sourceVideoExt = ".mp4"

// PlaylistHandler はアセット名のみで変換済みプレイリストを配信するハンドラ。
// このルートは変換を起動しない（未変換の場合は404）。
type PlaylistHandler struct {
	playback     usecase.PlaybackUseCase
	sourceBucket string
}

func NewPlaylistHandler(playback usecase.PlaybackUseCase, sourceBucket string) *PlaylistHandler {
	return &PlaylistHandler{
		playback:     playback,
		sourceBucket: sourceBucket,
	}
}

// HandleVideoPlaylist は GET /video/:video/playlist.m3u8 を処理する
func (h *PlaylistHandler) HandleVideoPlaylist(c echo.Context) error {
	key, err := domain.NewAssetKey(h.sourceBucket, c.Param("video")+sourceVideoExt)
	if err != nil {
		return toAppError(err)
	}

	text, err := h.playback.GetCachedPlaylist(c.Request().Context(), key)
	if err != nil {
		return toAppError(err)
	}

	return c.Blob(http.StatusOK, PlaylistContentType, []byte(text))
}
