package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/shiosai/vodfront/internal/domain"
	"github.com/shiosai/vodfront/internal/handler/middleware"
	"github.com/shiosai/vodfront/internal/usecase"
)

// CacheHandler はキャッシュエントリの明示的な無効化を処理するハンドラ。
// ソースを残したまま再変換・再署名を強制する管理用オペレーション。
type CacheHandler struct {
	invalidation usecase.InvalidationUseCase
	sourceBucket string
}

func NewCacheHandler(invalidation usecase.InvalidationUseCase, sourceBucket string) *CacheHandler {
	return &CacheHandler{
		invalidation: invalidation,
		sourceBucket: sourceBucket,
	}
}

// HandleInvalidateVideo は DELETE /cache/video/:video を処理する
func (h *CacheHandler) HandleInvalidateVideo(c echo.Context) error {
	video := c.Param("video")
	key, err := domain.NewAssetKey(h.sourceBucket, video+sourceVideoExt)
	if err != nil {
		return toAppError(err)
	}

	if err := h.invalidation.Invalidate(c.Request().Context(), domain.KindPlaylist, key); err != nil {
		return toAppError(err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Cache cleared for '%s'", video),
	})
}

// HandleInvalidateImage は DELETE /cache/img/* を処理する。
// ワイルドカード部は {bucket}/{path} 形式。
func (h *CacheHandler) HandleInvalidateImage(c echo.Context) error {
	bucket, path, ok := strings.Cut(c.Param("*"), "/")
	if !ok || bucket == "" || path == "" {
		return middleware.NewAppError(http.StatusBadRequest, "リクエストパラメータが不正です", domain.ErrInvalidAssetKey)
	}

	key, err := domain.NewAssetKey(bucket, path)
	if err != nil {
		return toAppError(err)
	}

	if err := h.invalidation.Invalidate(c.Request().Context(), domain.KindThumbnail, key); err != nil {
		return toAppError(err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Cache cleared for '%s'", key.String()),
	})
}
