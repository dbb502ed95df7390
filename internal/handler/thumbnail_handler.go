package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/shiosai/vodfront/internal/domain"
	"github.com/shiosai/vodfront/internal/handler/middleware"
	"github.com/shiosai/vodfront/internal/usecase"
)

// ThumbnailHandler はサムネイルの署名付きURLをテキストとして返すハンドラ
type ThumbnailHandler struct {
	thumbnail usecase.ThumbnailUseCase
}

func NewThumbnailHandler(thumbnail usecase.ThumbnailUseCase) *ThumbnailHandler {
	return &ThumbnailHandler{
		thumbnail: thumbnail,
	}
}

// HandleAssetThumbnail は GET /asset/:bucket/* を処理する
func (h *ThumbnailHandler) HandleAssetThumbnail(c echo.Context) error {
	rest := c.Param("*")
	if !strings.HasSuffix(rest, thumbnailSuffix) {
		return middleware.NewAppError(http.StatusNotFound, "未知のリソース種別です", nil)
	}

	key, err := domain.NewAssetKey(c.Param("bucket"), strings.TrimSuffix(rest, thumbnailSuffix))
	if err != nil {
		return toAppError(err)
	}

	url, err := h.thumbnail.GetOrSignThumbnail(c.Request().Context(), key)
	if err != nil {
		return toAppError(err)
	}

	return c.String(http.StatusOK, url)
}
