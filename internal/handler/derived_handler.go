package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shiosai/vodfront/internal/domain"
	"github.com/shiosai/vodfront/internal/usecase"
)

// DerivedHandler は変換成果物フォルダの削除を処理するハンドラ
type DerivedHandler struct {
	invalidation usecase.InvalidationUseCase
}

func NewDerivedHandler(invalidation usecase.InvalidationUseCase) *DerivedHandler {
	return &DerivedHandler{
		invalidation: invalidation,
	}
}

// HandleDeleteDerived は DELETE /derived/:bucket/* を処理する。
// ストアの成果物フォルダと対応するキャッシュの両方を破棄する。
func (h *DerivedHandler) HandleDeleteDerived(c echo.Context) error {
	key, err := domain.NewAssetKey(c.Param("bucket"), c.Param("*"))
	if err != nil {
		return toAppError(err)
	}

	if err := h.invalidation.DeleteDerivedOutput(c.Request().Context(), key); err != nil {
		return toAppError(err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Derived output deleted for '%s'", key.String()),
	})
}
