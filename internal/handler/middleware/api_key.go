package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shiosai/vodfront/internal/domain"
	"github.com/shiosai/vodfront/internal/usecase"
)

// HeaderAPIKey は特権操作の共有シークレットを運ぶリクエストヘッダ
const HeaderAPIKey = "x-api-key"

// RequireAPIKey は提示されたAPIキーを検証し、不一致の場合は401を返すミドルウェア。
// 検証に失敗したリクエストはハンドラに到達しない。
func RequireAPIKey(credential domain.APICredential) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !credential.Verify(c.Request().Header.Get(HeaderAPIKey)) {
				return NewAppError(http.StatusUnauthorized, "APIキーが不正です", usecase.ErrUnauthorized)
			}
			return next(c)
		}
	}
}
