package handler

import (
	"errors"
	"net/http"

	"github.com/shiosai/vodfront/internal/domain"
	"github.com/shiosai/vodfront/internal/handler/middleware"
	"github.com/shiosai/vodfront/internal/infrastructure/s3"
	"github.com/shiosai/vodfront/internal/usecase"
)

// toAppError はユースケース層のエラーをHTTPステータス付きのAppErrorに変換する
func toAppError(err error) *middleware.AppError {
	switch {
	case errors.Is(err, usecase.ErrObjectNotFound):
		return middleware.NewAppError(http.StatusNotFound, "アセットが存在しません", err)
	case errors.Is(err, usecase.ErrConversionInProgress):
		return middleware.NewAppError(http.StatusConflict, "変換が進行中です。しばらくしてから再試行してください", err)
	case errors.Is(err, usecase.ErrConversionFailed):
		return middleware.NewAppError(http.StatusBadGateway, "変換に失敗しました", err)
	case errors.Is(err, usecase.ErrStoreUnavailable), s3.IsStorageError(err):
		return middleware.NewAppError(http.StatusServiceUnavailable, "バックエンドストアに到達できません", err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(http.StatusUnauthorized, "APIキーが不正です", err)
	case errors.Is(err, domain.ErrInvalidAssetKey),
		errors.Is(err, domain.ErrInvalidArtifactKind),
		errors.Is(err, domain.ErrInvalidConversionMode):
		return middleware.NewAppError(http.StatusBadRequest, "リクエストパラメータが不正です", err)
	default:
		return middleware.NewAppError(http.StatusInternalServerError, "サーバー内部エラーが発生しました", err)
	}
}
