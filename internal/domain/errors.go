package domain

import "errors"

var (
	ErrInvalidAssetKey       = errors.New("invalid asset key")
	ErrInvalidArtifactKind   = errors.New("invalid artifact kind")
	ErrInvalidConversionMode = errors.New("invalid conversion mode")
	ErrInvalidSignedURL      = errors.New("invalid signed URL")
	ErrEmptyCredential       = errors.New("credential cannot be empty")
)
