package domain

// ArtifactKind は派生成果物の種別（プレイリスト／サムネイル）を表す
type ArtifactKind string

const (
	KindPlaylist  ArtifactKind = "playlist"
	KindThumbnail ArtifactKind = "thumbnail"
)

// NewArtifactKind は文字列からArtifactKindを生成する
func NewArtifactKind(s string) (ArtifactKind, error) {
	switch ArtifactKind(s) {
	case KindPlaylist, KindThumbnail:
		return ArtifactKind(s), nil
	default:
		return "", ErrInvalidArtifactKind
	}
}

func (k ArtifactKind) String() string {
	return string(k)
}
