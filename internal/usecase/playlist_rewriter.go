//go:generate mockgen -source=$GOFILE -destination=../../tests/usecase/mock_playlist_rewriter.go -package=usecase
package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/shiosai/vodfront/internal/domain"
)

// SegmentURLTTL はプレイリスト内セグメントの署名付きURLの有効期間
const SegmentURLTTL = time.Hour

// PlaylistRewriter はプレイリスト内のセグメント参照を署名付きURLに書き換える
type PlaylistRewriter interface {
	Rewrite(ctx context.Context, key domain.AssetKey, raw string) (string, error)
}

type playlistRewriterImpl struct {
	signer    URLSigner
	vodBucket string
}

func NewPlaylistRewriter(signer URLSigner, vodBucket string) PlaylistRewriter {
	return &playlistRewriterImpl{
		signer:    signer,
		vodBucket: vodBucket,
	}
}

// Rewrite は行単位で走査し、セグメント参照行のみを署名付きURLに置き換える。
// ディレクティブ行と空行は順序・内容ともそのまま通す。
// URLは呼び出しごとに新しく署名されるため、出力の文字列比較はできない。
func (r *playlistRewriterImpl) Rewrite(ctx context.Context, key domain.AssetKey, raw string) (string, error) {
	lines := strings.Split(raw, "\n")
	rewritten := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if !strings.HasSuffix(trimmed, ".ts") || strings.HasPrefix(trimmed, "#") {
			rewritten = append(rewritten, line)
			continue
		}

		segmentKey := key.SegmentObjectKey(trimmed)
		signedURL, err := r.signer.GenerateGetURL(ctx, r.vodBucket, segmentKey, SegmentURLTTL)
		if err != nil {
			return "", err
		}
		rewritten = append(rewritten, signedURL)
	}

	return strings.Join(rewritten, "\n"), nil
}
