//go:generate mockgen -source=$GOFILE -destination=../../tests/usecase/mock_health_checker.go -package=usecase
package usecase

import (
	"context"
)

// HealthChecker は依存コンポーネントの疎通確認を抽象化する
type HealthChecker interface {
	Name() string
	Check(ctx context.Context) error
}
