package usecases

import (
	"context"

	"github.com/edulane/edulane/internal/domain/notification"
)

// AccessNotifier delivers workflow side effects best effort. Implementations
// must never block the caller on delivery and must swallow delivery errors;
// an access-state change is already committed by the time effects exist.
type AccessNotifier interface {
	Dispatch(ctx context.Context, effects []notification.Effect)
}
