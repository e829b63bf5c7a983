// Package notifier delivers access workflow effects: an in-app notification
// row per effect, plus an email when the channel is configured.
package notifier

import (
	"context"
	"time"

	"github.com/edulane/edulane/internal/domain/notification"
	"github.com/edulane/edulane/internal/domain/user"
	"github.com/edulane/edulane/internal/infrastructure/email"
	"github.com/edulane/edulane/internal/shared/clock"
	"github.com/edulane/edulane/internal/shared/goroutine"
	"github.com/edulane/edulane/internal/shared/logger"
)

const dispatchTimeout = 10 * time.Second

// Notifier implements the access workflow's AccessNotifier port. Dispatch
// returns immediately; delivery runs in a recovered goroutine and failures
// are logged, never surfaced. The triggering state change is already
// committed when effects reach this point.
type Notifier struct {
	notificationRepo notification.Repository
	userRepo         user.Repository
	emailService     *email.SMTPEmailService // nil when the email channel is disabled
	clock            clock.Clock
	logger           logger.Interface
}

func New(
	notificationRepo notification.Repository,
	userRepo user.Repository,
	emailService *email.SMTPEmailService,
	clk clock.Clock,
	logger logger.Interface,
) *Notifier {
	return &Notifier{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		emailService:     emailService,
		clock:            clk,
		logger:           logger,
	}
}

func (n *Notifier) Dispatch(ctx context.Context, effects []notification.Effect) {
	if len(effects) == 0 {
		return
	}

	goroutine.SafeGo(n.logger, "notifier.dispatch", func() {
		// Detached from the request context; a canceled request must not
		// abandon delivery of an already-committed transition.
		ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
		defer cancel()

		for _, effect := range effects {
			n.deliver(ctx, effect)
		}
	})
}

func (n *Notifier) deliver(ctx context.Context, effect notification.Effect) {
	inApp, err := notification.NewNotification(effect, n.clock.Now())
	if err != nil {
		n.logger.Errorw("invalid notification effect",
			"error", err,
			"recipient_id", effect.RecipientID,
			"event_type", effect.EventType,
		)
		return
	}

	if err := n.notificationRepo.Create(ctx, inApp); err != nil {
		n.logger.Errorw("failed to store notification",
			"error", err,
			"recipient_id", effect.RecipientID,
			"event_type", effect.EventType,
		)
	}

	if n.emailService == nil {
		return
	}

	recipient, err := n.userRepo.GetByID(ctx, effect.RecipientID)
	if err != nil || recipient == nil {
		n.logger.Warnw("skipping notification email, recipient lookup failed",
			"error", err,
			"recipient_id", effect.RecipientID,
		)
		return
	}

	if err := n.emailService.SendNotificationEmail(recipient.Email(), effect.Title, effect.Message); err != nil {
		n.logger.Warnw("failed to send notification email",
			"error", err,
			"recipient_id", effect.RecipientID,
		)
	}
}
