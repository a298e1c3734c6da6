// Package worker runs background jobs.
package worker

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"petcare/internal/model"
	"petcare/internal/notify"
	"petcare/internal/repository"
)

// UserNotifier pushes a notification to every device of a user.
type UserNotifier interface {
	NotifyUser(ctx context.Context, userID string, n notify.Notification)
}

// AlertDispatcher sends a push for each active alert when the UTC clock
// reaches its HH:MM. An alert fires at most once per minute.
type AlertDispatcher struct {
	alerts   repository.AlertRepository
	notifier UserNotifier
	log      *zap.Logger
	interval time.Duration
	now      func() time.Time

	mu   sync.Mutex
	sent map[string]string // alert id -> minute last fired
}

func NewAlertDispatcher(alerts repository.AlertRepository, notifier UserNotifier, log *zap.Logger, interval time.Duration) *AlertDispatcher {
	if interval <= 0 {
		interval = time.Minute
	}
	return &AlertDispatcher{
		alerts:   alerts,
		notifier: notifier,
		log:      log.With(zap.String("component", "alert_dispatcher")),
		interval: interval,
		now:      time.Now,
		sent:     make(map[string]string),
	}
}

// Start runs the dispatcher until ctx is cancelled.
func (d *AlertDispatcher) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(d.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				d.tick(ctx, d.now().UTC())
			}
		}
	}()
}

// tick fires every due alert and returns how many notifications were sent.
func (d *AlertDispatcher) tick(ctx context.Context, now time.Time) int {
	clock := now.Format(model.ClockLayout)
	minute := now.Format("2006-01-02T15:04")

	due, err := d.alerts.ListDue(ctx, clock)
	if err != nil {
		d.log.Warn("list due alerts failed", zap.Error(err))
		return 0
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	fired := 0
	for _, a := range due {
		if d.sent[a.ID] == minute {
			continue
		}
		d.sent[a.ID] = minute
		d.notifier.NotifyUser(ctx, a.OwnerID, notify.Notification{
			Title: "Reminder",
			Body:  a.Name,
			Data: map[string]any{
				"action":   "ALERT_REMINDER",
				"alert_id": a.ID,
				"time":     a.Time,
			},
		})
		fired++
	}

	for id, m := range d.sent {
		if m != minute {
			delete(d.sent, id)
		}
	}
	return fired
}
