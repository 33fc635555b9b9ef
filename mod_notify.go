package studio

import (
	"time"

	"github.com/gekko3d/studio/editor"
)

const (
	DefaultToastLimit = 3
	DefaultToastTTL   = 5 * time.Second
)

type Toast struct {
	editor.Notification
	At time.Time
}

// Toasts is the notification sink handed to the editor session. Every
// notification is also written to the logger.
type Toasts struct {
	limit  int
	ttl    time.Duration
	items  []Toast
	logger Logger
	now    func() time.Time
}

func NewToasts(limit int, ttl time.Duration, logger Logger) *Toasts {
	if limit <= 0 {
		limit = DefaultToastLimit
	}
	if ttl <= 0 {
		ttl = DefaultToastTTL
	}
	if logger == nil {
		logger = NewNopLogger()
	}
	return &Toasts{limit: limit, ttl: ttl, logger: logger, now: time.Now}
}

// Notify implements editor.Notifier. The oldest toast is dropped when the
// limit is reached.
func (t *Toasts) Notify(n editor.Notification) {
	if n.Severity == editor.SeverityDestructive {
		t.logger.Warnf("%s: %s", n.Title, n.Description)
	} else {
		t.logger.Infof("%s: %s", n.Title, n.Description)
	}
	t.items = append(t.items, Toast{Notification: n, At: t.now()})
	if over := len(t.items) - t.limit; over > 0 {
		t.items = append(t.items[:0:0], t.items[over:]...)
	}
}

// Visible returns the toasts currently on screen, newest last.
func (t *Toasts) Visible() []Toast {
	return append([]Toast(nil), t.items...)
}

func (t *Toasts) Latest() (editor.Notification, bool) {
	if len(t.items) == 0 {
		return editor.Notification{}, false
	}
	return t.items[len(t.items)-1].Notification, true
}

func (t *Toasts) Dismiss() {
	t.items = nil
}

func (t *Toasts) expire(now time.Time) {
	keep := t.items[:0]
	for _, item := range t.items {
		if now.Sub(item.At) < t.ttl {
			keep = append(keep, item)
		}
	}
	t.items = keep
}

type NotificationModule struct {
	Limit int
	TTL   time.Duration
}

func (mod NotificationModule) Install(app *App, cmd *Commands) {
	toasts := NewToasts(mod.Limit, mod.TTL, namedLogger(app.Logger(), "toasts"))
	if tm, ok := Resource[Time](app); ok {
		toasts.now = func() time.Time { return tm.Time }
	}
	cmd.AddResources(toasts)
	app.UseSystem(
		System(toastSystem).
			InStage(PostUpdate).
			RunAlways(),
	)
}

func toastSystem(toasts *Toasts) {
	toasts.expire(toasts.now())
}
