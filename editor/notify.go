package editor

type Severity int

const (
	SeverityDefault Severity = iota
	SeverityDestructive
)

func (s Severity) String() string {
	if s == SeverityDestructive {
		return "destructive"
	}
	return "default"
}

// Notification is a user-facing message. Delivery is best effort.
type Notification struct {
	Title       string
	Description string
	Severity    Severity
}

// Notifier receives notifications from the session. Implementations must not
// call back into the session synchronously.
type Notifier interface {
	Notify(n Notification)
}

type NotifierFunc func(n Notification)

func (f NotifierFunc) Notify(n Notification) { f(n) }

type discardNotifier struct{}

func (discardNotifier) Notify(Notification) {}

// Discard drops every notification.
var Discard Notifier = discardNotifier{}
