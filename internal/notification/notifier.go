// Package notification collects business-rule violations without using Go
// errors for them. Errors stay reserved for failures nobody planned for
// (store down, unexpected constraint); a violation is an expected outcome
// that the caller shows to the user.
package notification

import (
	"context"
	"fmt"
)

// Notification is one violated rule, phrased for the end user.
type Notification struct {
	Message string
}

// Notifier accumulates notifications for one logical operation. It is not
// safe for concurrent use: one instance belongs to one request. All methods
// are no-ops on a nil receiver.
type Notifier struct {
	items []Notification
}

func New() *Notifier { return &Notifier{} }

func (n *Notifier) Notify(message string) {
	if n == nil {
		return
	}
	n.items = append(n.items, Notification{Message: message})
}

func (n *Notifier) Notifyf(format string, args ...any) {
	n.Notify(fmt.Sprintf(format, args...))
}

func (n *Notifier) HasNotifications() bool {
	return n != nil && len(n.items) > 0
}

// Notifications returns a copy in the order they were recorded.
func (n *Notifier) Notifications() []Notification {
	if n == nil {
		return nil
	}
	out := make([]Notification, len(n.items))
	copy(out, n.items)
	return out
}

// Merge appends everything recorded by other.
func (n *Notifier) Merge(other *Notifier) {
	if n == nil || other == nil {
		return
	}
	n.items = append(n.items, other.items...)
}

// Result snapshots the notifier as a value a service can return.
func (n *Notifier) Result() Result {
	if !n.HasNotifications() {
		return Result{}
	}
	msgs := make([]string, len(n.items))
	for i, it := range n.items {
		msgs[i] = it.Message
	}
	return Result{Violations: msgs}
}

// Result is what a mutating service call reports back: either success, or
// the ordered list of rules the request broke. A result with violations
// means the mutation was not performed.
type Result struct {
	Violations []string
}

func (r Result) Valid() bool { return len(r.Violations) == 0 }

type ctxKey struct{}

// NewContext attaches a request-scoped notifier to ctx.
func NewContext(ctx context.Context, n *Notifier) context.Context {
	return context.WithValue(ctx, ctxKey{}, n)
}

// FromContext returns the request notifier, or nil when none was attached.
func FromContext(ctx context.Context) *Notifier {
	n, _ := ctx.Value(ctxKey{}).(*Notifier)
	return n
}
