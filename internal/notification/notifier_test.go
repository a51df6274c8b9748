package notification

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotifier_AccumulatesInOrder(t *testing.T) {
	n := New()
	assert.False(t, n.HasNotifications())

	n.Notify("name is required")
	n.Notifyf("document %s already registered", "123")

	assert.True(t, n.HasNotifications())
	assert.Equal(t, []Notification{
		{Message: "name is required"},
		{Message: "document 123 already registered"},
	}, n.Notifications())
}

func TestNotifier_NotificationsIsACopy(t *testing.T) {
	n := New()
	n.Notify("a")

	got := n.Notifications()
	got[0].Message = "changed"

	assert.Equal(t, "a", n.Notifications()[0].Message)
}

func TestNotifier_NilReceiver(t *testing.T) {
	var n *Notifier

	assert.NotPanics(t, func() {
		n.Notify("ignored")
		n.Merge(New())
	})
	assert.False(t, n.HasNotifications())
	assert.Nil(t, n.Notifications())
	assert.True(t, n.Result().Valid())
}

func TestNotifier_Merge(t *testing.T) {
	req := New()
	req.Notify("first")
	call := New()
	call.Notify("second")

	req.Merge(call)

	assert.Len(t, req.Notifications(), 2)
	assert.Equal(t, "second", req.Notifications()[1].Message)
}

func TestResult(t *testing.T) {
	assert.True(t, New().Result().Valid())

	n := New()
	n.Notify("value must not be negative")
	res := n.Result()

	assert.False(t, res.Valid())
	assert.Equal(t, []string{"value must not be negative"}, res.Violations)
}

func TestContext(t *testing.T) {
	assert.Nil(t, FromContext(context.Background()))

	n := New()
	ctx := NewContext(context.Background(), n)

	assert.Same(t, n, FromContext(ctx))
}
