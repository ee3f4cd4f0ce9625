package mailer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	sent []Message
	err  error
}

func (s *recordingSender) Send(_ context.Context, msg Message) error {
	s.sent = append(s.sent, msg)
	return s.err
}

func TestNotifier_SendActivation(t *testing.T) {
	// Arrange
	sender := &recordingSender{}
	notifier := NewNotifier(sender, "noreply@example.com")
	link := "http://localhost:3000/activateAccount/user@example.com/abc.def.ghi"

	// Act
	err := notifier.SendActivation(context.Background(), "user@example.com", link)

	// Assert
	require.NoError(t, err)
	require.Len(t, sender.sent, 1)
	msg := sender.sent[0]
	assert.Equal(t, "noreply@example.com", msg.From)
	assert.Equal(t, "user@example.com", msg.To)
	assert.Equal(t, ActivationSubject, msg.Subject)
	assert.Contains(t, msg.HTML, `href="`+link+`"`)
	assert.Contains(t, msg.HTML, "activate the account")
}

func TestNotifier_SendPasswordReset(t *testing.T) {
	sender := &recordingSender{}
	notifier := NewNotifier(sender, "noreply@example.com")
	link := "http://localhost:3000/retrieveAccount/user@example.com/tok"

	err := notifier.SendPasswordReset(context.Background(), "user@example.com", link)

	require.NoError(t, err)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, ResetSubject, sender.sent[0].Subject)
	assert.Contains(t, sender.sent[0].HTML, `href="`+link+`"`)
}

func TestNotifier_EscapesUserInput(t *testing.T) {
	sender := &recordingSender{}
	notifier := NewNotifier(sender, "noreply@example.com")

	err := notifier.SendActivation(context.Background(), "<script>@example.com", "http://localhost:3000/x")

	require.NoError(t, err)
	assert.NotContains(t, sender.sent[0].HTML, "<script>")
}

func TestNotifier_SenderError(t *testing.T) {
	sender := &recordingSender{err: assert.AnError}
	notifier := NewNotifier(sender, "noreply@example.com")

	err := notifier.SendActivation(context.Background(), "user@example.com", "http://localhost:3000/x")

	require.ErrorIs(t, err, assert.AnError)
}
