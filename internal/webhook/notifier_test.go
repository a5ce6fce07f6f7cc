package webhook

import (
	"context"
	"errors"
	"testing"
)

type mockExecutor struct {
	executed []string
	edits    map[string]string
	result   *Message
	err      error
}

func (m *mockExecutor) ExecuteWebhook(_ context.Context, _ *Handle, content string) (*Message, error) {
	m.executed = append(m.executed, content)
	return m.result, m.err
}

func (m *mockExecutor) EditWebhookMessage(_ context.Context, _ *Handle, messageID, content string) error {
	if m.edits == nil {
		m.edits = make(map[string]string)
	}
	m.edits[messageID] = content
	return m.err
}

func TestAnnounce_ReturnsMessageID(t *testing.T) {
	exec := &mockExecutor{result: &Message{ID: "msg-1", ChannelID: "logs"}}

	id, err := Announce(context.Background(), exec, &Handle{ID: "wh"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "msg-1" {
		t.Fatalf("unexpected message id: %q", id)
	}
	if len(exec.executed) != 1 || exec.executed[0] != StartupMessage {
		t.Fatalf("unexpected executions: %v", exec.executed)
	}
}

func TestAnnounce_NoMessage(t *testing.T) {
	exec := &mockExecutor{}

	_, err := Announce(context.Background(), exec, &Handle{ID: "wh"})
	var deliveryErr *DeliveryError
	if !errors.As(err, &deliveryErr) {
		t.Fatalf("expected DeliveryError, got %v", err)
	}
	if !errors.Is(err, ErrNoMessage) {
		t.Fatalf("expected ErrNoMessage, got %v", err)
	}
}

func TestAnnounce_ExecuteError(t *testing.T) {
	wantErr := errors.New("rate limited")
	exec := &mockExecutor{err: wantErr}

	if _, err := Announce(context.Background(), exec, &Handle{ID: "wh"}); !errors.Is(err, wantErr) {
		t.Fatalf("expected %v, got %v", wantErr, err)
	}
}

func TestMarkStopped_EditsStartupMessage(t *testing.T) {
	exec := &mockExecutor{}

	if err := MarkStopped(context.Background(), exec, &Handle{ID: "wh"}, "msg-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exec.edits["msg-1"] != ShutdownMessage {
		t.Fatalf("unexpected edits: %v", exec.edits)
	}
}
