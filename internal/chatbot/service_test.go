package chatbot

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dotdo/internal/apperr"
	"dotdo/internal/models"
)

func TestRespond_StructuredIntentSkipsCompletionAPI(t *testing.T) {
	completer := &stubCompleter{reply: "should not be used"}
	svc := newTestService(&fakeTaskStore{}, &fakeMemoStore{}, completer)

	_, err := svc.Respond(context.Background(), "u1", "show me my tasks")
	require.NoError(t, err)
	assert.Equal(t, 0, completer.calls, "structured intents must not reach the completion API")
}

func TestRespond_ChatFallback(t *testing.T) {
	completer := &stubCompleter{reply: "Stay focused! 💡"}
	tasks := &fakeTaskStore{todos: []models.Todo{
		{ID: "1", UserID: "u1", Text: "Write report"},
		{ID: "2", UserID: "u1", Text: "Ship release", Completed: true},
	}}
	memos := &fakeMemoStore{memos: []models.Memo{
		{ID: "m1", UserID: "u1", Content: "remember the retro notes from last sprint planning"},
	}}
	svc := newTestService(tasks, memos, completer)

	reply, err := svc.Respond(context.Background(), "u1", "any advice for today?")
	require.NoError(t, err)
	assert.Equal(t, "Stay focused! 💡", reply, "fallback relays the completion verbatim")
	assert.Equal(t, 1, completer.calls)
	assert.Equal(t, "any advice for today?", completer.lastUser)

	// The system prompt carries the persona and the synthesized context.
	assert.Contains(t, completer.lastSystem, "You are Remindy")
	assert.Contains(t, completer.lastSystem, "- Total tasks: 2")
	assert.Contains(t, completer.lastSystem, "- Completed tasks: 1")
	assert.Contains(t, completer.lastSystem, "- Write report (pending)")
	assert.Contains(t, completer.lastSystem, "- Ship release (completed)")
	// Notes are previewed at 30 characters.
	assert.Contains(t, completer.lastSystem, "- remember the retro notes from ...")
	assert.NotContains(t, completer.lastSystem, "sprint planning")
}

func TestRespond_ChatFallback_UpstreamErrorSurfaces(t *testing.T) {
	completer := &stubCompleter{err: apperr.UpstreamAuth("Invalid API key", "Please check your OpenRouter API key")}
	svc := newTestService(&fakeTaskStore{}, &fakeMemoStore{}, completer)

	_, err := svc.Respond(context.Background(), "u1", "tell me something")
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindUpstreamAuth))
}

func TestRespond_ChatFallback_SnapshotFailureDegrades(t *testing.T) {
	completer := &stubCompleter{reply: "hello"}
	tasks := &fakeTaskStore{findErr: assert.AnError}
	svc := newTestService(tasks, &fakeMemoStore{}, completer)

	reply, err := svc.Respond(context.Background(), "u1", "just chatting")
	require.NoError(t, err, "a snapshot failure must not block the conversation")
	assert.Equal(t, "hello", reply)
	assert.Contains(t, completer.lastSystem, "- Total tasks: 0", "degrades to an empty context")
}

func TestRespond_NoStateBetweenRequests(t *testing.T) {
	tasks := &fakeTaskStore{}
	svc := newTestService(tasks, &fakeMemoStore{}, &stubCompleter{})
	ctx := context.Background()

	if _, err := svc.Respond(ctx, "u1", "add task one thing"); err != nil {
		t.Fatal(err)
	}
	reply, err := svc.Respond(ctx, "u1", "task summary")
	require.NoError(t, err)
	if !strings.Contains(reply, "• Total Tasks: 1") {
		t.Errorf("second request should see the persisted task: %q", reply)
	}
}
