package chatbot

import (
	"context"
	"time"

	"dotdo/internal/ai"
	"dotdo/internal/events"
	"dotdo/pkg/logger"
)

// Completer is the external completion API the fallback responder
// relays general chat through.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// apologyReply is the catch-all when a store operation fails mid-handler.
// The chat channel always gets a reply, never a raw error.
const apologyReply = "❌ Sorry, I encountered an error while processing your request. Please try again."

// Service classifies incoming chat messages and dispatches them to the
// task, memo or progress handlers, falling back to the completion API
// for general conversation. It holds no per-user state between requests.
type Service struct {
	tasks  TaskStore
	memos  MemoStore
	ai     Completer
	events *events.Publisher
	now    func() time.Time
}

// NewService wires the assistant. events may be nil.
func NewService(tasks TaskStore, memos MemoStore, completer Completer, publisher *events.Publisher) *Service {
	return &Service{
		tasks:  tasks,
		memos:  memos,
		ai:     completer,
		events: publisher,
		now:    time.Now,
	}
}

// Respond handles one chat message for one user and returns the reply
// text. An error is returned only from the fallback path; every
// structured intent resolves to a reply string, error cases included.
func (s *Service) Respond(ctx context.Context, userID, message string) (string, error) {
	intent := ClassifyIntent(message)
	logger.Debug(ctx, "Classified intent", "type", string(intent.Type))

	switch intent.Type {
	case IntentListTasks, IntentTaskSummary, IntentPendingTasks,
		IntentCompletedTasks, IntentTaskStatus, IntentAddTask,
		IntentCompleteTask, IntentDeleteTask:
		return s.handleTaskIntent(ctx, intent, userID), nil
	case IntentListMemos, IntentAddMemo:
		return s.handleMemoIntent(ctx, intent, userID), nil
	case IntentProgress:
		return s.handleProgress(ctx, userID), nil
	}

	return s.fallback(ctx, userID, message)
}

// fallback forwards the message plus a synthesized context block to the
// completion API and relays its reply verbatim. This path performs no
// writes; a snapshot failure degrades to an empty context rather than
// blocking the conversation.
func (s *Service) fallback(ctx context.Context, userID, message string) (string, error) {
	snap, err := s.loadSnapshot(ctx, userID)
	if err != nil {
		logger.Error(ctx, "Snapshot for fallback failed", "error", err)
		snap = &Snapshot{}
	}
	system := ai.BuildSystemPrompt(buildContextPrompt(snap))
	reply, err := s.ai.Complete(ctx, system, message)
	if err != nil {
		return "", err
	}
	s.events.Publish(ctx, events.Event{Type: "chat_fallback", UserID: userID, Actor: events.ActorUser})
	return reply, nil
}
