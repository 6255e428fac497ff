package chatbot

import (
	"context"
	"strings"

	"dotdo/internal/events"
	"dotdo/internal/models"
	"dotdo/pkg/logger"
)

// memoPreviewLen is how much note content the list reply shows before
// truncating with an ellipsis marker.
const memoPreviewLen = 50

// handleMemoIntent performs the memo action and formats the reply.
func (s *Service) handleMemoIntent(ctx context.Context, intent Intent, userID string) string {
	switch intent.Type {
	case IntentListMemos:
		memos, err := s.memos.FindByUser(ctx, userID)
		if err != nil {
			logger.Error(ctx, "List memos failed", "error", err)
			return apologyReply
		}
		return formatMemoList(memos)

	case IntentAddMemo:
		if intent.Content == "" {
			return "Please specify the note content."
		}
		memo := &models.Memo{
			Content: intent.Content,
			UserID:  userID,
			X:       models.DefaultMemoX,
			Y:       models.DefaultMemoY,
			Width:   models.DefaultMemoWidth,
			Height:  models.DefaultMemoHeight,
			Color:   models.RandomMemoColor(),
		}
		if err := s.memos.Create(ctx, memo); err != nil {
			logger.Error(ctx, "Add memo failed", "error", err)
			return apologyReply
		}
		s.events.Publish(ctx, events.Event{Type: "memo_created", UserID: userID, Subject: truncate(memo.Content, 30), Actor: events.ActorBot})
		return "✅ Note Added:\n• Content: " + intent.Content
	}
	return apologyReply
}

func formatMemoList(memos []models.Memo) string {
	if len(memos) == 0 {
		return "You have no notes yet."
	}
	lines := make([]string, 0, len(memos))
	for _, memo := range memos {
		lines = append(lines, "• "+truncate(memo.Content, memoPreviewLen))
	}
	return "📝 Your Notes:\n" + strings.Join(lines, "\n")
}

// truncate shortens s to max runes, appending "..." only when content
// was actually cut.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
