package chatbot

import (
	"context"
	"fmt"

	"dotdo/pkg/logger"
)

// handleProgress builds the productivity summary with a tiered
// encouragement line. Thresholds are inclusive lower bounds evaluated
// top-down: exactly 100 gets the celebration, 75-99.9 the strong tier,
// 50-74.9 the positive tier, anything above zero the motivational one.
func (s *Service) handleProgress(ctx context.Context, userID string) string {
	snap, err := s.loadSnapshot(ctx, userID)
	if err != nil {
		logger.Error(ctx, "Progress snapshot failed", "error", err)
		return apologyReply
	}
	progress := progressPercent(snap.Stats)

	msg := "📊 Productivity Summary:\n\n"
	msg += "📈 Task Progress:\n"
	msg += fmt.Sprintf("• Total Tasks: %d\n", snap.Stats.TotalTasks)
	msg += fmt.Sprintf("• Completed: %d\n", snap.Stats.CompletedTasks)
	msg += fmt.Sprintf("• Pending: %d\n", snap.Stats.PendingTasks)
	msg += fmt.Sprintf("• Progress: %.1f%%\n\n", progress)
	msg += "📝 Notes:\n"
	msg += fmt.Sprintf("• Total Notes: %d\n\n", snap.Stats.TotalMemos)
	msg += encouragement(progress)
	return msg
}

func encouragement(progress float64) string {
	switch {
	case progress == 100:
		return "🎉 Amazing! You've completed all your tasks!"
	case progress >= 75:
		return "🌟 Great progress! You're almost there!"
	case progress >= 50:
		return "👍 Good work! Keep going!"
	case progress > 0:
		return "💪 You're making progress! Keep it up!"
	default:
		return "🎯 Time to get started! You can do it!"
	}
}
