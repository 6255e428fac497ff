package chatbot

import (
	"context"
	"fmt"
	"strings"

	"dotdo/internal/events"
	"dotdo/internal/models"
	"dotdo/pkg/logger"
)

const deadlineFormat = "1/2/2006"

const invalidDeadlineReply = "❌ Invalid deadline format. Please use one of these formats:\n" +
	"• 'tomorrow'\n" +
	"• 'next monday'\n" +
	"• 'in 3 days'\n" +
	"• '2024-03-20'\n" +
	"• '3/20/2024'"

// handleTaskIntent performs the task CRUD action for a classified intent
// and formats the human-readable reply. Store faults become the apology
// reply; nothing propagates past here.
func (s *Service) handleTaskIntent(ctx context.Context, intent Intent, userID string) string {
	switch intent.Type {
	case IntentAddTask:
		return s.addTask(ctx, intent, userID)
	case IntentCompleteTask:
		return s.completeTask(ctx, intent, userID)
	case IntentDeleteTask:
		return s.deleteTask(ctx, intent, userID)
	}

	snap, err := s.loadSnapshot(ctx, userID)
	if err != nil {
		logger.Error(ctx, "Task intent snapshot failed", "error", err, "type", string(intent.Type))
		return apologyReply
	}

	switch intent.Type {
	case IntentListTasks:
		return formatTaskList(snap.Todos)
	case IntentTaskSummary:
		return fmt.Sprintf("📊 Task Summary:\n• Total Tasks: %d\n• Completed: %d\n• Pending: %d",
			snap.Stats.TotalTasks, snap.Stats.CompletedTasks, snap.Stats.PendingTasks)
	case IntentPendingTasks:
		return formatPendingTasks(snap.Todos)
	case IntentCompletedTasks:
		return formatCompletedTasks(snap.Todos)
	case IntentTaskStatus:
		return fmt.Sprintf("📈 Task Progress:\n• Total Tasks: %d\n• Completed: %d\n• Pending: %d\n• Progress: %.1f%%",
			snap.Stats.TotalTasks, snap.Stats.CompletedTasks, snap.Stats.PendingTasks, progressPercent(snap.Stats))
	}
	return apologyReply
}

func formatTaskList(todos []models.Todo) string {
	if len(todos) == 0 {
		return "You don't have any tasks yet. Would you like to add one? You can say 'add task [task name]' to create a new task."
	}
	lines := make([]string, 0, len(todos))
	for _, todo := range todos {
		line := "• " + todo.Text
		if todo.Deadline != nil {
			line += fmt.Sprintf(" (Due: %s)", todo.Deadline.Format(deadlineFormat))
		}
		if todo.Completed {
			line += " (✅)"
		} else {
			line += " (⏳)"
		}
		if todo.CreatedByBot {
			line += " 🤖"
		}
		lines = append(lines, line)
	}
	return "Here are all your tasks:\n" + strings.Join(lines, "\n")
}

func formatPendingTasks(todos []models.Todo) string {
	var lines []string
	for _, todo := range todos {
		if todo.Completed {
			continue
		}
		lines = append(lines, taskLine(todo))
	}
	if len(lines) == 0 {
		return "You have no pending tasks! 🎉"
	}
	return "📝 Pending Tasks:\n" + strings.Join(lines, "\n")
}

func formatCompletedTasks(todos []models.Todo) string {
	var lines []string
	for _, todo := range todos {
		if !todo.Completed {
			continue
		}
		lines = append(lines, taskLine(todo))
	}
	if len(lines) == 0 {
		return "You haven't completed any tasks yet."
	}
	return "✅ Completed Tasks:\n" + strings.Join(lines, "\n")
}

func taskLine(todo models.Todo) string {
	line := "• " + todo.Text
	if todo.Deadline != nil {
		line += fmt.Sprintf(" (Due: %s)", todo.Deadline.Format(deadlineFormat))
	}
	if todo.CreatedByBot {
		line += " 🤖"
	}
	return line
}

func (s *Service) addTask(ctx context.Context, intent Intent, userID string) string {
	if intent.Title == "" {
		return "Please specify a task title."
	}

	todo := &models.Todo{
		Text:         intent.Title,
		UserID:       userID,
		CreatedByBot: true,
	}
	if intent.Deadline != "" {
		deadline, err := ParseNaturalDate(intent.Deadline, s.now())
		if err != nil {
			return invalidDeadlineReply
		}
		todo.Deadline = &deadline
	}

	if err := s.tasks.Create(ctx, todo); err != nil {
		logger.Error(ctx, "Add task failed", "error", err)
		return apologyReply
	}
	s.events.Publish(ctx, events.Event{Type: "task_created", UserID: userID, Subject: todo.Text, Actor: events.ActorBot})

	reply := "✅ Task Added:\n• Title: " + intent.Title
	if todo.Deadline != nil {
		reply += fmt.Sprintf("\n• Due: %s", todo.Deadline.Format(deadlineFormat))
	}
	reply += "\n• Created by: 🤖"
	return reply
}

func (s *Service) completeTask(ctx context.Context, intent Intent, userID string) string {
	if intent.Title == "" {
		return "Please specify which task to complete."
	}
	todo, err := s.tasks.FindByUserAndText(ctx, userID, intent.Title)
	if err != nil {
		logger.Error(ctx, "Complete task lookup failed", "error", err)
		return apologyReply
	}
	if todo == nil {
		return "❌ Task not found."
	}
	todo.Completed = true
	if err := s.tasks.Save(ctx, todo); err != nil {
		logger.Error(ctx, "Complete task save failed", "error", err)
		return apologyReply
	}
	s.events.Publish(ctx, events.Event{Type: "task_completed", UserID: userID, Subject: todo.Text, Actor: events.ActorBot})

	reply := "✅ Task Completed:\n• Title: " + todo.Text
	if todo.CreatedByBot {
		reply += "\n• Created by: 🤖"
	}
	return reply
}

func (s *Service) deleteTask(ctx context.Context, intent Intent, userID string) string {
	if intent.Title == "" {
		return "Please specify which task to delete."
	}
	todo, err := s.tasks.FindByUserAndText(ctx, userID, intent.Title)
	if err != nil {
		logger.Error(ctx, "Delete task lookup failed", "error", err)
		return apologyReply
	}
	if todo == nil {
		return "❌ Task not found."
	}
	if err := s.tasks.Delete(ctx, todo.ID, userID); err != nil {
		logger.Error(ctx, "Delete task failed", "error", err)
		return apologyReply
	}
	s.events.Publish(ctx, events.Event{Type: "task_deleted", UserID: userID, Subject: todo.Text, Actor: events.ActorBot})

	reply := "🗑️ Task Deleted:\n• Title: " + todo.Text
	if todo.CreatedByBot {
		reply += "\n• Created by: 🤖"
	}
	return reply
}
