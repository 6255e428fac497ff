package chatbot

import (
	"fmt"
	"strings"
)

// buildContextPrompt renders the context block handed to the completion
// API: the counters plus the most recent tasks and notes, so the
// assistant can ground small talk in what the user is actually doing.
func buildContextPrompt(snap *Snapshot) string {
	var b strings.Builder

	b.WriteString("User's current status:\n")
	fmt.Fprintf(&b, "- Total tasks: %d\n", snap.Stats.TotalTasks)
	fmt.Fprintf(&b, "- Completed tasks: %d\n", snap.Stats.CompletedTasks)
	fmt.Fprintf(&b, "- Pending tasks: %d\n", snap.Stats.PendingTasks)
	fmt.Fprintf(&b, "- Total notes: %d\n", snap.Stats.TotalMemos)

	b.WriteString("\nRecent tasks:\n")
	for i, todo := range snap.Todos {
		if i == 3 {
			break
		}
		state := "pending"
		if todo.Completed {
			state = "completed"
		}
		fmt.Fprintf(&b, "- %s (%s)\n", todo.Text, state)
	}

	b.WriteString("\nRecent notes:\n")
	for i, memo := range snap.Memos {
		if i == 2 {
			break
		}
		preview := memo.Content
		if runes := []rune(preview); len(runes) > 30 {
			preview = string(runes[:30])
		}
		fmt.Fprintf(&b, "- %s...\n", preview)
	}

	return b.String()
}
