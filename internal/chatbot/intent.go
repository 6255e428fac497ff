package chatbot

import (
	"regexp"
	"strings"
)

// IntentType tags the classified purpose of a chat message.
type IntentType string

const (
	IntentListTasks      IntentType = "list_all_tasks"
	IntentTaskSummary    IntentType = "task_summary"
	IntentPendingTasks   IntentType = "pending_tasks"
	IntentCompletedTasks IntentType = "completed_tasks"
	IntentTaskStatus     IntentType = "task_status"
	IntentAddTask        IntentType = "add_task"
	IntentCompleteTask   IntentType = "complete_task"
	IntentDeleteTask     IntentType = "delete_task"
	IntentListMemos      IntentType = "list_memos"
	IntentAddMemo        IntentType = "add_memo"
	IntentProgress       IntentType = "user_progress"
	IntentChat           IntentType = "chat"
)

// Intent is the classification result for one message: a type tag plus
// whatever payload the trigger phrase implies. It lives for a single
// request.
type Intent struct {
	Type     IntentType
	Title    string // task title or lookup fragment
	Deadline string // raw deadline phrase, resolved later by ParseNaturalDate
	Content  string // memo content
}

var (
	addTaskDeadlineRe = regexp.MustCompile(`(?i)(?:add|new|create) task (.+?)\s+(?:by|due|deadline)\s+(.+)`)
	addTaskRe         = regexp.MustCompile(`(?i)(?:add|new|create) task (.+)`)
	completeTaskRe    = regexp.MustCompile(`(?i)(?:complete|finish) task (.+)`)
	deleteTaskRe      = regexp.MustCompile(`(?i)(?:delete|remove) task (.+)`)
	addMemoRe         = regexp.MustCompile(`(?i)(?:add memo|new note) (.+)`)
)

type intentRule struct {
	triggers []string
	build    func(raw string) Intent
}

func simple(t IntentType) func(string) Intent {
	return func(string) Intent { return Intent{Type: t} }
}

// intentRules is the closed, ordered trigger vocabulary. Matching is
// case-insensitive substring; the first rule with a matching trigger
// wins, so order is the only disambiguation mechanism.
var intentRules = []intentRule{
	{[]string{"show me my tasks", "list my tasks", "what are my tasks", "my tasks"}, simple(IntentListTasks)},
	{[]string{"how many tasks", "task summary"}, simple(IntentTaskSummary)},
	{[]string{"pending tasks", "unfinished tasks"}, simple(IntentPendingTasks)},
	{[]string{"completed tasks", "finished tasks"}, simple(IntentCompletedTasks)},
	{[]string{"task status", "task progress"}, simple(IntentTaskStatus)},
	{[]string{"add task", "new task", "create task"}, buildAddTask},
	{[]string{"complete task", "finish task"}, buildExtract(IntentCompleteTask, completeTaskRe)},
	{[]string{"delete task", "remove task"}, buildExtract(IntentDeleteTask, deleteTaskRe)},
	{[]string{"show memos", "my notes"}, simple(IntentListMemos)},
	{[]string{"add memo", "new note"}, buildAddMemo},
	{[]string{"my progress", "how am i doing"}, simple(IntentProgress)},
}

func buildAddTask(raw string) Intent {
	if m := addTaskDeadlineRe.FindStringSubmatch(raw); m != nil {
		return Intent{
			Type:     IntentAddTask,
			Title:    strings.TrimSpace(m[1]),
			Deadline: strings.TrimSpace(m[2]),
		}
	}
	intent := Intent{Type: IntentAddTask}
	if m := addTaskRe.FindStringSubmatch(raw); m != nil {
		intent.Title = strings.TrimSpace(m[1])
	}
	return intent
}

func buildExtract(t IntentType, re *regexp.Regexp) func(string) Intent {
	return func(raw string) Intent {
		intent := Intent{Type: t}
		if m := re.FindStringSubmatch(raw); m != nil {
			intent.Title = strings.TrimSpace(m[1])
		}
		return intent
	}
}

func buildAddMemo(raw string) Intent {
	intent := Intent{Type: IntentAddMemo}
	if m := addMemoRe.FindStringSubmatch(raw); m != nil {
		intent.Content = strings.TrimSpace(m[1])
	}
	return intent
}

// ClassifyIntent inspects a free-text message and returns the first
// matching intent, or a chat intent when nothing structured matches.
func ClassifyIntent(message string) Intent {
	lower := strings.ToLower(message)
	for _, rule := range intentRules {
		for _, trigger := range rule.triggers {
			if strings.Contains(lower, trigger) {
				return rule.build(message)
			}
		}
	}
	return Intent{Type: IntentChat}
}
