package chatbot

import (
	"context"
	"strconv"
	"strings"
	"time"

	"dotdo/internal/models"
)

type fakeTaskStore struct {
	todos     []models.Todo
	findErr   error
	createErr error
	saveErr   error
	deleteErr error
}

func (f *fakeTaskStore) FindByUser(_ context.Context, userID string) ([]models.Todo, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	var out []models.Todo
	for _, t := range f.todos {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTaskStore) FindByUserAndText(_ context.Context, userID, fragment string) (*models.Todo, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	needle := strings.ToLower(fragment)
	for i := range f.todos {
		t := &f.todos[i]
		if t.UserID == userID && strings.Contains(strings.ToLower(t.Text), needle) {
			copied := *t
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeTaskStore) Create(_ context.Context, todo *models.Todo) error {
	if f.createErr != nil {
		return f.createErr
	}
	if todo.ID == "" {
		todo.ID = "todo-" + strconv.Itoa(len(f.todos)+1)
	}
	todo.CreatedAt = time.Now()
	todo.UpdatedAt = todo.CreatedAt
	f.todos = append(f.todos, *todo)
	return nil
}

func (f *fakeTaskStore) Save(_ context.Context, todo *models.Todo) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	for i := range f.todos {
		if f.todos[i].ID == todo.ID {
			f.todos[i] = *todo
			return nil
		}
	}
	return nil
}

func (f *fakeTaskStore) Delete(_ context.Context, id, userID string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i := range f.todos {
		if f.todos[i].ID == id && f.todos[i].UserID == userID {
			f.todos = append(f.todos[:i], f.todos[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeMemoStore struct {
	memos     []models.Memo
	findErr   error
	createErr error
}

func (f *fakeMemoStore) FindByUser(_ context.Context, userID string) ([]models.Memo, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	var out []models.Memo
	for _, m := range f.memos {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMemoStore) Create(_ context.Context, memo *models.Memo) error {
	if f.createErr != nil {
		return f.createErr
	}
	if memo.ID == "" {
		memo.ID = "memo-" + strconv.Itoa(len(f.memos)+1)
	}
	memo.CreatedAt = time.Now()
	memo.UpdatedAt = memo.CreatedAt
	f.memos = append(f.memos, *memo)
	return nil
}

type stubCompleter struct {
	reply      string
	err        error
	calls      int
	lastSystem string
	lastUser   string
}

func (s *stubCompleter) Complete(_ context.Context, system, user string) (string, error) {
	s.calls++
	s.lastSystem = system
	s.lastUser = user
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

// newTestService wires a service over the fakes with a fixed clock.
func newTestService(tasks *fakeTaskStore, memos *fakeMemoStore, completer *stubCompleter) *Service {
	svc := NewService(tasks, memos, completer, nil)
	svc.now = func() time.Time {
		return time.Date(2024, time.March, 13, 15, 0, 0, 0, time.UTC) // a Wednesday
	}
	return svc
}
