package controller

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/singleflight"

	"dotdo/internal/cache"
	"dotdo/internal/events"
	"dotdo/internal/middleware"
	"dotdo/internal/models"
	"dotdo/internal/repository"
	"dotdo/pkg/logger"
)

// TodoController serves the /api/todos REST endpoints.
type TodoController struct {
	store  *repository.TodoStore
	cache  *cache.Cache
	events *events.Publisher
	group  singleflight.Group
}

// NewTodoController wires the todo endpoints. cache and events may be nil.
func NewTodoController(store *repository.TodoStore, c *cache.Cache, ev *events.Publisher) *TodoController {
	return &TodoController{store: store, cache: c, events: ev}
}

// List returns the user's todos, newest first, cache-first as raw JSON.
func (tc *TodoController) List(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.UserID(c)

	if b, ok := tc.cache.GetList(ctx, cache.KindTodos, userID); ok {
		c.Data(http.StatusOK, "application/json", b)
		return
	}
	v, err, _ := tc.group.Do(userID, func() (interface{}, error) {
		todos, err := tc.store.FindByUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		if todos == nil {
			todos = []models.Todo{}
		}
		return json.Marshal(todos)
	})
	if err != nil {
		logger.Error(ctx, "List todos failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching todos"})
		return
	}
	b := v.([]byte)
	c.Data(http.StatusOK, "application/json", b)
	tc.cache.SetListAsync(cache.KindTodos, userID, b)
}

// Create inserts a new todo for the user.
func (tc *TodoController) Create(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.UserID(c)
	var body struct {
		Text        string     `json:"text" binding:"required"`
		Description string     `json:"description"`
		Deadline    *time.Time `json:"deadline"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Text is required"})
		return
	}
	todo := &models.Todo{
		Text:        body.Text,
		Description: body.Description,
		Deadline:    body.Deadline,
		UserID:      userID,
	}
	if err := tc.store.Create(ctx, todo); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating todo"})
		return
	}
	tc.cache.InvalidateList(ctx, cache.KindTodos, userID)
	tc.events.Publish(ctx, events.Event{Type: "task_created", UserID: userID, Subject: todo.Text, Actor: events.ActorUser})
	c.JSON(http.StatusCreated, todo)
}

// Update applies a partial update to a todo the user owns.
func (tc *TodoController) Update(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.UserID(c)
	id := c.Param("id")

	var body struct {
		Text        *string    `json:"text"`
		Description *string    `json:"description"`
		Deadline    *time.Time `json:"deadline"`
		Completed   *bool      `json:"completed"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}

	todo, err := tc.store.Get(ctx, id, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating todo"})
		return
	}
	if todo == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Todo not found"})
		return
	}

	if body.Text != nil && *body.Text != "" {
		todo.Text = *body.Text
	}
	if body.Description != nil {
		todo.Description = *body.Description
	}
	if body.Deadline != nil {
		todo.Deadline = body.Deadline
	}
	wasCompleted := todo.Completed
	if body.Completed != nil {
		todo.Completed = *body.Completed
	}

	if err := tc.store.Save(ctx, todo); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating todo"})
		return
	}
	tc.cache.InvalidateList(ctx, cache.KindTodos, userID)
	if !wasCompleted && todo.Completed {
		tc.events.Publish(ctx, events.Event{Type: "task_completed", UserID: userID, Subject: todo.Text, Actor: events.ActorUser})
	}
	c.JSON(http.StatusOK, todo)
}

// Delete removes a todo the user owns.
func (tc *TodoController) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.UserID(c)
	id := c.Param("id")

	todo, err := tc.store.Get(ctx, id, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting todo"})
		return
	}
	if todo == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Todo not found"})
		return
	}
	if err := tc.store.Delete(ctx, id, userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting todo"})
		return
	}
	tc.cache.InvalidateList(ctx, cache.KindTodos, userID)
	tc.events.Publish(ctx, events.Event{Type: "task_deleted", UserID: userID, Subject: todo.Text, Actor: events.ActorUser})
	c.JSON(http.StatusOK, gin.H{"message": "Todo deleted successfully"})
}
