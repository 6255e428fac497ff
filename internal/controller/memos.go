package controller

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/singleflight"

	"dotdo/internal/cache"
	"dotdo/internal/events"
	"dotdo/internal/middleware"
	"dotdo/internal/models"
	"dotdo/internal/repository"
	"dotdo/pkg/logger"
)

// MemoController serves the /api/memos REST endpoints.
type MemoController struct {
	store  *repository.MemoStore
	cache  *cache.Cache
	events *events.Publisher
	group  singleflight.Group
}

// NewMemoController wires the memo endpoints. cache and events may be nil.
func NewMemoController(store *repository.MemoStore, c *cache.Cache, ev *events.Publisher) *MemoController {
	return &MemoController{store: store, cache: c, events: ev}
}

// List returns the user's memos, newest first, cache-first as raw JSON.
func (mc *MemoController) List(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.UserID(c)

	if b, ok := mc.cache.GetList(ctx, cache.KindMemos, userID); ok {
		c.Data(http.StatusOK, "application/json", b)
		return
	}
	v, err, _ := mc.group.Do(userID, func() (interface{}, error) {
		memos, err := mc.store.FindByUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		if memos == nil {
			memos = []models.Memo{}
		}
		return json.Marshal(memos)
	})
	if err != nil {
		logger.Error(ctx, "List memos failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching memos"})
		return
	}
	b := v.([]byte)
	c.Data(http.StatusOK, "application/json", b)
	mc.cache.SetListAsync(cache.KindMemos, userID, b)
}

type memoRequest struct {
	Content   *string  `json:"content"`
	X         *float64 `json:"x"`
	Y         *float64 `json:"y"`
	Width     *float64 `json:"width"`
	Height    *float64 `json:"height"`
	Color     *string  `json:"color"`
	Completed *bool    `json:"completed"`
	Image     *string  `json:"image"`
}

// Create inserts a new memo with board-placement defaults. Content may
// be empty (a blank sticky note); a missing color gets a random palette
// pick.
func (mc *MemoController) Create(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.UserID(c)
	var body memoRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}

	memo := &models.Memo{
		UserID: userID,
		X:      models.DefaultMemoX,
		Y:      models.DefaultMemoY,
		Width:  models.DefaultMemoWidth,
		Height: models.DefaultMemoHeight,
		Color:  models.RandomMemoColor(),
		Image:  body.Image,
	}
	if body.Content != nil {
		memo.Content = *body.Content
	}
	if body.X != nil {
		memo.X = *body.X
	}
	if body.Y != nil {
		memo.Y = *body.Y
	}
	if body.Width != nil {
		memo.Width = *body.Width
	}
	if body.Height != nil {
		memo.Height = *body.Height
	}
	if body.Color != nil && *body.Color != "" {
		memo.Color = *body.Color
	}
	if body.Completed != nil {
		memo.Completed = *body.Completed
	}

	if err := mc.store.Create(ctx, memo); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating memo"})
		return
	}
	mc.cache.InvalidateList(ctx, cache.KindMemos, userID)
	mc.events.Publish(ctx, events.Event{Type: "memo_created", UserID: userID, Actor: events.ActorUser})
	c.JSON(http.StatusCreated, memo)
}

// Update applies a partial update to a memo the user owns.
func (mc *MemoController) Update(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.UserID(c)
	id := c.Param("id")

	var body memoRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}

	memo, err := mc.store.Get(ctx, id, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating memo"})
		return
	}
	if memo == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Memo not found"})
		return
	}

	if body.Content != nil {
		memo.Content = *body.Content
	}
	if body.X != nil {
		memo.X = *body.X
	}
	if body.Y != nil {
		memo.Y = *body.Y
	}
	if body.Width != nil {
		memo.Width = *body.Width
	}
	if body.Height != nil {
		memo.Height = *body.Height
	}
	if body.Color != nil {
		memo.Color = *body.Color
	}
	if body.Completed != nil {
		memo.Completed = *body.Completed
	}
	if body.Image != nil {
		memo.Image = body.Image
	}

	if err := mc.store.Save(ctx, memo); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating memo"})
		return
	}
	mc.cache.InvalidateList(ctx, cache.KindMemos, userID)
	c.JSON(http.StatusOK, memo)
}

// Delete removes a memo the user owns.
func (mc *MemoController) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.UserID(c)
	id := c.Param("id")

	memo, err := mc.store.Get(ctx, id, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting memo"})
		return
	}
	if memo == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Memo not found"})
		return
	}
	if err := mc.store.Delete(ctx, id, userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting memo"})
		return
	}
	mc.cache.InvalidateList(ctx, cache.KindMemos, userID)
	c.JSON(http.StatusOK, gin.H{"message": "Memo deleted successfully"})
}
