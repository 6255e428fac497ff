package controller

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"dotdo/internal/apperr"
	"dotdo/internal/middleware"
	"dotdo/pkg/logger"
)

// Responder handles one chat message and returns the reply text.
type Responder interface {
	Respond(ctx context.Context, userID, message string) (string, error)
}

// ChatController serves the /api/chatbot endpoint.
type ChatController struct {
	bot Responder
}

// NewChatController wires the chatbot endpoint.
func NewChatController(bot Responder) *ChatController {
	return &ChatController{bot: bot}
}

// Chat accepts {message} and returns {response}. Errors cross this
// boundary exactly once, as an apperr kind mapped to a transport status.
func (cc *ChatController) Chat(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.UserID(c)

	var body struct {
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
		return
	}

	reply, err := cc.bot.Respond(ctx, userID, body.Message)
	if err != nil {
		aerr := apperr.From(err)
		logger.Error(ctx, "Chatbot response failed", "error", err, "kind", string(aerr.Kind))
		resp := gin.H{"error": aerr.Message}
		if aerr.Detail != "" {
			resp["details"] = aerr.Detail
		}
		c.JSON(aerr.Status(), resp)
		return
	}
	c.JSON(http.StatusOK, gin.H{"response": reply})
}
