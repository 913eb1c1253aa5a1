// Package server exposes the answer pipeline over HTTP. The handlers
// carry no domain logic; they bind, delegate and translate failures.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"dharmaqa/internal/domain"
)

// EmptyQuestionMessage is returned when the request carries no usable
// question text.
const EmptyQuestionMessage = "Please ask a valid question."

// Answerer is the server-facing subset of the answer pipeline.
type Answerer interface {
	Answer(ctx context.Context, question string) (*domain.Answer, error)
}

// AskRequest is the body of POST /ask.
type AskRequest struct {
	Question string `json:"question"`
}

// NewRouter builds the HTTP routing table around the pipeline.
func NewRouter(answerer Answerer, logger *slog.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.POST("/ask", handleAsk(answerer, logger))
	return router
}

func handleAsk(answerer Answerer, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AskRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Error("failed to bind ask request", "error", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		question := strings.TrimSpace(req.Question)
		if question == "" {
			c.JSON(http.StatusOK, gin.H{"answer": EmptyQuestionMessage})
			return
		}

		ans, err := answerer.Answer(c.Request.Context(), question)
		if err != nil {
			logger.Error("answer pipeline failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		logger.Info("question answered",
			"type", ans.Type,
			"confidence", ans.Confidence,
			"question_len", len(question),
		)
		c.JSON(http.StatusOK, ans)
	}
}
