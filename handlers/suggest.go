package handlers

import (
	"net/http"

	"tradecall/models"
	"tradecall/services/suggest"
	"tradecall/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SuggestHandler serves formatted-address suggestions for the booking form's
// address field.
type SuggestHandler struct {
	Source suggest.Source
	Logger *zap.Logger
}

func NewSuggestHandler(source suggest.Source, logger *zap.Logger) *SuggestHandler {
	return &SuggestHandler{Source: source, Logger: logger}
}

// GetSuggestions returns address candidates for a partial query. Lookup
// failures degrade to an empty list rather than an error; the form keeps
// working as a plain text field.
func (h *SuggestHandler) GetSuggestions(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing required query parameter: q", "")
		return
	}

	suggestions, err := h.Source.Suggestions(c.Request.Context(), query)
	if err != nil {
		h.Logger.Warn("suggestion lookup failed", zap.Error(err))
		suggestions = nil
	}
	if suggestions == nil {
		suggestions = []models.PlaceSuggestion{}
	}

	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}
