package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"moodflow/internal/common"
)

func (s *Server) listEntries(c *gin.Context) {
	user := currentUserFromContext(c)

	list, err := s.journal.ListEntries(c.Request.Context(), user.ID)
	if err != nil {
		s.log.Error(c.Request.Context(), "listing entries failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch entries"})
		return
	}

	c.JSON(http.StatusOK, list)
}

type createEntryInput struct {
	Text string `json:"text"`
}

func (s *Server) createEntry(c *gin.Context) {
	user := currentUserFromContext(c)

	var input createEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	entry, err := s.journal.CreateEntry(c.Request.Context(), user.ID, input.Text)
	if err != nil {
		if errors.Is(err, common.ErrorEmptyEntry) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Text is required"})
			return
		}
		s.log.Error(c.Request.Context(), "creating entry failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create entry"})
		return
	}

	c.JSON(http.StatusOK, entry)
}
