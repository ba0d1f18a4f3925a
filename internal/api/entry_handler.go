package api

import (
	"net/http"
	"strconv"

	"github.com/alenapavlenkko/nutridiary/internal/service"
	"github.com/gin-gonic/gin"
)

type EntryHandler struct {
	entryService *service.EntryService
}

func NewEntryHandler(entryService *service.EntryService) *EntryHandler {
	return &EntryHandler{entryService: entryService}
}

// ListByDate - записи дневника за день (?date=YYYY-MM-DD, по умолчанию сегодня)
func (h *EntryHandler) ListByDate(c *gin.Context) {
	userID := uint(0)
	if raw := c.Query("user_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "неверный ID пользователя"})
			return
		}
		userID = uint(parsed)
	}

	entries, err := h.entryService.ListEntriesByDate(userID, c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// Delete - удалить запись дневника
func (h *EntryHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.entryService.DeleteEntry(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// parseID - :id из пути как uint
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "неверный ID"})
		return 0, false
	}
	return uint(id), true
}
