package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ListCriteria returns the criteria set for an event.
func (h *Handler) ListCriteria(c *gin.Context) {
	eventID, err := strconv.ParseInt(c.Param("eventId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	list, err := h.criteria.List(c.Request.Context(), eventID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"criteria": list})
}

type createCriteriaRequest struct {
	Name     string `json:"criteria_name"`
	MaxScore int    `json:"max_score"`
}

// CreateCriteria adds a criteria to an event.
func (h *Handler) CreateCriteria(c *gin.Context) {
	eventID, err := strconv.ParseInt(c.Param("eventId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	var req createCriteriaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.criteria.Create(c.Request.Context(), eventID, req.Name, req.MaxScore)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Criteria added successfully!",
		"criteria": gin.H{
			"id":        created.ID,
			"name":      created.Name,
			"max_score": created.MaxScore,
		},
	})
}

type updateCriteriaRequest struct {
	Name     string `json:"criteria_name"`
	MaxScore int    `json:"max_score"`
}

// UpdateCriteria replaces an existing criteria's name and max score and
// returns the full updated record.
func (h *Handler) UpdateCriteria(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("criteriaId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid criteria id"})
		return
	}

	var req updateCriteriaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.criteria.Update(c.Request.Context(), id, req.Name, req.MaxScore)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteCriteria removes a criteria.
func (h *Handler) DeleteCriteria(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("criteriaId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid criteria id"})
		return
	}

	if err := h.criteria.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Criteria deleted successfully!"})
}
