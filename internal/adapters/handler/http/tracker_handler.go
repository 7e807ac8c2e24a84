package http

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-habit-grid/internal/adapters/handler/http/middleware"
	"github.com/comitanigiacomo/kanso-habit-grid/internal/core/domain"
	"github.com/comitanigiacomo/kanso-habit-grid/internal/core/services"
)

type TrackerHandler struct {
	svc *services.TrackerService
}

func NewTrackerHandler(svc *services.TrackerService) *TrackerHandler {
	return &TrackerHandler{
		svc: svc,
	}
}

type applyEditsRequest struct {
	Flags []bool `json:"flags" binding:"required"`
}

type setCompletionRequest struct {
	Habit     string `json:"habit" binding:"required"`
	Completed *bool  `json:"completed" binding:"required"`
}

type monthOption struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

func (h *TrackerHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/catalog", h.Catalog)

	months := router.Group("/months/:year/:month")
	{
		months.GET("", h.RenderMonth)
		months.PUT("", h.ApplyEdits)
		months.GET("/stats", h.Stats)
		months.PUT("/days/:day", h.SetCompletion)
	}
}

func (h *TrackerHandler) Catalog(c *gin.Context) {
	catalog := h.svc.Catalog()

	months := make([]monthOption, 0, domain.MaxMonth)
	for m := domain.MinMonth; m <= domain.MaxMonth; m++ {
		months = append(months, monthOption{Value: m, Label: time.Month(m).String()})
	}

	c.JSON(http.StatusOK, gin.H{
		"habits": catalog.Names(),
		"years":  catalog.Years().Years(),
		"months": months,
	})
}

func (h *TrackerHandler) RenderMonth(c *gin.Context) {
	year, month, ok := parseYearMonth(c)
	if !ok {
		return
	}

	view, stats, err := h.svc.RenderMonth(c.Request.Context(), year, month)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"view":  view,
		"stats": stats,
	})
}

func (h *TrackerHandler) Stats(c *gin.Context) {
	year, month, ok := parseYearMonth(c)
	if !ok {
		return
	}

	stats, err := h.svc.MonthStats(c.Request.Context(), year, month)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *TrackerHandler) ApplyEdits(c *gin.Context) {
	year, month, ok := parseYearMonth(c)
	if !ok {
		return
	}

	var req applyEditsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	stats, err := h.svc.ApplyEdits(c.Request.Context(), year, month, req.Flags)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *TrackerHandler) SetCompletion(c *gin.Context) {
	year, month, ok := parseYearMonth(c)
	if !ok {
		return
	}

	day, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "day must be a number"})
		return
	}

	var req setCompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	stats, err := h.svc.SetCompletion(c.Request.Context(), services.SetCompletionInput{
		Habit:     req.Habit,
		Year:      year,
		Month:     month,
		Day:       day,
		Completed: *req.Completed,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func parseYearMonth(c *gin.Context) (int, int, bool) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year must be a number"})
		return 0, 0, false
	}

	month, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month must be a number"})
		return 0, 0, false
	}

	return year, month, true
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})

	case errors.Is(err, domain.ErrRecordWriteFailed):
		log.Printf("[ERROR] request %s: %s %s write failed: %v",
			middleware.GetRequestID(c), c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to save habit data",
			"message": "your changes were not saved, please retry",
		})

	case errors.Is(err, domain.ErrRecordReadFailed):
		log.Printf("[ERROR] request %s: %s %s read failed: %v",
			middleware.GetRequestID(c), c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load habit data"})

	default:
		log.Printf("[ERROR] request %s: %s %s failed: %v",
			middleware.GetRequestID(c), c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
