package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/budgetview/budgetview-go/pkg/budgetview"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const reportsCacheKey = "dashd:reports"

type server struct {
	cfg    *Config
	store  *Store
	cache  *responseCache
	logger *slog.Logger
}

func (s *server) routes(r *gin.Engine) {
	r.GET("/healthz", s.health)

	api := r.Group("/api")
	api.GET("/reports", s.listReports)
	api.GET("/reports/:key", s.getReport)
	api.GET("/transactions/:id", s.getTransaction)
	api.POST("/refresh", s.refresh)
}

func (s *server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"refreshedAt": s.store.RefreshedAt(),
	})
}

func (s *server) listReports(c *gin.Context) {
	if body, ok := s.cache.get(c.Request.Context(), reportsCacheKey); ok {
		c.Data(http.StatusOK, "application/json", body)
		return
	}

	reports := s.store.Reports()
	summaries := make([]ReportSummary, 0, len(reports))
	for _, r := range reports {
		summaries = append(summaries, summarize(r))
	}

	body, err := json.Marshal(summaries)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	s.cache.set(c.Request.Context(), reportsCacheKey, body)
	c.Data(http.StatusOK, "application/json", body)
}

func (s *server) getReport(c *gin.Context) {
	report := s.store.Report(c.Param("key"))
	if report == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
		return
	}

	full := c.Query("full") == "1" || c.Query("full") == "true"
	view := buildReportView(report, s.cfg.RecentBuckets, full)

	// Optional single-granularity selection
	if tf := c.Query("timeframe"); tf != "" && report.Timed != nil {
		var filtered []TimeframeView
		for _, tfView := range view.Timeframes {
			if tfView.Timeframe == budgetview.Timeframe(tf) {
				filtered = append(filtered, tfView)
			}
		}
		view.Timeframes = filtered
	}

	c.JSON(http.StatusOK, view)
}

func (s *server) getTransaction(c *gin.Context) {
	t := s.store.Transaction(c.Param("id"))

	fields := []string{
		"date", "description", "amount", "category", "person",
		"accountName", "labels", "notes", "originalCategory",
		"originalDescription", "tags",
	}
	rendered := make(map[string]string, len(fields))
	for _, field := range fields {
		rendered[field] = t.Render(field)
	}

	c.JSON(http.StatusOK, gin.H{
		"id":              c.Param("id"),
		"transactionType": t.TransactionType,
		"fields":          rendered,
	})
}

func (s *server) refresh(c *gin.Context) {
	ctx, cancel := newRefreshContext(c)
	defer cancel()

	err := s.store.Refresh(ctx)
	s.cache.invalidate(c.Request.Context(), reportsCacheKey)

	if err != nil {
		// Partial state is fine; whichever document landed is already live
		c.JSON(http.StatusBadGateway, gin.H{
			"error":       err.Error(),
			"refreshedAt": s.store.RefreshedAt(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"refreshedAt": s.store.RefreshedAt()})
}

func newRefreshContext(c *gin.Context) (ctx context.Context, cancel context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), 30*time.Second)
}

// requestID tags every request for log correlation
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

// requestLogger logs one line per request
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"request_id", c.GetString("request_id"),
		)
	}
}
