package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/homevista/realtor-api/internal/httperr"
	"github.com/homevista/realtor-api/internal/httpresp"
	"github.com/homevista/realtor-api/internal/models"
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

// List returns the audit trail, newest first, with optional action/entity
// and time-range filters. Admin-only (enforced at the route group).
func (h *AuditLogsHandler) List(c *gin.Context) {
	action := c.Query("action")
	entity := c.Query("entity")
	fromStr := c.Query("from")
	toStr := c.Query("to")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	offset := (page - 1) * limit

	q := h.db.Model(&models.AuditLog{})

	if action != "" {
		q = q.Where("action = ?", action)
	}
	if entity != "" {
		q = q.Where("entity = ?", entity)
	}
	if fromStr != "" {
		if from, err := time.Parse(time.RFC3339, fromStr); err == nil {
			q = q.Where("created_at >= ?", from)
		}
	}
	if toStr != "" {
		if to, err := time.Parse(time.RFC3339, toStr); err == nil {
			q = q.Where("created_at <= ?", to)
		}
	}

	var logs []models.AuditLog
	if err := q.
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error; err != nil {
		httperr.Internal(c, "failed_to_list_audit_logs", "Could not list audit logs.")
		return
	}

	httpresp.List(c, logs)
}
