package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetAdminID extracts the admin ID from the Gin context
func GetAdminID(c *gin.Context) *uuid.UUID {
	adminIDVal, exists := c.Get("admin_id")
	if !exists {
		return nil
	}
	adminID, ok := adminIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &adminID
}

// GetAdminEmail extracts the admin email from the Gin context
func GetAdminEmail(c *gin.Context) string {
	email, exists := c.Get("admin_email")
	if !exists {
		return ""
	}
	return email.(string)
}

// parseIDParam parses a UUID path parameter
func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// parseDate parses a YYYY-MM-DD date string
func parseDate(value string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// parseDatePtr parses an optional YYYY-MM-DD date string
func parseDatePtr(value *string) *time.Time {
	if value == nil || *value == "" {
		return nil
	}
	t, ok := parseDate(*value)
	if !ok {
		return nil
	}
	return &t
}
