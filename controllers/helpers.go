package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// parseIDParam reads a numeric path parameter. A non-numeric id never
// matched a route in the old API, so it answers 404 rather than 400.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Not found"})
		return 0, false
	}
	return uint(id), true
}

// isDuplicateErr reports whether err is a primary key or unique index
// violation. Covers the Postgres and SQLite drivers.
func isDuplicateErr(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "23505") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
