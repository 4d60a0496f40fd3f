package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/oretina/assettrack/pkg/apperror"
)

func parseID(c *gin.Context, param string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		return uuid.Nil, apperror.New(apperror.ErrInvalidInput, "invalid id format")
	}
	return id, nil
}

func parseQueryDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Time{}, apperror.New(apperror.ErrInvalidInput, "invalid date format, expected RFC 3339 or yyyy-mm-dd")
}
