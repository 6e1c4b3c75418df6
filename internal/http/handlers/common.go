package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"marketplace/internal/domain"
	"marketplace/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		respondError(c, http.StatusBadRequest, "validation_error", "empty body", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", "invalid payload", err.Error())
		return false
	}
	return true
}

// caller returns the resolved caller, or the zero Caller for anonymous
// requests. Services reject where identity is actually required.
func caller(c *gin.Context) domain.Caller {
	cl, _ := middleware.GetCaller(c)
	return cl
}

// pathID parses a positive numeric :id path param.
func pathID(c *gin.Context, name string) (domain.ID, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "validation_error", "invalid id", nil)
		return 0, false
	}
	return domain.ID(id), true
}

// pageParams reads page/pageSize query values; bad values fall back to
// zero, which the pagination contract clamps to defaults.
func pageParams(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(strings.TrimSpace(c.Query("page")))
	pageSize, _ = strconv.Atoi(strings.TrimSpace(c.Query("pageSize")))
	return page, pageSize
}

func queryInt(c *gin.Context, name string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(c.Query(name)))
	return n
}

func queryInt64(c *gin.Context, name string) int64 {
	n, _ := strconv.ParseInt(strings.TrimSpace(c.Query(name)), 10, 64)
	return n
}
