package httpx

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Pagination is the envelope block returned by paginated order listings.
// swagger:model
type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalOrders int64 `json:"totalOrders"`
	Limit       int   `json:"limit"`
}

func PageCount(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	pages := int(total) / limit
	if int(total)%limit != 0 {
		pages++
	}
	return pages
}

func envelope(msg string, payload gin.H) gin.H {
	out := gin.H{"success": true, "message": msg}
	for k, v := range payload {
		out[k] = v
	}
	return out
}

func OK(c *gin.Context, msg string, payload gin.H) {
	c.JSON(http.StatusOK, envelope(msg, payload))
}

func Created(c *gin.Context, msg string, payload gin.H) {
	c.JSON(http.StatusCreated, envelope(msg, payload))
}

func Fail(c *gin.Context, code int, msg string) {
	c.JSON(code, gin.H{"success": false, "message": msg})
}

// FailErrors reports request validation problems field by field.
func FailErrors(c *gin.Context, msg string, errs []string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": msg, "errors": errs})
}
