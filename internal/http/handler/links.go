package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/LuizHNR/NebuloHub-Mongo/internal/http/dto"
)

// collectionURL returns the absolute URL of the collection the matched route
// belongs to, e.g. https://api.example.com/api/v2/accounts.
func collectionURL(c *gin.Context, publicURL string) string {
	base := strings.TrimSuffix(publicURL, "/")
	if base == "" {
		scheme := "http"
		if c.Request.TLS != nil {
			scheme = "https"
		}
		if fwd := c.GetHeader("X-Forwarded-Proto"); fwd != "" {
			scheme = fwd
		}
		base = scheme + "://" + c.Request.Host
	}
	return base + strings.TrimSuffix(c.FullPath(), "/:id")
}

func bindPage(c *gin.Context) (dto.PageQuery, bool) {
	var q dto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return q, false
	}
	return q, true
}
