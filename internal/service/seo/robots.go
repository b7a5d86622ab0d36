package seo

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// RobotsService Serves robots.txt pointing crawlers at the sitemap.
// Admin and API surfaces are disallowed.
type RobotsService struct {
	body []byte
}

// NewRobotsService Create robots service
func NewRobotsService(baseURL string) *RobotsService {
	body := fmt.Sprintf(
		"User-agent: *\nAllow: /\nDisallow: /api/\nDisallow: /admin/\n\nSitemap: %s/sitemap.xml\n",
		baseURL)
	return &RobotsService{body: []byte(body)}
}

// Robots GET /robots.txt
func (s *RobotsService) Robots(c *gin.Context) {
	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(200, "text/plain; charset=utf-8", s.body)
}
