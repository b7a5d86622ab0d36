package seo

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"lumiere_go/internal/repository"
)

// SitemapConfig Sitemap generation settings
type SitemapConfig struct {
	BaseURL  string
	CacheTTL time.Duration
	MaxURLs  int
}

// SitemapService Builds the sitemap from published articles and photo spots.
// The rendered XML is held in memory until the TTL passes.
type SitemapService struct {
	articleRepo repository.ArticleRepository
	spotRepo    repository.SpotRepository
	config      *SitemapConfig
	cache       []byte
	cacheMu     sync.RWMutex
	lastModify  time.Time
}

// NewSitemapService Create sitemap service
func NewSitemapService(articleRepo repository.ArticleRepository, spotRepo repository.SpotRepository, cfg *SitemapConfig) *SitemapService {
	return &SitemapService{
		articleRepo: articleRepo,
		spotRepo:    spotRepo,
		config:      cfg,
	}
}

// Get Rendered sitemap XML, cached
func (s *SitemapService) Get(ctx context.Context) ([]byte, error) {
	s.cacheMu.RLock()
	if s.cache != nil && time.Since(s.lastModify) < s.config.CacheTTL {
		defer s.cacheMu.RUnlock()
		return s.cache, nil
	}
	s.cacheMu.RUnlock()

	baseURL := s.config.BaseURL

	articles, err := s.articleRepo.PublishedSlugs(ctx, s.config.MaxURLs)
	if err != nil {
		return nil, fmt.Errorf("load published articles: %w", err)
	}

	spotBudget := s.config.MaxURLs - len(articles)
	if spotBudget < 0 {
		spotBudget = 0
	}
	spots, err := s.spotRepo.List(ctx, "", "", 0, spotBudget)
	if err != nil {
		return nil, fmt.Errorf("load spots: %w", err)
	}

	// XML is built by hand to avoid template auto-escaping
	var buf bytes.Buffer
	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
`)

	buf.WriteString("  <url>\n")
	buf.WriteString("    <loc>" + baseURL + "/</loc>\n")
	buf.WriteString("    <changefreq>daily</changefreq>\n")
	buf.WriteString("    <priority>1.0</priority>\n")
	buf.WriteString("  </url>\n")

	for _, a := range articles {
		buf.WriteString("  <url>\n")
		buf.WriteString("    <loc>")
		buf.WriteString(fmt.Sprintf("%s/articles/%s", baseURL, a.Slug))
		buf.WriteString("</loc>\n")
		if a.PublishedAt != nil {
			buf.WriteString("    <lastmod>")
			buf.WriteString(a.PublishedAt.Format("2006-01-02"))
			buf.WriteString("</lastmod>\n")
		}
		buf.WriteString("    <changefreq>weekly</changefreq>\n")
		buf.WriteString("    <priority>0.8</priority>\n")
		buf.WriteString("  </url>\n")
	}

	for _, sp := range spots {
		buf.WriteString("  <url>\n")
		buf.WriteString("    <loc>")
		buf.WriteString(fmt.Sprintf("%s/spots/%d", baseURL, sp.ID))
		buf.WriteString("</loc>\n")
		buf.WriteString("    <changefreq>monthly</changefreq>\n")
		buf.WriteString("    <priority>0.6</priority>\n")
		buf.WriteString("  </url>\n")
	}

	buf.WriteString("</urlset>")

	s.cacheMu.Lock()
	s.cache = buf.Bytes()
	s.lastModify = time.Now()
	s.cacheMu.Unlock()

	return buf.Bytes(), nil
}

// Handler Sitemap HTTP handler
type Handler struct {
	svc *SitemapService
}

// NewHandler Create sitemap handler
func NewHandler(svc *SitemapService) *Handler {
	return &Handler{svc: svc}
}

// Sitemap GET /sitemap.xml
func (h *Handler) Sitemap(c *gin.Context) {
	data, err := h.svc.Get(c.Request.Context())
	if err != nil {
		c.String(500, "internal server error")
		return
	}

	c.Header("Cache-Control", "public, max-age=300")
	c.Data(200, "application/xml", data)
}
