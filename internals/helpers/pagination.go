package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Tafsirchy/VitalFlow-BackendNew/internals/apperr"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// PageParams carries size and zero-based page. Offset is size*page.
type PageParams struct {
	Size int
	Page int
}

func (p PageParams) Limit() int  { return p.Size }
func (p PageParams) Offset() int { return p.Size * p.Page }

// ParsePageParams reads ?size= and ?page= (zero-based). Absent values fall back to
// defaults; non-positive size or negative page is rejected rather than clamped.
func ParsePageParams(c *fiber.Ctx) (PageParams, error) {
	p := PageParams{Size: DefaultPageSize, Page: 0}

	if raw := strings.TrimSpace(c.Query("size")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return p, apperr.InvalidArgument("size must be a positive integer")
		}
		p.Size = n
	}
	if raw := strings.TrimSpace(c.Query("page")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return p, apperr.InvalidArgument("page must be a non-negative integer")
		}
		p.Page = n
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
	return p, nil
}

// Meta for paginated responses.
type Meta struct {
	Page       int   `json:"page"`
	Size       int   `json:"size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

func BuildMeta(total int64, p PageParams) Meta {
	pages := int(total) / p.Size
	if int(total)%p.Size != 0 {
		pages++
	}
	return Meta{
		Page:       p.Page,
		Size:       p.Size,
		Total:      total,
		TotalPages: pages,
	}
}
