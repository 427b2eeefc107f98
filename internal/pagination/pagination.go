package pagination

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// Page holds limit/offset query constraints for a list request.
type Page struct {
	Limit  int
	Offset int
}

// Parse reads limit/offset from the request query. Negative or malformed
// values fall back to the defaults; the limit is clamped to maxLimit.
func Parse(c *gin.Context, defaultLimit, maxLimit int) Page {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	return Page{Limit: limit, Offset: offset}
}

// Offsets holds the computed navigation offsets for a list response.
// Previous and Next are nil when the corresponding page does not exist.
type Offsets struct {
	First    int
	Previous *int
	Next     *int
	Last     int
}

// ComputeOffsets derives first/previous/next/last offsets from the current
// window and the total row count. The last page starts at the remainder of
// total by limit so it never repeats rows already served by next when total
// is an exact multiple of limit.
func ComputeOffsets(limit, offset int, total int64) Offsets {
	offs := Offsets{First: 0}
	if limit <= 0 {
		return offs
	}

	if offset > 0 {
		prev := offset - limit
		if prev < 0 {
			prev = 0
		}
		offs.Previous = &prev
	}

	if int64(offset+limit) < total {
		next := offset + limit
		offs.Next = &next
	}

	lastPageDiff := int(total) % limit
	if lastPageDiff == 0 {
		lastPageDiff = limit
	}
	last := int(total) - lastPageDiff
	if last < 0 {
		last = 0
	}
	offs.Last = last

	return offs
}

// Links holds first/previous/next/last navigation URLs for a list response.
type Links struct {
	First    string  `json:"first"`
	Previous *string `json:"previous,omitempty"`
	Next     *string `json:"next,omitempty"`
	Last     string  `json:"last"`
}

// BuildLinks renders the navigation offsets as URLs on the given base path.
func BuildLinks(basePath string, limit, offset int, total int64) Links {
	offs := ComputeOffsets(limit, offset, total)

	links := Links{
		First: pageURL(basePath, limit, offs.First),
		Last:  pageURL(basePath, limit, offs.Last),
	}
	if offs.Previous != nil {
		prev := pageURL(basePath, limit, *offs.Previous)
		links.Previous = &prev
	}
	if offs.Next != nil {
		next := pageURL(basePath, limit, *offs.Next)
		links.Next = &next
	}
	return links
}

// Header renders the links as an RFC 5988 style Link header value.
func (l Links) Header() string {
	parts := []string{
		fmt.Sprintf(`<%s>; rel="first"`, l.First),
	}
	if l.Previous != nil {
		parts = append(parts, fmt.Sprintf(`<%s>; rel="previous"`, *l.Previous))
	}
	if l.Next != nil {
		parts = append(parts, fmt.Sprintf(`<%s>; rel="next"`, *l.Next))
	}
	parts = append(parts, fmt.Sprintf(`<%s>; rel="last"`, l.Last))
	return strings.Join(parts, ", ")
}

func pageURL(basePath string, limit, offset int) string {
	return fmt.Sprintf("%s?limit=%d&offset=%d", basePath, limit, offset)
}
