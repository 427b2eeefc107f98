package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeOffsets(t *testing.T) {
	t.Run("first page of ten rows", func(t *testing.T) {
		offs := ComputeOffsets(4, 0, 10)

		assert.Equal(t, 0, offs.First)
		assert.Nil(t, offs.Previous)
		require.NotNil(t, offs.Next)
		assert.Equal(t, 4, *offs.Next)
		assert.Equal(t, 8, offs.Last)
	})

	t.Run("exact multiple does not duplicate the final page", func(t *testing.T) {
		offs := ComputeOffsets(4, 4, 8)

		assert.Nil(t, offs.Next)
		require.NotNil(t, offs.Previous)
		assert.Equal(t, 0, *offs.Previous)
		assert.Equal(t, 4, offs.Last)
	})

	t.Run("middle page", func(t *testing.T) {
		offs := ComputeOffsets(4, 4, 10)

		require.NotNil(t, offs.Previous)
		assert.Equal(t, 0, *offs.Previous)
		require.NotNil(t, offs.Next)
		assert.Equal(t, 8, *offs.Next)
		assert.Equal(t, 8, offs.Last)
	})

	t.Run("previous never goes negative", func(t *testing.T) {
		offs := ComputeOffsets(10, 4, 20)

		require.NotNil(t, offs.Previous)
		assert.Equal(t, 0, *offs.Previous)
	})

	t.Run("empty result set", func(t *testing.T) {
		offs := ComputeOffsets(4, 0, 0)

		assert.Nil(t, offs.Previous)
		assert.Nil(t, offs.Next)
		assert.Equal(t, 0, offs.Last)
	})

	t.Run("zero limit yields no navigation", func(t *testing.T) {
		offs := ComputeOffsets(0, 0, 10)

		assert.Nil(t, offs.Previous)
		assert.Nil(t, offs.Next)
		assert.Equal(t, 0, offs.Last)
	})
}

func TestBuildLinks(t *testing.T) {
	links := BuildLinks("/api/v1/items", 4, 4, 10)

	assert.Equal(t, "/api/v1/items?limit=4&offset=0", links.First)
	require.NotNil(t, links.Previous)
	assert.Equal(t, "/api/v1/items?limit=4&offset=0", *links.Previous)
	require.NotNil(t, links.Next)
	assert.Equal(t, "/api/v1/items?limit=4&offset=8", *links.Next)
	assert.Equal(t, "/api/v1/items?limit=4&offset=8", links.Last)
}

func TestLinksHeader(t *testing.T) {
	t.Run("all four links", func(t *testing.T) {
		links := BuildLinks("/api/v1/items", 4, 4, 10)
		header := links.Header()

		assert.Contains(t, header, `</api/v1/items?limit=4&offset=0>; rel="first"`)
		assert.Contains(t, header, `rel="previous"`)
		assert.Contains(t, header, `rel="next"`)
		assert.Contains(t, header, `rel="last"`)
	})

	t.Run("first page omits previous", func(t *testing.T) {
		links := BuildLinks("/api/v1/items", 4, 0, 10)
		header := links.Header()

		assert.NotContains(t, header, `rel="previous"`)
		assert.Contains(t, header, `rel="next"`)
	})
}

func newTestContext(t *testing.T, query string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/v1/items"+query, nil)
	return c
}

func TestParse(t *testing.T) {
	t.Run("defaults when absent", func(t *testing.T) {
		page := Parse(newTestContext(t, ""), 50, 200)

		assert.Equal(t, 50, page.Limit)
		assert.Equal(t, 0, page.Offset)
	})

	t.Run("explicit values", func(t *testing.T) {
		page := Parse(newTestContext(t, "?limit=10&offset=30"), 50, 200)

		assert.Equal(t, 10, page.Limit)
		assert.Equal(t, 30, page.Offset)
	})

	t.Run("limit clamped to the configured maximum", func(t *testing.T) {
		page := Parse(newTestContext(t, "?limit=100000"), 50, 200)

		assert.Equal(t, 200, page.Limit)
	})

	t.Run("malformed and negative values fall back", func(t *testing.T) {
		page := Parse(newTestContext(t, "?limit=abc&offset=-3"), 50, 200)

		assert.Equal(t, 50, page.Limit)
		assert.Equal(t, 0, page.Offset)
	})
}
