package docstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDoc(t *testing.T) {
	now := time.Date(2024, 6, 15, 8, 0, 0, 0, time.UTC)

	t.Run("non-existent handle yields nil", func(t *testing.T) {
		assert.Nil(t, FormatDoc(Doc{ID: "gone", Exists: false}))
	})

	t.Run("maps a full field bag", func(t *testing.T) {
		p := FormatDoc(Doc{
			ID:     "abc",
			Exists: true,
			Fields: map[string]any{
				"title":        "My Page",
				"html_content": "<h1>hi</h1>",
				"is_public":    true,
				"user_id":      "u-1",
				"created_at":   now,
				"updated_at":   now.Add(time.Hour),
			},
		})
		require.NotNil(t, p)
		assert.Equal(t, "abc", p.ID)
		assert.Equal(t, "My Page", p.Title)
		assert.Equal(t, "<h1>hi</h1>", p.HTMLContent)
		assert.True(t, p.IsPublic)
		assert.Equal(t, "u-1", p.UserID)
		assert.Equal(t, "2024-06-15T08:00:00Z", p.CreatedAt)
		assert.Equal(t, "2024-06-15T09:00:00Z", p.UpdatedAt)
	})

	t.Run("handle id wins over field bag id", func(t *testing.T) {
		p := FormatDoc(Doc{
			ID:     "handle-id",
			Exists: true,
			Fields: map[string]any{"id": "rogue-id", "title": "t"},
		})
		require.NotNil(t, p)
		assert.Equal(t, "handle-id", p.ID)
	})

	t.Run("missing fields default, timestamps to empty string", func(t *testing.T) {
		p := FormatDoc(Doc{ID: "x", Exists: true, Fields: map[string]any{}})
		require.NotNil(t, p)
		assert.Equal(t, "", p.Title)
		assert.Equal(t, "", p.HTMLContent)
		assert.False(t, p.IsPublic)
		assert.Equal(t, "", p.UserID)
		assert.Equal(t, "", p.CreatedAt)
		assert.Equal(t, "", p.UpdatedAt)
	})

	t.Run("non-boolean is_public falls back to false", func(t *testing.T) {
		p := FormatDoc(Doc{ID: "x", Exists: true, Fields: map[string]any{"is_public": "yes"}})
		require.NotNil(t, p)
		assert.False(t, p.IsPublic)
	})
}
