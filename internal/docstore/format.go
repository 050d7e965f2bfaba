package docstore

import "github.com/aipage-top/aipage-backend/internal/projects/domain"

// FormatDoc maps a raw store document onto the canonical project record.
// A non-existent handle yields nil rather than an error. The handle's ID
// always wins, even when the field bag happens to contain an "id" entry.
// Missing timestamp fields normalize to empty strings, not omissions.
func FormatDoc(d Doc) *domain.Project {
	if !d.Exists {
		return nil
	}

	f := d.Fields
	return &domain.Project{
		ID:          d.ID,
		Title:       stringField(f, "title"),
		HTMLContent: stringField(f, "html_content"),
		IsPublic:    boolField(f, "is_public"),
		UserID:      stringField(f, "user_id"),
		CreatedAt:   FormatTimestamp(f["created_at"]),
		UpdatedAt:   FormatTimestamp(f["updated_at"]),
	}
}

func stringField(f map[string]any, key string) string {
	if s, ok := f[key].(string); ok {
		return s
	}
	return ""
}

func boolField(f map[string]any, key string) bool {
	if b, ok := f[key].(bool); ok {
		return b
	}
	return false
}
