package domain

// Project represents a single shareable HTML page.
// It is intentionally storage-agnostic and used across repository and HTTP layers.
// Timestamps are canonical ISO-8601 UTC strings as produced by the document
// formatter, regardless of which store backend answered.
type Project struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	HTMLContent string `json:"html_content"`
	IsPublic    bool   `json:"is_public"`
	UserID      string `json:"user_id,omitempty"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}
