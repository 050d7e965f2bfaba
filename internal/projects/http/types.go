package http

import "github.com/aipage-top/aipage-backend/internal/projects/service"

// Handler bundles the dependencies for project HTTP endpoints.
type Handler struct {
	svc *service.ProjectService
}

func New(svc *service.ProjectService) *Handler {
	return &Handler{svc: svc}
}

type createReq struct {
	Title       string `json:"title"`
	HTMLContent string `json:"html_content"`
	IsPublic    bool   `json:"is_public"`
	UserID      string `json:"user_id"`
}

// updateReq distinguishes absent fields from zero values so PATCH only
// touches what the caller supplied.
type updateReq struct {
	Title       *string `json:"title"`
	HTMLContent *string `json:"html_content"`
	IsPublic    *bool   `json:"is_public"`
}
