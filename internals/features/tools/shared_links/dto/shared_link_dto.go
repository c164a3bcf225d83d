package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"capacitajun_backend/internals/features/tools/shared_links/model"
)

type LinkRequest struct {
	Title       string  `json:"title" validate:"required,min=2,max=150"`
	URL         string  `json:"url" validate:"required,url,max=2000"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	Category    string  `json:"category" validate:"omitempty,max=60"`
}

func (r LinkRequest) Apply(m *model.SharedLinkModel) {
	m.SharedLinkTitle = strings.TrimSpace(r.Title)
	m.SharedLinkURL = strings.TrimSpace(r.URL)
	m.SharedLinkDescription = r.Description
	m.SharedLinkCategory = strings.ToLower(strings.TrimSpace(r.Category))
	if m.SharedLinkCategory == "" {
		m.SharedLinkCategory = "geral"
	}
}

type LinkResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Description *string   `json:"description,omitempty"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
}

func ToLinkResponse(m model.SharedLinkModel) LinkResponse {
	return LinkResponse{
		ID:          m.SharedLinkID,
		Title:       m.SharedLinkTitle,
		URL:         m.SharedLinkURL,
		Description: m.SharedLinkDescription,
		Category:    m.SharedLinkCategory,
		CreatedAt:   m.CreatedAt,
	}
}

func ToLinkResponses(ms []model.SharedLinkModel) []LinkResponse {
	out := make([]LinkResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToLinkResponse(m))
	}
	return out
}
