package http

import "nanoclaw-bridges/internal/bookmark"

// intakeReq documents the minimum body shape; the raw bytes are what travels.
type intakeReq struct {
	URL string `json:"url" example:"https://example.com/article"`

	body []byte
}

func (r intakeReq) toInput() bookmark.IntakeInput {
	return bookmark.IntakeInput{Body: r.body}
}
