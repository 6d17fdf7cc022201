package models

// ContentBlock is one unit of a completion's payload.
type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}
