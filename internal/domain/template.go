package domain

import "time"

type Template struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Category  string    `json:"category"`
	Subject   string    `json:"subject,omitempty"`
	Content   string    `json:"content"`
	IsActive  bool      `json:"is_active"`
	CreatedBy string    `json:"created_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type TemplateInput struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Category string `json:"category"`
	Subject  string `json:"subject,omitempty"`
	Content  string `json:"content"`
	IsActive bool   `json:"is_active"`
}

type TemplateFilter struct {
	Search     string
	Type       string
	Categories []string
	Active     *bool
	Page       int
	Limit      int
}
