package domain

import "time"

type Meetup struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Category       string    `json:"category"`
	Location       string    `json:"location"`
	City           string    `json:"city"`
	StartsAt       time.Time `json:"starts_at"`
	EndsAt         time.Time `json:"ends_at,omitzero"`
	Capacity       int       `json:"capacity,omitempty"`
	AttendeesCount int       `json:"attendees_count"`
	IsJoined       bool      `json:"is_joined"`
	IsPaid         bool      `json:"is_paid"`
	Price          float64   `json:"price,omitempty"`
	ImageURL       string    `json:"image,omitempty"`
	Tags           []string  `json:"tags,omitempty"`
	OrganizerID    string    `json:"organizer_id"`
	OrganizerName  string    `json:"organizer_name,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type MeetupInput struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Location    string    `json:"location"`
	City        string    `json:"city"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at,omitzero"`
	Capacity    int       `json:"capacity,omitempty"`
	IsPaid      bool      `json:"is_paid"`
	Price       float64   `json:"price,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
}

type MeetupFilter struct {
	Search     string
	City       string
	Categories []string
	DateFrom   string
	DateTo     string
	IsPaid     *bool
	Page       int
	Limit      int
}
