package domain

import "time"

type Advertisement struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	City        string    `json:"city"`
	Images      []string  `json:"images,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	Status      string    `json:"status"`
	OwnerID     string    `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
}

type AdvertisementInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Price       float64  `json:"price"`
	City        string   `json:"city"`
	Tags        []string `json:"tags,omitempty"`
}

// AdvertisementImage es un archivo adjunto para crear un anuncio.
type AdvertisementImage struct {
	Filename string
	Content  []byte
}

type AdvertisementFilter struct {
	Search   string
	Category string
	City     string
	Tags     []string
	MinPrice float64
	MaxPrice float64
	Page     int
	Limit    int
}
