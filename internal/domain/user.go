package domain

import "time"

type User struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	Username    string     `json:"username,omitempty"`
	Phone       string     `json:"phone,omitempty"`
	Bio         string     `json:"bio,omitempty"`
	AvatarURL   string     `json:"avatar,omitempty"`
	City        string     `json:"city,omitempty"`
	Interests   []string   `json:"interests,omitempty"`
	Role        string     `json:"role,omitempty"`
	IsVerified  bool       `json:"is_verified"`
	Followers   int        `json:"followers_count,omitempty"`
	Following   int        `json:"following_count,omitempty"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// UpdateProfileInput contiene solo los campos que el usuario puede editar.
type UpdateProfileInput struct {
	Name      string   `json:"name,omitempty"`
	Username  string   `json:"username,omitempty"`
	Phone     string   `json:"phone,omitempty"`
	Bio       string   `json:"bio,omitempty"`
	City      string   `json:"city,omitempty"`
	Interests []string `json:"interests,omitempty"`
}

type UserFilter struct {
	Search    string
	City      string
	Interests []string
	Page      int
	Limit     int
}
