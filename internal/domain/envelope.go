package domain

// Envelope es el formato común de todas las respuestas JSON del backend.
type Envelope[T any] struct {
	Status  bool   `json:"status"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}
