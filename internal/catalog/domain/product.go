package domain

// Product is the backend-owned catalog entity. The client holds a read-only
// copy, replaced wholesale on every fetch.
type Product struct {
	ID       string  `json:"_id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Cost     float64 `json:"cost"`
	Rating   int     `json:"rating"`
	ImageURL string  `json:"image"`
}
