package domain

// Entry is one line of the server-owned cart record. The backend is
// authoritative on whether a zero quantity means "absent".
type Entry struct {
	ProductID string `json:"productId"`
	Qty       int    `json:"qty"`
}
