package domain

import "time"

// Session is one visitor's stored filter state on the portfolio page.
type Session struct {
	ID        string           `json:"id"`
	Selection map[Facet]string `json:"selection"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}
