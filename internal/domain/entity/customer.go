package entity

import "time"

// Customer representa un cliente del canal (anunciante o patrocinador).
type Customer struct {
	ID        string
	Name      string
	TaxID     string // RTN (Honduras)
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
