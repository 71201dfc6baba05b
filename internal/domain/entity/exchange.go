package entity

import "time"

// Exchange representa un canje: acuerdo de intercambio de pauta publicitaria por bienes
// o servicios de un negocio.
type Exchange struct {
	ID          string
	Company     string
	Description string
	ApplyTax    bool       // si el canje causa ISV
	Active      bool
	StartDate   *time.Time // opcional
	EndDate     *time.Time // opcional
	CreatedAt   time.Time
}
