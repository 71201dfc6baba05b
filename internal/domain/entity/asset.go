package entity

import (
	"math"
	"time"
)

// MaxAssetQuantity límite de existencias de un activo (columna INTEGER de PostgreSQL).
const MaxAssetQuantity = math.MaxInt32

// Asset representa un equipo o insumo del inventario del canal (cámaras, micrófonos, cables...).
// Quantity solo cambia mediante movimientos (ver domain/inventory).
type Asset struct {
	ID        string
	Code      string // código único del activo
	Name      string
	Quantity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}
