package entity

// MovementKind tipo de movimiento de inventario.
type MovementKind string

// Tipos de movimiento de inventario.
const (
	MovementEntrada MovementKind = "ENTRADA" // entrada (suma al stock)
	MovementSalida  MovementKind = "SALIDA"  // salida (resta del stock)
)

// Valid indica si el tipo de movimiento es conocido.
func (k MovementKind) Valid() bool {
	return k == MovementEntrada || k == MovementSalida
}

// StockMovement movimiento transitorio: se aplica y se descarta, no se persiste.
type StockMovement struct {
	AssetID  string
	Quantity int // siempre positiva; el signo lo define Kind
	Kind     MovementKind
}
