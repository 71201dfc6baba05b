package dto

// CreateAssetRequest body para POST /api/assets.
type CreateAssetRequest struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// MovementRequest body para POST /api/assets/:id/movements.
// Kind: ENTRADA | SALIDA.
type MovementRequest struct {
	Quantity int    `json:"quantity"`
	Kind     string `json:"kind"`
}

// AssetResponse activo en respuestas.
type AssetResponse struct {
	ID        string `json:"id"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UpdatedAt string `json:"updated_at"`
}
