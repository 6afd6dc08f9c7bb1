package model

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Precio must serialize as a JSON number, keeping the collection files
	// shape-compatible with clients that expect plain numerics.
	decimal.MarshalJSONWithoutQuotes = true
}

// Producto is a catalog item. TipoID may point at a Tipo that was deleted
// later; that is treated as "no schema", not an integrity error.
// PropiedadValores maps Propiedad id → valor; keys that no longer resolve
// against the Tipo's schema are kept as-is and ignored by validation.
type Producto struct {
	ID               string           `json:"id"`
	Nombre           string           `json:"nombre"`
	TipoID           string           `json:"tipoId"`
	Descripcion      string           `json:"descripcion"`
	Precio           decimal.Decimal  `json:"precio"`
	Stock            int              `json:"stock"`
	PropiedadValores map[string]Valor `json:"propiedadValores"`
	CreatedAt        time.Time        `json:"createdAt"`
}
