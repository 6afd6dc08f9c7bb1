package dto

import (
	"time"

	"github.com/NotBunBun/simulacion-roles/internal/model"

	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

// Precio deliberately carries no `required` tag: decimal zero and an absent
// field are indistinguishable after binding, and the validation engine's
// "mayor a 0" rule covers both.

type CrearProductoRequest struct {
	Nombre           string                 `json:"nombre"           validate:"required"`
	TipoID           string                 `json:"tipoId"           validate:"required"`
	Descripcion      string                 `json:"descripcion"      validate:"required"`
	Precio           decimal.Decimal        `json:"precio"`
	Stock            int                    `json:"stock"            validate:"min=0"`
	PropiedadValores map[string]model.Valor `json:"propiedadValores" validate:"required"`
}

type ActualizarProductoRequest struct {
	Nombre           *string                 `json:"nombre"`
	TipoID           *string                 `json:"tipoId"`
	Descripcion      *string                 `json:"descripcion"`
	Precio           *decimal.Decimal        `json:"precio"`
	Stock            *int                    `json:"stock"`
	PropiedadValores *map[string]model.Valor `json:"propiedadValores"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductoResponse struct {
	ID               string                 `json:"id"`
	Nombre           string                 `json:"nombre"`
	TipoID           string                 `json:"tipoId"`
	Descripcion      string                 `json:"descripcion"`
	Precio           decimal.Decimal        `json:"precio"`
	Stock            int                    `json:"stock"`
	PropiedadValores map[string]model.Valor `json:"propiedadValores"`
	CreatedAt        time.Time              `json:"createdAt"`
}

// CampoResuelto pairs a resolved definition with the producto's value for
// it, in the Tipo's display order. Valor is null when the value is absent.
type CampoResuelto struct {
	PropiedadID   string       `json:"propiedadId"`
	Nombre        string       `json:"nombre"`
	TipoPropiedad string       `json:"tipoPropiedad"`
	Valor         *model.Valor `json:"valor"`
}
