package dto

import "time"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// Shape-level tags only (presence of strings); business rules — lengths,
// charset, the tipoPropiedad enum — belong to internal/validation.

type CrearPropiedadRequest struct {
	Nombre        string `json:"nombre"        validate:"required"`
	TipoPropiedad string `json:"tipoPropiedad" validate:"required"`
}

type ActualizarPropiedadRequest struct {
	Nombre        *string `json:"nombre"`
	TipoPropiedad *string `json:"tipoPropiedad"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type PropiedadResponse struct {
	ID            string    `json:"id"`
	Nombre        string    `json:"nombre"`
	TipoPropiedad string    `json:"tipoPropiedad"`
	CreatedAt     time.Time `json:"createdAt"`
}
