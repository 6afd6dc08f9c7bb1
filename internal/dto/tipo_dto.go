package dto

import "time"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearTipoRequest struct {
	Nombre      string   `json:"nombre"      validate:"required"`
	Descripcion string   `json:"descripcion" validate:"required"`
	Propiedades []string `json:"propiedades" validate:"required"`
}

type ActualizarTipoRequest struct {
	Nombre      *string   `json:"nombre"`
	Descripcion *string   `json:"descripcion"`
	Propiedades *[]string `json:"propiedades"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type TipoResponse struct {
	ID          string    `json:"id"`
	Nombre      string    `json:"nombre"`
	Descripcion string    `json:"descripcion"`
	Propiedades []string  `json:"propiedades"`
	CreatedAt   time.Time `json:"createdAt"`
}
