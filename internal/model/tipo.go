package model

import "time"

// Tipo is a product type. Propiedades holds Propiedad ids in display order;
// its resolved schema is exactly those definitions, in order, skipping ids
// that no longer resolve.
type Tipo struct {
	ID          string    `json:"id"`
	Nombre      string    `json:"nombre"`
	Descripcion string    `json:"descripcion"`
	Propiedades []string  `json:"propiedades"`
	CreatedAt   time.Time `json:"createdAt"`
}
