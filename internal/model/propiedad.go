package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// TipoPropiedad is the fixed value kind of an attribute definition.
type TipoPropiedad string

const (
	PropiedadTexto  TipoPropiedad = "texto"
	PropiedadNumero TipoPropiedad = "numero"
	PropiedadFecha  TipoPropiedad = "fecha"
	PropiedadCheck  TipoPropiedad = "check"
)

// Valida reports whether the tag is one of the four supported kinds.
func (t TipoPropiedad) Valida() bool {
	switch t {
	case PropiedadTexto, PropiedadNumero, PropiedadFecha, PropiedadCheck:
		return true
	}
	return false
}

// UnmarshalJSON rejects unknown tags at the boundary instead of letting them
// reach the resolution engine.
func (t *TipoPropiedad) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v := TipoPropiedad(s)
	if !v.Valida() {
		return fmt.Errorf("tipoPropiedad desconocido: %q", s)
	}
	*t = v
	return nil
}

// Propiedad is an attribute definition referenced by id from Tipo.
// Deleting one does not cascade: Tipo and Producto keep dangling ids,
// and resolution silently drops them.
type Propiedad struct {
	ID            string        `json:"id"`
	Nombre        string        `json:"nombre"`
	TipoPropiedad TipoPropiedad `json:"tipoPropiedad"`
	CreatedAt     time.Time     `json:"createdAt"`
}
