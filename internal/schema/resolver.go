// Package schema resolves a Tipo's attribute schema: the ordered list of
// Propiedad definitions obtained by dereferencing the Tipo's id list
// against the current Propiedad collection.
package schema

import "github.com/NotBunBun/simulacion-roles/internal/model"

// ResolverEsquema returns the definitions for tipo.Propiedades, preserving
// the stored order. Ids that no longer resolve (the Propiedad was deleted)
// are silently skipped — tolerance policy, not an error. Pure function.
func ResolverEsquema(tipo *model.Tipo, todas []model.Propiedad) []model.Propiedad {
	if tipo == nil || len(tipo.Propiedades) == 0 {
		return nil
	}
	porID := make(map[string]model.Propiedad, len(todas))
	for _, p := range todas {
		porID[p.ID] = p
	}
	esquema := make([]model.Propiedad, 0, len(tipo.Propiedades))
	for _, id := range tipo.Propiedades {
		if def, ok := porID[id]; ok {
			esquema = append(esquema, def)
		}
	}
	return esquema
}

// ResolverValor looks up the producto's value for a resolved definition.
// The second return is false when the key is missing or the stored value
// is null. Used both for rendering and for completeness checks.
func ResolverValor(def model.Propiedad, producto *model.Producto) (model.Valor, bool) {
	if producto == nil || producto.PropiedadValores == nil {
		return model.Valor{}, false
	}
	v, ok := producto.PropiedadValores[def.ID]
	if !ok || v.Ausente() {
		return model.Valor{}, false
	}
	return v, true
}
