// Package validation is the business-rule engine for catalog submissions.
// It never returns an error and never panics: every check produces a
// Resultado with all failing fields reported together, so the caller can
// surface them at once. Only the repository layer propagates real failures
// (storage unavailable); malformed input here is just an invalid Resultado.
package validation

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/NotBunBun/simulacion-roles/internal/model"
	"github.com/NotBunBun/simulacion-roles/internal/schema"
)

var (
	reNombrePropiedad = regexp.MustCompile(`^[a-zA-Z0-9\s]+$`)
	reFecha           = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// Resultado aggregates field-scoped errors. Valido is true iff no field
// produced an error. Dynamic-field keys are the Propiedad ids.
type Resultado struct {
	Valido  bool
	Errores map[string]string
}

func nuevoResultado() *Resultado {
	return &Resultado{Errores: make(map[string]string)}
}

func (r *Resultado) agregar(campo, mensaje string) {
	if _, ya := r.Errores[campo]; !ya {
		r.Errores[campo] = mensaje
	}
}

func (r *Resultado) cerrar() Resultado {
	r.Valido = len(r.Errores) == 0
	return *r
}

// ValidarPropiedad checks an attribute definition candidate.
func ValidarPropiedad(p *model.Propiedad) Resultado {
	r := nuevoResultado()
	switch n := utf8.RuneCountInString(p.Nombre); {
	case n == 0:
		r.agregar("nombre", "El nombre es requerido")
	case n < 2:
		r.agregar("nombre", "El nombre debe tener al menos 2 caracteres")
	case n > 50:
		r.agregar("nombre", "El nombre no puede exceder 50 caracteres")
	case !reNombrePropiedad.MatchString(p.Nombre):
		r.agregar("nombre", "Solo letras, números y espacios permitidos")
	}
	switch {
	case p.TipoPropiedad == "":
		r.agregar("tipoPropiedad", "El tipo de propiedad es requerido")
	case !p.TipoPropiedad.Valida():
		r.agregar("tipoPropiedad", "Tipo inválido")
	}
	return r.cerrar()
}

// ValidarTipo checks a product-type candidate.
func ValidarTipo(t *model.Tipo) Resultado {
	r := nuevoResultado()
	switch n := utf8.RuneCountInString(t.Nombre); {
	case n == 0:
		r.agregar("nombre", "El nombre es requerido")
	case n < 2:
		r.agregar("nombre", "El nombre debe tener al menos 2 caracteres")
	case n > 50:
		r.agregar("nombre", "El nombre no puede exceder 50 caracteres")
	}
	switch n := utf8.RuneCountInString(t.Descripcion); {
	case n == 0:
		r.agregar("descripcion", "La descripción es requerida")
	case n < 5:
		r.agregar("descripcion", "La descripción debe tener al menos 5 caracteres")
	case n > 200:
		r.agregar("descripcion", "La descripción no puede exceder 200 caracteres")
	}
	if len(t.Propiedades) == 0 {
		r.agregar("propiedades", "Debe seleccionar al menos una propiedad")
	}
	return r.cerrar()
}

// ValidarProducto checks base fields plus one rule per resolved definition.
// tipo is the Tipo the candidate references, nil when it does not resolve;
// esquema is that Tipo's resolved schema. Entries in propiedadValores with
// no matching definition are ignored, mirroring the resolution engine's
// tolerance for stale ids.
func ValidarProducto(p *model.Producto, tipo *model.Tipo, esquema []model.Propiedad) Resultado {
	r := nuevoResultado()

	switch n := utf8.RuneCountInString(p.Nombre); {
	case n == 0:
		r.agregar("nombre", "El nombre es requerido")
	case n < 2:
		r.agregar("nombre", "El nombre debe tener al menos 2 caracteres")
	case n > 100:
		r.agregar("nombre", "El nombre no puede exceder 100 caracteres")
	}

	switch {
	case p.TipoID == "":
		r.agregar("tipoId", "El tipo es requerido")
	case tipo == nil:
		r.agregar("tipoId", "Debe seleccionar un tipo válido")
	}

	switch n := utf8.RuneCountInString(p.Descripcion); {
	case n == 0:
		r.agregar("descripcion", "La descripción es requerida")
	case n < 10:
		r.agregar("descripcion", "La descripción debe tener al menos 10 caracteres")
	case n > 500:
		r.agregar("descripcion", "La descripción no puede exceder 500 caracteres")
	}

	switch {
	case p.Precio.IsZero():
		r.agregar("precio", "El precio es requerido")
	case p.Precio.Sign() <= 0:
		r.agregar("precio", "El precio debe ser mayor a 0")
	case p.Precio.Exponent() < -2:
		r.agregar("precio", "El precio no puede tener más de 2 decimales")
	}

	if p.Stock < 0 {
		r.agregar("stock", "El stock no puede ser negativo")
	}

	for _, def := range esquema {
		validarValor(r, def, p)
	}

	return r.cerrar()
}

// validarValor applies the per-kind rule table for one resolved definition.
// Absent covers both a missing key and an explicit null — a check attribute
// left out is invalid, never an implicit false.
func validarValor(r *Resultado, def model.Propiedad, p *model.Producto) {
	valor, ok := schema.ResolverValor(def, p)
	if !ok {
		msg := fmt.Sprintf("%s es requerido", def.Nombre)
		if def.TipoPropiedad == model.PropiedadFecha {
			msg = fmt.Sprintf("%s es requerida", def.Nombre)
		}
		r.agregar(def.ID, msg)
		return
	}

	switch def.TipoPropiedad {
	case model.PropiedadTexto:
		if s, ok := valor.Texto(); !ok || s == "" {
			r.agregar(def.ID, fmt.Sprintf("%s es requerido", def.Nombre))
		}
	case model.PropiedadNumero:
		if _, ok := valor.Numero(); !ok {
			r.agregar(def.ID, fmt.Sprintf("%s debe ser un número", def.Nombre))
		}
	case model.PropiedadFecha:
		if s, ok := valor.Texto(); !ok || !reFecha.MatchString(s) {
			r.agregar(def.ID, fmt.Sprintf("%s debe tener formato YYYY-MM-DD", def.Nombre))
		}
	case model.PropiedadCheck:
		if _, ok := valor.Check(); !ok {
			r.agregar(def.ID, fmt.Sprintf("%s es requerido", def.Nombre))
		}
	}
}
