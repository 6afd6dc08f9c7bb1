package model

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/shopspring/decimal"
)

// ValorKind discriminates the variants of Valor.
type ValorKind int

const (
	ValorAusente ValorKind = iota // JSON null or missing key
	ValorTexto
	ValorNumero
	ValorCheck
)

// Valor is the tagged union behind each propiedadValores entry. The JSON
// scalar type selects the variant: string → texto, number → numero,
// bool → check, null → ausente. A fecha value travels as a texto variant;
// whether its content is a valid YYYY-MM-DD date is the validation engine's
// call, made against the resolved Propiedad definition.
type Valor struct {
	kind   ValorKind
	texto  string
	numero decimal.Decimal
	check  bool
}

func NuevoValorTexto(s string) Valor           { return Valor{kind: ValorTexto, texto: s} }
func NuevoValorNumero(d decimal.Decimal) Valor { return Valor{kind: ValorNumero, numero: d} }
func NuevoValorCheck(b bool) Valor             { return Valor{kind: ValorCheck, check: b} }

func (v Valor) Kind() ValorKind { return v.kind }
func (v Valor) Ausente() bool   { return v.kind == ValorAusente }

// Texto returns the string content for the texto variant.
func (v Valor) Texto() (string, bool) {
	return v.texto, v.kind == ValorTexto
}

func (v Valor) Numero() (decimal.Decimal, bool) {
	return v.numero, v.kind == ValorNumero
}

func (v Valor) Check() (bool, bool) {
	return v.check, v.kind == ValorCheck
}

func (v *Valor) UnmarshalJSON(data []byte) error {
	var raw interface{}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	switch t := raw.(type) {
	case nil:
		*v = Valor{}
	case string:
		*v = Valor{kind: ValorTexto, texto: t}
	case bool:
		*v = Valor{kind: ValorCheck, check: t}
	case json.Number:
		d, err := decimal.NewFromString(t.String())
		if err != nil {
			return err
		}
		*v = Valor{kind: ValorNumero, numero: d}
	default:
		return errors.New("valor de propiedad debe ser texto, número, booleano o null")
	}
	return nil
}

// MarshalJSON writes the native scalar back, keeping the persisted files
// shape-compatible with plain {id: string|number|bool} maps.
func (v Valor) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case ValorTexto:
		return json.Marshal(v.texto)
	case ValorNumero:
		// Unquoted: a quoted decimal would come back as a texto variant.
		return []byte(v.numero.String()), nil
	case ValorCheck:
		return json.Marshal(v.check)
	default:
		return []byte("null"), nil
	}
}
