// Package service holds the business layer: it glues repositories, the
// resolution engine and the validation engine together. Create and update
// operations always run full validation; deletes are unconditional.
package service

// ErrValidacion carries the validation engine's field map across the
// service boundary. Handlers unwrap it with errors.As and answer 422.
type ErrValidacion struct {
	Campos map[string]string
}

func (e *ErrValidacion) Error() string { return "error de validación" }
