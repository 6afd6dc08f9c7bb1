// Package repository implements CRUD over the flat-file collections.
// Every mutating call does a read-modify-write of the whole collection
// under the repository's mutex — one mutex per collection serializes
// concurrent writers and removes the lost-update race of the naive
// read-then-overwrite cycle.
package repository

import (
	"errors"
	"time"

	"github.com/oklog/ulid/v2"
)

// ErrNotFound is returned when an id does not match any record in the
// collection. Handlers map it to HTTP 404.
var ErrNotFound = errors.New("registro no encontrado")

// nuevoID returns a ULID string: collision-safe and lexicographically
// ordered by creation time, so ids still sort in insertion order.
func nuevoID() string {
	return ulid.Make().String()
}

func ahora() time.Time {
	return time.Now().UTC()
}
