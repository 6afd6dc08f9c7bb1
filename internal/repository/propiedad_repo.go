package repository

import (
	"context"
	"sync"

	"github.com/NotBunBun/simulacion-roles/internal/model"
	"github.com/NotBunBun/simulacion-roles/internal/storage"
)

const coleccionPropiedades = "propiedades"

// PropiedadRepository defines CRUD operations for Propiedad.
type PropiedadRepository interface {
	Listar(ctx context.Context) ([]model.Propiedad, error)
	ObtenerPorID(ctx context.Context, id string) (*model.Propiedad, error)
	Crear(ctx context.Context, p *model.Propiedad) error
	Actualizar(ctx context.Context, p *model.Propiedad) error
	Eliminar(ctx context.Context, id string) (*model.Propiedad, error)
}

type propiedadRepository struct {
	store *storage.Store
	mu    sync.Mutex
}

func NewPropiedadRepository(store *storage.Store) PropiedadRepository {
	return &propiedadRepository{store: store}
}

func (r *propiedadRepository) cargar() ([]model.Propiedad, error) {
	var list []model.Propiedad
	if err := r.store.Read(coleccionPropiedades, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *propiedadRepository) Listar(_ context.Context) ([]model.Propiedad, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cargar()
}

func (r *propiedadRepository) ObtenerPorID(_ context.Context, id string) (*model.Propiedad, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list, err := r.cargar()
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			return &list[i], nil
		}
	}
	return nil, ErrNotFound
}

// Crear assigns id and createdAt, appends and persists the full collection.
func (r *propiedadRepository) Crear(_ context.Context, p *model.Propiedad) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	list, err := r.cargar()
	if err != nil {
		return err
	}
	p.ID = nuevoID()
	p.CreatedAt = ahora()
	list = append(list, *p)
	return r.store.Write(coleccionPropiedades, list)
}

// Actualizar replaces the stored record by id, preserving createdAt.
func (r *propiedadRepository) Actualizar(_ context.Context, p *model.Propiedad) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	list, err := r.cargar()
	if err != nil {
		return err
	}
	for i := range list {
		if list[i].ID == p.ID {
			p.CreatedAt = list[i].CreatedAt
			list[i] = *p
			return r.store.Write(coleccionPropiedades, list)
		}
	}
	return ErrNotFound
}

// Eliminar removes unconditionally: references held by Tipo or Producto are
// not checked, the resolution engine tolerates the dangling ids.
func (r *propiedadRepository) Eliminar(_ context.Context, id string) (*model.Propiedad, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list, err := r.cargar()
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			removed := list[i]
			list = append(list[:i], list[i+1:]...)
			if err := r.store.Write(coleccionPropiedades, list); err != nil {
				return nil, err
			}
			return &removed, nil
		}
	}
	return nil, ErrNotFound
}
