package repository

import (
	"context"
	"sync"

	"github.com/NotBunBun/simulacion-roles/internal/model"
	"github.com/NotBunBun/simulacion-roles/internal/storage"
)

const coleccionTipos = "tipos"

// TipoRepository defines CRUD operations for Tipo.
type TipoRepository interface {
	Listar(ctx context.Context) ([]model.Tipo, error)
	ObtenerPorID(ctx context.Context, id string) (*model.Tipo, error)
	Crear(ctx context.Context, t *model.Tipo) error
	Actualizar(ctx context.Context, t *model.Tipo) error
	Eliminar(ctx context.Context, id string) (*model.Tipo, error)
}

type tipoRepository struct {
	store *storage.Store
	mu    sync.Mutex
}

func NewTipoRepository(store *storage.Store) TipoRepository {
	return &tipoRepository{store: store}
}

func (r *tipoRepository) cargar() ([]model.Tipo, error) {
	var list []model.Tipo
	if err := r.store.Read(coleccionTipos, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *tipoRepository) Listar(_ context.Context) ([]model.Tipo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cargar()
}

func (r *tipoRepository) ObtenerPorID(_ context.Context, id string) (*model.Tipo, error) {
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

func (r *tipoRepository) Crear(_ context.Context, t *model.Tipo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	list, err := r.cargar()
	if err != nil {
		return err
	}
	t.ID = nuevoID()
	t.CreatedAt = ahora()
	list = append(list, *t)
	return r.store.Write(coleccionTipos, list)
}

func (r *tipoRepository) Actualizar(_ context.Context, t *model.Tipo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	list, err := r.cargar()
	if err != nil {
		return err
	}
	for i := range list {
		if list[i].ID == t.ID {
			t.CreatedAt = list[i].CreatedAt
			list[i] = *t
			return r.store.Write(coleccionTipos, list)
		}
	}
	return ErrNotFound
}

func (r *tipoRepository) Eliminar(_ context.Context, id string) (*model.Tipo, error) {
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
			if err := r.store.Write(coleccionTipos, list); err != nil {
				return nil, err
			}
			return &removed, nil
		}
	}
	return nil, ErrNotFound
}
