package repository

import (
	"context"
	"sync"

	"github.com/NotBunBun/simulacion-roles/internal/model"
	"github.com/NotBunBun/simulacion-roles/internal/storage"
)

const coleccionProductos = "productos"

// ProductoRepository defines CRUD operations for Producto.
type ProductoRepository interface {
	Listar(ctx context.Context) ([]model.Producto, error)
	ObtenerPorID(ctx context.Context, id string) (*model.Producto, error)
	Crear(ctx context.Context, p *model.Producto) error
	Actualizar(ctx context.Context, p *model.Producto) error
	Eliminar(ctx context.Context, id string) (*model.Producto, error)
}

type productoRepository struct {
	store *storage.Store
	mu    sync.Mutex
}

func NewProductoRepository(store *storage.Store) ProductoRepository {
	return &productoRepository{store: store}
}

func (r *productoRepository) cargar() ([]model.Producto, error) {
	var list []model.Producto
	if err := r.store.Read(coleccionProductos, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *productoRepository) Listar(_ context.Context) ([]model.Producto, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cargar()
}

func (r *productoRepository) ObtenerPorID(_ context.Context, id string) (*model.Producto, error) {
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

func (r *productoRepository) Crear(_ context.Context, p *model.Producto) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	list, err := r.cargar()
	if err != nil {
		return err
	}
	p.ID = nuevoID()
	p.CreatedAt = ahora()
	list = append(list, *p)
	return r.store.Write(coleccionProductos, list)
}

func (r *productoRepository) Actualizar(_ context.Context, p *model.Producto) error {
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
			return r.store.Write(coleccionProductos, list)
		}
	}
	return ErrNotFound
}

func (r *productoRepository) Eliminar(_ context.Context, id string) (*model.Producto, error) {
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
			if err := r.store.Write(coleccionProductos, list); err != nil {
				return nil, err
			}
			return &removed, nil
		}
	}
	return nil, ErrNotFound
}
