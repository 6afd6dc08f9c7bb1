package service

import (
	"context"
	"errors"

	"github.com/NotBunBun/simulacion-roles/internal/dto"
	"github.com/NotBunBun/simulacion-roles/internal/model"
	"github.com/NotBunBun/simulacion-roles/internal/repository"
	"github.com/NotBunBun/simulacion-roles/internal/schema"
	"github.com/NotBunBun/simulacion-roles/internal/validation"
)

// ProductoService defines business operations for catalog products.
type ProductoService interface {
	Listar(ctx context.Context) ([]dto.ProductoResponse, error)
	ObtenerPorID(ctx context.Context, id string) (*dto.ProductoResponse, error)
	Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error)
	Actualizar(ctx context.Context, id string, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error)
	Eliminar(ctx context.Context, id string) (*dto.ProductoResponse, error)
	// Detalle returns the producto together with its resolved dynamic
	// fields (definition + stored value, in the Tipo's display order).
	Detalle(ctx context.Context, id string) (*dto.ProductoResponse, []dto.CampoResuelto, error)
}

type productoService struct {
	repo          repository.ProductoRepository
	tipoRepo      repository.TipoRepository
	propiedadRepo repository.PropiedadRepository
}

func NewProductoService(repo repository.ProductoRepository, tipoRepo repository.TipoRepository, propiedadRepo repository.PropiedadRepository) ProductoService {
	return &productoService{repo: repo, tipoRepo: tipoRepo, propiedadRepo: propiedadRepo}
}

func mapProducto(p model.Producto) dto.ProductoResponse {
	valores := p.PropiedadValores
	if valores == nil {
		valores = map[string]model.Valor{}
	}
	return dto.ProductoResponse{
		ID:               p.ID,
		Nombre:           p.Nombre,
		TipoID:           p.TipoID,
		Descripcion:      p.Descripcion,
		Precio:           p.Precio,
		Stock:            p.Stock,
		PropiedadValores: valores,
		CreatedAt:        p.CreatedAt,
	}
}

// esquemaDe resolves the schema for a tipoId. A tipoId that does not
// resolve yields a nil Tipo and an empty schema — "no schema", not an
// error; the validation engine turns the nil Tipo into a tipoId error.
func (s *productoService) esquemaDe(ctx context.Context, tipoID string) (*model.Tipo, []model.Propiedad, error) {
	tipo, err := s.tipoRepo.ObtenerPorID(ctx, tipoID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, nil
		}
		return nil, nil, err
	}
	todas, err := s.propiedadRepo.Listar(ctx)
	if err != nil {
		return nil, nil, err
	}
	return tipo, schema.ResolverEsquema(tipo, todas), nil
}

func (s *productoService) validar(ctx context.Context, p *model.Producto) error {
	tipo, esquema, err := s.esquemaDe(ctx, p.TipoID)
	if err != nil {
		return err
	}
	if res := validation.ValidarProducto(p, tipo, esquema); !res.Valido {
		return &ErrValidacion{Campos: res.Errores}
	}
	return nil
}

func (s *productoService) Listar(ctx context.Context) ([]dto.ProductoResponse, error) {
	list, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ProductoResponse, 0, len(list))
	for _, p := range list {
		result = append(result, mapProducto(p))
	}
	return result, nil
}

func (s *productoService) ObtenerPorID(ctx context.Context, id string) (*dto.ProductoResponse, error) {
	p, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapProducto(*p)
	return &resp, nil
}

func (s *productoService) Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	p := &model.Producto{
		Nombre:           req.Nombre,
		TipoID:           req.TipoID,
		Descripcion:      req.Descripcion,
		Precio:           req.Precio,
		Stock:            req.Stock,
		PropiedadValores: req.PropiedadValores,
	}
	if p.PropiedadValores == nil {
		p.PropiedadValores = map[string]model.Valor{}
	}
	if err := s.validar(ctx, p); err != nil {
		return nil, err
	}
	if err := s.repo.Crear(ctx, p); err != nil {
		return nil, err
	}
	resp := mapProducto(*p)
	return &resp, nil
}

func (s *productoService) Actualizar(ctx context.Context, id string, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error) {
	p, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Nombre != nil {
		p.Nombre = *req.Nombre
	}
	if req.TipoID != nil {
		p.TipoID = *req.TipoID
	}
	if req.Descripcion != nil {
		p.Descripcion = *req.Descripcion
	}
	if req.Precio != nil {
		p.Precio = *req.Precio
	}
	if req.Stock != nil {
		p.Stock = *req.Stock
	}
	if req.PropiedadValores != nil {
		p.PropiedadValores = *req.PropiedadValores
	}
	// The merged record is validated as a whole: a Tipo whose schema grew
	// since creation will demand the new values here, but existing stored
	// records are never repaired retroactively.
	if err := s.validar(ctx, p); err != nil {
		return nil, err
	}
	if err := s.repo.Actualizar(ctx, p); err != nil {
		return nil, err
	}
	resp := mapProducto(*p)
	return &resp, nil
}

func (s *productoService) Eliminar(ctx context.Context, id string) (*dto.ProductoResponse, error) {
	p, err := s.repo.Eliminar(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapProducto(*p)
	return &resp, nil
}

func (s *productoService) Detalle(ctx context.Context, id string) (*dto.ProductoResponse, []dto.CampoResuelto, error) {
	p, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	_, esquema, err := s.esquemaDe(ctx, p.TipoID)
	if err != nil {
		return nil, nil, err
	}
	campos := make([]dto.CampoResuelto, 0, len(esquema))
	for _, def := range esquema {
		campo := dto.CampoResuelto{
			PropiedadID:   def.ID,
			Nombre:        def.Nombre,
			TipoPropiedad: string(def.TipoPropiedad),
		}
		if v, ok := schema.ResolverValor(def, p); ok {
			campo.Valor = &v
		}
		campos = append(campos, campo)
	}
	resp := mapProducto(*p)
	return &resp, campos, nil
}
