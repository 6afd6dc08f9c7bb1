package service

import (
	"context"

	"github.com/NotBunBun/simulacion-roles/internal/dto"
	"github.com/NotBunBun/simulacion-roles/internal/model"
	"github.com/NotBunBun/simulacion-roles/internal/repository"
	"github.com/NotBunBun/simulacion-roles/internal/schema"
	"github.com/NotBunBun/simulacion-roles/internal/validation"
)

// TipoService defines business operations for product types.
type TipoService interface {
	Listar(ctx context.Context) ([]dto.TipoResponse, error)
	ObtenerPorID(ctx context.Context, id string) (*dto.TipoResponse, error)
	Crear(ctx context.Context, req dto.CrearTipoRequest) (*dto.TipoResponse, error)
	Actualizar(ctx context.Context, id string, req dto.ActualizarTipoRequest) (*dto.TipoResponse, error)
	Eliminar(ctx context.Context, id string) (*dto.TipoResponse, error)
	// ObtenerEsquema returns the Tipo's resolved schema: its Propiedad
	// definitions in display order, stale ids dropped.
	ObtenerEsquema(ctx context.Context, id string) ([]dto.PropiedadResponse, error)
}

type tipoService struct {
	repo          repository.TipoRepository
	propiedadRepo repository.PropiedadRepository
}

func NewTipoService(repo repository.TipoRepository, propiedadRepo repository.PropiedadRepository) TipoService {
	return &tipoService{repo: repo, propiedadRepo: propiedadRepo}
}

func mapTipo(t model.Tipo) dto.TipoResponse {
	propiedades := t.Propiedades
	if propiedades == nil {
		propiedades = []string{}
	}
	return dto.TipoResponse{
		ID:          t.ID,
		Nombre:      t.Nombre,
		Descripcion: t.Descripcion,
		Propiedades: propiedades,
		CreatedAt:   t.CreatedAt,
	}
}

func (s *tipoService) Listar(ctx context.Context) ([]dto.TipoResponse, error) {
	list, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.TipoResponse, 0, len(list))
	for _, t := range list {
		result = append(result, mapTipo(t))
	}
	return result, nil
}

func (s *tipoService) ObtenerPorID(ctx context.Context, id string) (*dto.TipoResponse, error) {
	t, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapTipo(*t)
	return &resp, nil
}

func (s *tipoService) Crear(ctx context.Context, req dto.CrearTipoRequest) (*dto.TipoResponse, error) {
	t := &model.Tipo{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		Propiedades: req.Propiedades,
	}
	if res := validation.ValidarTipo(t); !res.Valido {
		return nil, &ErrValidacion{Campos: res.Errores}
	}
	if err := s.repo.Crear(ctx, t); err != nil {
		return nil, err
	}
	resp := mapTipo(*t)
	return &resp, nil
}

func (s *tipoService) Actualizar(ctx context.Context, id string, req dto.ActualizarTipoRequest) (*dto.TipoResponse, error) {
	t, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Nombre != nil {
		t.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		t.Descripcion = *req.Descripcion
	}
	if req.Propiedades != nil {
		t.Propiedades = *req.Propiedades
	}
	if res := validation.ValidarTipo(t); !res.Valido {
		return nil, &ErrValidacion{Campos: res.Errores}
	}
	if err := s.repo.Actualizar(ctx, t); err != nil {
		return nil, err
	}
	resp := mapTipo(*t)
	return &resp, nil
}

func (s *tipoService) Eliminar(ctx context.Context, id string) (*dto.TipoResponse, error) {
	t, err := s.repo.Eliminar(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapTipo(*t)
	return &resp, nil
}

func (s *tipoService) ObtenerEsquema(ctx context.Context, id string) ([]dto.PropiedadResponse, error) {
	t, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	todas, err := s.propiedadRepo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	esquema := schema.ResolverEsquema(t, todas)
	result := make([]dto.PropiedadResponse, 0, len(esquema))
	for _, def := range esquema {
		result = append(result, mapPropiedad(def))
	}
	return result, nil
}
