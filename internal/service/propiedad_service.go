package service

import (
	"context"

	"github.com/NotBunBun/simulacion-roles/internal/dto"
	"github.com/NotBunBun/simulacion-roles/internal/model"
	"github.com/NotBunBun/simulacion-roles/internal/repository"
	"github.com/NotBunBun/simulacion-roles/internal/validation"
)

// PropiedadService defines business operations for attribute definitions.
type PropiedadService interface {
	Listar(ctx context.Context) ([]dto.PropiedadResponse, error)
	ObtenerPorID(ctx context.Context, id string) (*dto.PropiedadResponse, error)
	Crear(ctx context.Context, req dto.CrearPropiedadRequest) (*dto.PropiedadResponse, error)
	Actualizar(ctx context.Context, id string, req dto.ActualizarPropiedadRequest) (*dto.PropiedadResponse, error)
	Eliminar(ctx context.Context, id string) (*dto.PropiedadResponse, error)
}

type propiedadService struct {
	repo repository.PropiedadRepository
}

func NewPropiedadService(repo repository.PropiedadRepository) PropiedadService {
	return &propiedadService{repo: repo}
}

func mapPropiedad(p model.Propiedad) dto.PropiedadResponse {
	return dto.PropiedadResponse{
		ID:            p.ID,
		Nombre:        p.Nombre,
		TipoPropiedad: string(p.TipoPropiedad),
		CreatedAt:     p.CreatedAt,
	}
}

func (s *propiedadService) Listar(ctx context.Context) ([]dto.PropiedadResponse, error) {
	list, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.PropiedadResponse, 0, len(list))
	for _, p := range list {
		result = append(result, mapPropiedad(p))
	}
	return result, nil
}

func (s *propiedadService) ObtenerPorID(ctx context.Context, id string) (*dto.PropiedadResponse, error) {
	p, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapPropiedad(*p)
	return &resp, nil
}

func (s *propiedadService) Crear(ctx context.Context, req dto.CrearPropiedadRequest) (*dto.PropiedadResponse, error) {
	p := &model.Propiedad{
		Nombre:        req.Nombre,
		TipoPropiedad: model.TipoPropiedad(req.TipoPropiedad),
	}
	if res := validation.ValidarPropiedad(p); !res.Valido {
		return nil, &ErrValidacion{Campos: res.Errores}
	}
	if err := s.repo.Crear(ctx, p); err != nil {
		return nil, err
	}
	resp := mapPropiedad(*p)
	return &resp, nil
}

func (s *propiedadService) Actualizar(ctx context.Context, id string, req dto.ActualizarPropiedadRequest) (*dto.PropiedadResponse, error) {
	p, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Nombre != nil {
		p.Nombre = *req.Nombre
	}
	if req.TipoPropiedad != nil {
		p.TipoPropiedad = model.TipoPropiedad(*req.TipoPropiedad)
	}
	if res := validation.ValidarPropiedad(p); !res.Valido {
		return nil, &ErrValidacion{Campos: res.Errores}
	}
	if err := s.repo.Actualizar(ctx, p); err != nil {
		return nil, err
	}
	resp := mapPropiedad(*p)
	return &resp, nil
}

func (s *propiedadService) Eliminar(ctx context.Context, id string) (*dto.PropiedadResponse, error) {
	p, err := s.repo.Eliminar(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapPropiedad(*p)
	return &resp, nil
}
