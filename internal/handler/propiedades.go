package handler

import (
	"net/http"

	"github.com/NotBunBun/simulacion-roles/internal/dto"
	"github.com/NotBunBun/simulacion-roles/internal/service"

	"github.com/gin-gonic/gin"
)

type PropiedadesHandler struct{ svc service.PropiedadService }

func NewPropiedadesHandler(svc service.PropiedadService) *PropiedadesHandler {
	return &PropiedadesHandler{svc: svc}
}

// Listar GET /v1/propiedades
func (h *PropiedadesHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Crear POST /v1/propiedades
func (h *PropiedadesHandler) Crear(c *gin.Context) {
	var req dto.CrearPropiedadRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ObtenerPorID GET /v1/propiedades/:id
func (h *PropiedadesHandler) ObtenerPorID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar PUT /v1/propiedades/:id
func (h *PropiedadesHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarPropiedadRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar DELETE /v1/propiedades/:id
// Responds with the removed record. No dependent check: Tipos referencing
// the id keep it, resolution drops it from their schemas.
func (h *PropiedadesHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Eliminar(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
