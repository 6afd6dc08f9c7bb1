package handler

import (
	"net/http"

	"github.com/NotBunBun/simulacion-roles/internal/dto"
	"github.com/NotBunBun/simulacion-roles/internal/service"

	"github.com/gin-gonic/gin"
)

type TiposHandler struct{ svc service.TipoService }

func NewTiposHandler(svc service.TipoService) *TiposHandler {
	return &TiposHandler{svc: svc}
}

// Listar GET /v1/tipos
func (h *TiposHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Crear POST /v1/tipos
func (h *TiposHandler) Crear(c *gin.Context) {
	var req dto.CrearTipoRequest
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

// ObtenerPorID GET /v1/tipos/:id
func (h *TiposHandler) ObtenerPorID(c *gin.Context) {
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

// ObtenerEsquema GET /v1/tipos/:id/esquema
// Returns the resolved schema: the Tipo's Propiedad definitions in display
// order. The front end builds its dynamic form fields from this.
func (h *TiposHandler) ObtenerEsquema(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerEsquema(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar PUT /v1/tipos/:id
func (h *TiposHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarTipoRequest
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

// Eliminar DELETE /v1/tipos/:id
func (h *TiposHandler) Eliminar(c *gin.Context) {
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
