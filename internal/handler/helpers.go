package handler

import (
	"errors"
	"net/http"
	"reflect"

	"github.com/NotBunBun/simulacion-roles/internal/apierror"
	"github.com/NotBunBun/simulacion-roles/internal/repository"
	"github.com/NotBunBun/simulacion-roles/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds the JSON body and runs the shape-level validator
// tags (presence and JSON types only — business rules live in the
// validation engine). Both failure modes answer 400; the caller should
// return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Datos inválidos: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusBadRequest, &apierror.ValidationError{Detail: "Datos inválidos", Fields: fields})
		return false
	}
	return true
}

// parseID validates the :id path param. Ids are ULID strings; anything
// that does not parse is a 400, matching the malformed-id taxonomy.
func parseID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := ulid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return "", false
	}
	return id, true
}

// respondError maps service-layer failures onto the HTTP taxonomy:
// validation engine → 422 with the field map, not found → 404,
// anything else (storage) → generic 500, logged server-side only.
func respondError(c *gin.Context, err error) {
	var ev *service.ErrValidacion
	switch {
	case errors.As(err, &ev):
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(ev.Campos))
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, apierror.New("Registro no encontrado"))
	default:
		log.Error().
			Str("path", c.FullPath()).
			Str("method", c.Request.Method).
			Err(err).
			Msg("storage failure")
		c.JSON(http.StatusInternalServerError, apierror.New("Error interno del servidor"))
	}
}
