package service

import (
	"context"
	"testing"

	"github.com/NotBunBun/simulacion-roles/internal/dto"
	"github.com/NotBunBun/simulacion-roles/internal/model"
	"github.com/NotBunBun/simulacion-roles/internal/repository"
	"github.com/NotBunBun/simulacion-roles/internal/storage"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	propiedades PropiedadService
	tipos       TipoService
	productos   ProductoService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := storage.New(t.TempDir())
	propiedadRepo := repository.NewPropiedadRepository(store)
	tipoRepo := repository.NewTipoRepository(store)
	productoRepo := repository.NewProductoRepository(store)
	return &fixture{
		propiedades: NewPropiedadService(propiedadRepo),
		tipos:       NewTipoService(tipoRepo, propiedadRepo),
		productos:   NewProductoService(productoRepo, tipoRepo, propiedadRepo),
	}
}

func (f *fixture) crearColor(t *testing.T) *dto.PropiedadResponse {
	t.Helper()
	color, err := f.propiedades.Crear(context.Background(), dto.CrearPropiedadRequest{
		Nombre: "Color", TipoPropiedad: "texto",
	})
	require.NoError(t, err)
	return color
}

func (f *fixture) crearCamisa(t *testing.T, propiedadIDs ...string) *dto.TipoResponse {
	t.Helper()
	camisa, err := f.tipos.Crear(context.Background(), dto.CrearTipoRequest{
		Nombre: "Camisa", Descripcion: "Ropa superior", Propiedades: propiedadIDs,
	})
	require.NoError(t, err)
	return camisa
}

func camisaAzul(tipoID string, valores map[string]model.Valor) dto.CrearProductoRequest {
	return dto.CrearProductoRequest{
		Nombre:           "Camisa Azul",
		TipoID:           tipoID,
		Descripcion:      "Camisa de algodon azul",
		Precio:           decimal.NewFromInt(50000),
		Stock:            10,
		PropiedadValores: valores,
	}
}

// Scenario: a freshly created Propiedad gets id + createdAt and shows up in list.
func TestCrearPropiedadAsignaIDYAparaceEnListado(t *testing.T) {
	f := newFixture(t)

	color := f.crearColor(t)

	assert.NotEmpty(t, color.ID)
	assert.False(t, color.CreatedAt.IsZero())

	list, err := f.propiedades.Listar(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Color", list[0].Nombre)
}

func TestCrearPropiedadInvalidaDevuelveErrValidacion(t *testing.T) {
	f := newFixture(t)

	_, err := f.propiedades.Crear(context.Background(), dto.CrearPropiedadRequest{
		Nombre: "C", TipoPropiedad: "lista",
	})

	var ev *ErrValidacion
	require.ErrorAs(t, err, &ev)
	assert.Contains(t, ev.Campos, "nombre")
	assert.Contains(t, ev.Campos, "tipoPropiedad")
}

// Scenario: producto without the required dynamic value fails with exactly
// one error, on the Color field.
func TestCrearProductoSinValorDinamicoFalla(t *testing.T) {
	f := newFixture(t)
	color := f.crearColor(t)
	camisa := f.crearCamisa(t, color.ID)

	_, err := f.productos.Crear(context.Background(), camisaAzul(camisa.ID, map[string]model.Valor{}))

	var ev *ErrValidacion
	require.ErrorAs(t, err, &ev)
	require.Len(t, ev.Campos, 1)
	assert.Equal(t, "Color es requerido", ev.Campos[color.ID])
}

// Scenario: with the value supplied, creation succeeds and the value
// round-trips through the persisted collection.
func TestCrearProductoConValorPersiste(t *testing.T) {
	f := newFixture(t)
	color := f.crearColor(t)
	camisa := f.crearCamisa(t, color.ID)

	creado, err := f.productos.Crear(context.Background(), camisaAzul(camisa.ID, map[string]model.Valor{
		color.ID: model.NuevoValorTexto("Azul"),
	}))
	require.NoError(t, err)

	got, err := f.productos.ObtenerPorID(context.Background(), creado.ID)
	require.NoError(t, err)
	s, ok := got.PropiedadValores[color.ID].Texto()
	require.True(t, ok)
	assert.Equal(t, "Azul", s)
	assert.True(t, decimal.NewFromInt(50000).Equal(got.Precio))
}

// Scenario: deleting a Propiedad a Tipo still references empties the
// resolved schema and leaves existing productos' orphaned values intact.
func TestEliminarPropiedadReferenciada(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	color := f.crearColor(t)
	camisa := f.crearCamisa(t, color.ID)

	creado, err := f.productos.Crear(ctx, camisaAzul(camisa.ID, map[string]model.Valor{
		color.ID: model.NuevoValorTexto("Azul"),
	}))
	require.NoError(t, err)

	_, err = f.propiedades.Eliminar(ctx, color.ID)
	require.NoError(t, err)

	esquema, err := f.tipos.ObtenerEsquema(ctx, camisa.ID)
	require.NoError(t, err)
	assert.Empty(t, esquema, "stale reference silently dropped")

	got, err := f.productos.ObtenerPorID(ctx, creado.ID)
	require.NoError(t, err)
	s, ok := got.PropiedadValores[color.ID].Texto()
	require.True(t, ok, "orphaned value kept unchanged")
	assert.Equal(t, "Azul", s)

	// And the producto can still be updated: the orphaned value is ignored.
	nombre := "Camisa Azul Claro"
	_, err = f.productos.Actualizar(ctx, creado.ID, dto.ActualizarProductoRequest{Nombre: &nombre})
	require.NoError(t, err)
}

func TestCrearProductoConTipoInexistente(t *testing.T) {
	f := newFixture(t)
	color := f.crearColor(t)
	camisa := f.crearCamisa(t, color.ID)
	_, err := f.tipos.Eliminar(context.Background(), camisa.ID)
	require.NoError(t, err)

	_, err = f.productos.Crear(context.Background(), camisaAzul(camisa.ID, map[string]model.Valor{}))

	var ev *ErrValidacion
	require.ErrorAs(t, err, &ev)
	assert.Equal(t, "Debe seleccionar un tipo válido", ev.Campos["tipoId"])
}

func TestActualizarProductoFusionaCampos(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	color := f.crearColor(t)
	camisa := f.crearCamisa(t, color.ID)

	creado, err := f.productos.Crear(ctx, camisaAzul(camisa.ID, map[string]model.Valor{
		color.ID: model.NuevoValorTexto("Azul"),
	}))
	require.NoError(t, err)

	stock := 3
	actualizado, err := f.productos.Actualizar(ctx, creado.ID, dto.ActualizarProductoRequest{Stock: &stock})
	require.NoError(t, err)

	assert.Equal(t, 3, actualizado.Stock)
	assert.Equal(t, "Camisa Azul", actualizado.Nombre, "unmentioned fields survive the merge")
	assert.True(t, creado.CreatedAt.Equal(actualizado.CreatedAt), "createdAt preserved")
}

func TestActualizarProductoInvalidoNoPersiste(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	color := f.crearColor(t)
	camisa := f.crearCamisa(t, color.ID)

	creado, err := f.productos.Crear(ctx, camisaAzul(camisa.ID, map[string]model.Valor{
		color.ID: model.NuevoValorTexto("Azul"),
	}))
	require.NoError(t, err)

	vacios := map[string]model.Valor{}
	_, err = f.productos.Actualizar(ctx, creado.ID, dto.ActualizarProductoRequest{PropiedadValores: &vacios})
	var ev *ErrValidacion
	require.ErrorAs(t, err, &ev)

	got, err := f.productos.ObtenerPorID(ctx, creado.ID)
	require.NoError(t, err)
	_, ok := got.PropiedadValores[color.ID].Texto()
	assert.True(t, ok, "stored record untouched after failed update")
}

func TestDetalleResuelveCamposEnOrden(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	color := f.crearColor(t)
	talla, err := f.propiedades.Crear(ctx, dto.CrearPropiedadRequest{Nombre: "Talla", TipoPropiedad: "numero"})
	require.NoError(t, err)

	camisa := f.crearCamisa(t, talla.ID, color.ID)

	creado, err := f.productos.Crear(ctx, camisaAzul(camisa.ID, map[string]model.Valor{
		color.ID: model.NuevoValorTexto("Azul"),
		talla.ID: model.NuevoValorNumero(decimal.NewFromInt(42)),
	}))
	require.NoError(t, err)

	_, campos, err := f.productos.Detalle(ctx, creado.ID)
	require.NoError(t, err)
	require.Len(t, campos, 2)
	assert.Equal(t, "Talla", campos[0].Nombre, "display order follows the Tipo, not creation order")
	assert.Equal(t, "Color", campos[1].Nombre)
	require.NotNil(t, campos[1].Valor)
	s, _ := campos[1].Valor.Texto()
	assert.Equal(t, "Azul", s)
}
