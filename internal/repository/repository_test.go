package repository

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/NotBunBun/simulacion-roles/internal/model"
	"github.com/NotBunBun/simulacion-roles/internal/storage"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrearAsignaIDYCreatedAt(t *testing.T) {
	repo := NewPropiedadRepository(storage.New(t.TempDir()))

	p := &model.Propiedad{Nombre: "Color", TipoPropiedad: model.PropiedadTexto}
	require.NoError(t, repo.Crear(context.Background(), p))

	_, err := ulid.Parse(p.ID)
	assert.NoError(t, err, "id must be a valid ULID")
	assert.False(t, p.CreatedAt.IsZero())

	list, err := repo.Listar(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, p.ID, list[0].ID)
}

func TestIDsOrdenadosPorCreacion(t *testing.T) {
	repo := NewPropiedadRepository(storage.New(t.TempDir()))
	ctx := context.Background()

	a := &model.Propiedad{Nombre: "Color", TipoPropiedad: model.PropiedadTexto}
	b := &model.Propiedad{Nombre: "Talla", TipoPropiedad: model.PropiedadNumero}
	require.NoError(t, repo.Crear(ctx, a))
	require.NoError(t, repo.Crear(ctx, b))

	assert.NotEqual(t, a.ID, b.ID)
	assert.Less(t, a.ID, b.ID, "ULIDs sort in creation order")
}

func TestObtenerPorIDNoEncontrado(t *testing.T) {
	repo := NewTipoRepository(storage.New(t.TempDir()))

	_, err := repo.ObtenerPorID(context.Background(), ulid.Make().String())

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestActualizarPreservaCreatedAt(t *testing.T) {
	repo := NewTipoRepository(storage.New(t.TempDir()))
	ctx := context.Background()

	tipo := &model.Tipo{Nombre: "Camisa", Descripcion: "Ropa superior", Propiedades: []string{"x"}}
	require.NoError(t, repo.Crear(ctx, tipo))
	original := tipo.CreatedAt

	tipo.Nombre = "Camisa formal"
	require.NoError(t, repo.Actualizar(ctx, tipo))

	got, err := repo.ObtenerPorID(ctx, tipo.ID)
	require.NoError(t, err)
	assert.Equal(t, "Camisa formal", got.Nombre)
	assert.True(t, original.Equal(got.CreatedAt))
}

func TestActualizarIdempotente(t *testing.T) {
	store := storage.New(t.TempDir())
	repo := NewProductoRepository(store)
	ctx := context.Background()

	p := &model.Producto{Nombre: "Camisa Azul", Descripcion: "Camisa de algodón", Precio: decimal.NewFromInt(100), Stock: 5}
	require.NoError(t, repo.Crear(ctx, p))

	require.NoError(t, repo.Actualizar(ctx, p))
	primera, err := repo.Listar(ctx)
	require.NoError(t, err)

	require.NoError(t, repo.Actualizar(ctx, p))
	segunda, err := repo.Listar(ctx)
	require.NoError(t, err)

	a, _ := json.Marshal(primera)
	b, _ := json.Marshal(segunda)
	assert.JSONEq(t, string(a), string(b))
}

func TestActualizarNoEncontrado(t *testing.T) {
	repo := NewProductoRepository(storage.New(t.TempDir()))

	err := repo.Actualizar(context.Background(), &model.Producto{ID: ulid.Make().String()})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEliminarDevuelveElRegistro(t *testing.T) {
	repo := NewPropiedadRepository(storage.New(t.TempDir()))
	ctx := context.Background()

	p := &model.Propiedad{Nombre: "Color", TipoPropiedad: model.PropiedadTexto}
	require.NoError(t, repo.Crear(ctx, p))

	removed, err := repo.Eliminar(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, removed.ID)
	assert.Equal(t, "Color", removed.Nombre)

	list, err := repo.Listar(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = repo.Eliminar(ctx, p.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMutacionesPersistenEnDisco(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	repo := NewPropiedadRepository(storage.New(dir))
	p := &model.Propiedad{Nombre: "Color", TipoPropiedad: model.PropiedadTexto}
	require.NoError(t, repo.Crear(ctx, p))

	// A fresh repository over the same dir sees the record.
	otro := NewPropiedadRepository(storage.New(dir))
	got, err := otro.ObtenerPorID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Color", got.Nombre)

	data, err := os.ReadFile(filepath.Join(dir, "propiedades.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"`+p.ID+`","nombre":"Color","tipoPropiedad":"texto","createdAt":"`+p.CreatedAt.Format("2006-01-02T15:04:05.999999999Z07:00")+`"}]`, string(data))
}
