package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/NotBunBun/simulacion-roles/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadMissingFileReturnsEmptyCollection(t *testing.T) {
	store := New(t.TempDir())

	var list []model.Propiedad
	err := store.Read("propiedades", &list)

	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestWriteCreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "anidado", "data")
	store := New(dir)

	err := store.Write("tipos", []model.Tipo{})

	require.NoError(t, err)
	_, statErr := os.Stat(filepath.Join(dir, "tipos.json"))
	assert.NoError(t, statErr)
}

func TestRoundTripPropiedades(t *testing.T) {
	store := New(t.TempDir())
	original := []model.Propiedad{
		{ID: "01ARZ3NDEKTSV4RRFFQ69G5FAV", Nombre: "Color", TipoPropiedad: model.PropiedadTexto, CreatedAt: time.Now().UTC()},
		{ID: "01BX5ZZKBKACTAV9WEVGEMMVRZ", Nombre: "Talla", TipoPropiedad: model.PropiedadNumero, CreatedAt: time.Now().UTC()},
	}

	require.NoError(t, store.Write("propiedades", original))

	var got []model.Propiedad
	require.NoError(t, store.Read("propiedades", &got))
	require.Len(t, got, 2)
	for i := range original {
		assert.Equal(t, original[i].ID, got[i].ID)
		assert.Equal(t, original[i].Nombre, got[i].Nombre)
		assert.Equal(t, original[i].TipoPropiedad, got[i].TipoPropiedad)
		assert.True(t, original[i].CreatedAt.Equal(got[i].CreatedAt))
	}
}

func TestRoundTripProductoConValores(t *testing.T) {
	store := New(t.TempDir())
	original := []model.Producto{{
		ID:          "01ARZ3NDEKTSV4RRFFQ69G5FAV",
		Nombre:      "Camisa Azul",
		TipoID:      "01BX5ZZKBKACTAV9WEVGEMMVRZ",
		Descripcion: "Camisa de algodón azul",
		Precio:      decimal.RequireFromString("50000.50"),
		Stock:       10,
		PropiedadValores: map[string]model.Valor{
			"a": model.NuevoValorTexto("Azul"),
			"b": model.NuevoValorNumero(decimal.NewFromInt(42)),
			"c": model.NuevoValorCheck(true),
		},
		CreatedAt: time.Now().UTC(),
	}}

	require.NoError(t, store.Write("productos", original))

	var got []model.Producto
	require.NoError(t, store.Read("productos", &got))
	require.Len(t, got, 1)

	assert.True(t, original[0].Precio.Equal(got[0].Precio))

	s, ok := got[0].PropiedadValores["a"].Texto()
	require.True(t, ok)
	assert.Equal(t, "Azul", s)

	n, ok := got[0].PropiedadValores["b"].Numero()
	require.True(t, ok)
	assert.True(t, n.Equal(decimal.NewFromInt(42)))

	b, ok := got[0].PropiedadValores["c"].Check()
	require.True(t, ok)
	assert.True(t, b)
}

func TestWriteOverwritesWholeFile(t *testing.T) {
	store := New(t.TempDir())

	require.NoError(t, store.Write("tipos", []model.Tipo{{ID: "uno"}, {ID: "dos"}}))
	require.NoError(t, store.Write("tipos", []model.Tipo{{ID: "tres"}}))

	var got []model.Tipo
	require.NoError(t, store.Read("tipos", &got))
	require.Len(t, got, 1)
	assert.Equal(t, "tres", got[0].ID)
}

func TestReadCorruptFilePropagatesError(t *testing.T) {
	dir := t.TempDir()
	store := New(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tipos.json"), []byte("{no es json"), 0o644))

	var got []model.Tipo
	assert.Error(t, store.Read("tipos", &got))
}
