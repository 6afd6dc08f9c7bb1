// Command seed writes a small demo catalog through the real repositories,
// so a fresh checkout has data to click through. Existing collections are
// appended to, not replaced.
package main

import (
	"context"
	"os"
	"time"

	"github.com/NotBunBun/simulacion-roles/internal/config"
	"github.com/NotBunBun/simulacion-roles/internal/model"
	"github.com/NotBunBun/simulacion-roles/internal/repository"
	"github.com/NotBunBun/simulacion-roles/internal/storage"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	store := storage.New(cfg.DataDir)
	propiedadRepo := repository.NewPropiedadRepository(store)
	tipoRepo := repository.NewTipoRepository(store)
	productoRepo := repository.NewProductoRepository(store)

	ctx := context.Background()

	color := &model.Propiedad{Nombre: "Color", TipoPropiedad: model.PropiedadTexto}
	talla := &model.Propiedad{Nombre: "Talla", TipoPropiedad: model.PropiedadNumero}
	ingreso := &model.Propiedad{Nombre: "Fecha de ingreso", TipoPropiedad: model.PropiedadFecha}
	importado := &model.Propiedad{Nombre: "Importado", TipoPropiedad: model.PropiedadCheck}
	for _, p := range []*model.Propiedad{color, talla, ingreso, importado} {
		if err := propiedadRepo.Crear(ctx, p); err != nil {
			log.Fatal().Err(err).Str("propiedad", p.Nombre).Msg("failed to seed propiedad")
		}
	}

	camisa := &model.Tipo{
		Nombre:      "Camisa",
		Descripcion: "Ropa superior de vestir",
		Propiedades: []string{color.ID, talla.ID, ingreso.ID, importado.ID},
	}
	if err := tipoRepo.Crear(ctx, camisa); err != nil {
		log.Fatal().Err(err).Msg("failed to seed tipo")
	}

	producto := &model.Producto{
		Nombre:      "Camisa Azul",
		TipoID:      camisa.ID,
		Descripcion: "Camisa de algodón azul de manga larga",
		Precio:      decimal.NewFromInt(50000),
		Stock:       10,
		PropiedadValores: map[string]model.Valor{
			color.ID:     model.NuevoValorTexto("Azul"),
			talla.ID:     model.NuevoValorNumero(decimal.NewFromInt(42)),
			ingreso.ID:   model.NuevoValorTexto("2024-03-15"),
			importado.ID: model.NuevoValorCheck(false),
		},
	}
	if err := productoRepo.Crear(ctx, producto); err != nil {
		log.Fatal().Err(err).Msg("failed to seed producto")
	}

	log.Info().
		Str("data_dir", cfg.DataDir).
		Int("propiedades", 4).
		Int("tipos", 1).
		Int("productos", 1).
		Msg("demo catalog seeded")
}
