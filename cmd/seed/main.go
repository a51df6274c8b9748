// cmd/seed/main.go loads a small demo catalog through the services, so the
// same rules apply as for API writes. Running it twice reports the
// duplicate document and changes nothing.
// Usage: go run ./cmd/seed
package main

import (
	"context"
	"os"
	"time"

	"catalog/internal/config"
	"catalog/internal/infra"
	"catalog/internal/model"
	"catalog/internal/repository"
	"catalog/internal/service"

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
	db, err := infra.NewDatabase(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	store := repository.NewStore(db)
	suppliers := service.NewSupplierService(store)
	products := service.NewProductService(store)
	ctx := context.Background()

	acme := model.NewSupplier("Acme", "12345678900", model.SupplierCompany)
	acme.AttachAddress(model.NewAddress("Main St", "100", "01001000", "Centro", "Sao Paulo", "SP"))

	res, err := suppliers.Add(ctx, acme)
	if err != nil {
		log.Fatal().Err(err).Msg("add supplier")
	}
	if !res.Valid() {
		log.Warn().Strs("violations", res.Violations).Msg("supplier not seeded")
		return
	}

	for _, p := range []*model.Product{
		model.NewProduct(acme.ID, "Widget", "Standard widget", decimal.RequireFromString("10.00")),
		model.NewProduct(acme.ID, "Gadget", "Deluxe gadget", decimal.RequireFromString("25.50")),
	} {
		res, err := products.Add(ctx, p)
		if err != nil {
			log.Fatal().Err(err).Str("product", p.Name).Msg("add product")
		}
		if !res.Valid() {
			log.Warn().Strs("violations", res.Violations).Str("product", p.Name).Msg("product not seeded")
		}
	}
	log.Info().Str("supplier_id", acme.ID.String()).Msg("demo catalog seeded")
}
