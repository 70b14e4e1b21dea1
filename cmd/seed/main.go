package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/hashimadil/storefront-backend/internal/catalog"
	"github.com/hashimadil/storefront-backend/pkg/config"
	"github.com/hashimadil/storefront-backend/pkg/db"
	"github.com/hashimadil/storefront-backend/pkg/enums"
	"github.com/hashimadil/storefront-backend/pkg/logger"
)

const seedInventory = 25

var apparelSizes = []string{"S", "M", "L", "XL"}
var pantSizes = []string{"28", "30", "32", "34"}
var shoeSizes = []string{"8", "9", "10", "11"}

func main() {
	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: "seed"})

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logg.Error(ctx, "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "seed",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
	})

	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer dbClient.Close()

	svc, err := catalog.NewService(catalog.ServiceParams{
		Repo: catalog.NewRepository(dbClient.DB()),
		Tx:   dbClient,
	})
	if err != nil {
		logg.Error(ctx, "failed to create catalog service", err)
		os.Exit(1)
	}

	existing, err := svc.ListAll(ctx)
	if err != nil {
		logg.Error(ctx, "failed to inspect catalog", err)
		os.Exit(1)
	}
	if len(existing) > 0 {
		logg.Info(logg.WithField(ctx, "count", len(existing)), "catalog already seeded, nothing to do")
		return
	}

	for _, req := range seedCatalog() {
		product, err := svc.Create(ctx, req)
		if err != nil {
			logg.Error(logg.WithField(ctx, "product", req.Name), "failed to seed product", err)
			os.Exit(1)
		}
		logg.Info(logg.WithFields(ctx, map[string]any{
			"product_id": product.ID.String(),
			"name":       product.Name,
		}), "seeded product")
	}

	logg.Info(ctx, "catalog seed complete")
}

func seedCatalog() []catalog.CreateProductRequest {
	return []catalog.CreateProductRequest{
		product("Class T-Shirt", "29.99", "Tops",
			"Premium class t-shirt with custom design",
			"https://cdn.mines.example/images/class_tshirt.jpg", apparelSizes),
		product("Denim Jeans", "79.99", "Bottoms",
			"Classic denim jeans",
			"https://cdn.mines.example/images/denim_jeans.jpg", pantSizes),
		product("Hoodie", "59.99", "Tops",
			"Comfortable cotton hoodie",
			"https://cdn.mines.example/images/hoodie.jpg", apparelSizes),
		product("Cargo Shorts", "49.99", "Bottoms",
			"Utility cargo shorts",
			"https://cdn.mines.example/images/cargo_shorts.jpg", apparelSizes),
		product("Baseball Cap", "24.99", "Accessories",
			"Classic baseball cap",
			"https://cdn.mines.example/images/baseball_cap.jpg", []string{"One Size"}),
		product("Sneakers", "89.99", "Footwear",
			"Modern athletic sneakers",
			"https://cdn.mines.example/images/sneakers.jpg", shoeSizes),
		product("Leather Jacket", "199.99", "Tops",
			"Genuine leather jacket",
			"https://cdn.mines.example/images/leather_jacket.jpg", apparelSizes),
		product("Chinos", "69.99", "Bottoms",
			"Classic chino pants",
			"https://cdn.mines.example/images/chinos.jpg", pantSizes),
	}
}

func product(name, price, category, description, imageURL string, sizes []string) catalog.CreateProductRequest {
	sizeInputs := make([]catalog.SizeInput, 0, len(sizes))
	for _, label := range sizes {
		sizeInputs = append(sizeInputs, catalog.SizeInput{SizeLabel: label, InventoryCount: seedInventory})
	}

	return catalog.CreateProductRequest{
		Name:        name,
		Description: &description,
		Price:       decimal.RequireFromString(price),
		Category:    &category,
		Status:      enums.ProductStatusActive.String(),
		Sizes:       sizeInputs,
		Images:      []catalog.ImageInput{{ImageURL: imageURL, DisplayOrder: 0}},
	}
}
