package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"storecatalog/internal/core/id"
	"storecatalog/internal/core/types"
	"storecatalog/internal/domain/catalog"
	"storecatalog/internal/infrastructure/storage"
	"storecatalog/pkg/logger"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Create the demo stores and products",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withCatalog(cmd.Context(), func(ctx context.Context, svc *catalog.Service) error {
			return seedDemo(ctx, svc, cmd.OutOrStdout())
		})
	},
}

var reportCmd = &cobra.Command{
	Use:   "report [location]",
	Short: "Print products sold on a location and products sold by one store only",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		location := demoLocation
		if len(args) == 1 {
			location = args[0]
		}
		return withCatalog(cmd.Context(), func(ctx context.Context, svc *catalog.Service) error {
			return printReport(ctx, svc, location, cmd.OutOrStdout())
		})
	},
}

func withCatalog(ctx context.Context, fn func(ctx context.Context, svc *catalog.Service) error) error {
	if ctx == nil {
		ctx = context.Background()
	}

	log, err := logger.New(logger.Config{Level: opts.logLevel, Development: true})
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	ctx = logger.WithLogger(ctx, log)

	backend, err := storage.Open(ctx, storage.Config{
		Driver:      opts.driver,
		DatabaseURL: opts.databaseURL,
		SQLitePath:  opts.sqlitePath,
	})
	if err != nil {
		return err
	}
	defer func() { _ = backend.Close() }()

	svc := catalog.NewService(catalog.Config{
		Stores:     backend.Stores,
		Products:   backend.Products,
		Assortment: backend.Assortment,
		TxManager:  backend.TxManager,
	})
	return fn(ctx, svc)
}

const demoLocation = "ул. Ленина"

type demoProduct struct {
	store    string
	name     string
	price    string
	category string
}

var demoStores = []catalog.StoreInput{
	{Name: "A", Location: "ул. Ленина, 1", Email: "a@example.ru"},
	{Name: "B", Location: "ул. Ленина, 15", Email: "b@example.ru"},
	{Name: "C", Location: "ул. Вязов, 4", Email: "c@example.ru"},
}

var demoProducts = []demoProduct{
	{store: "A", name: "p1", price: "89.90", category: "dairy"},
	{store: "A", name: "p2", price: "45.00"},
	{store: "B", name: "p3", price: "120.50", category: "bakery"},
	{store: "C", name: "p4", price: "15.00"},
}

func seedDemo(ctx context.Context, svc *catalog.Service, out io.Writer) error {
	stores := make(map[string]id.ID, len(demoStores))
	for _, in := range demoStores {
		st, err := svc.CreateStore(ctx, in)
		if err != nil {
			return fmt.Errorf("create store %s: %w", in.Name, err)
		}
		stores[in.Name] = st.ID
		_, _ = fmt.Fprintf(out, "store   %s  %s (%s)\n", st.ID, st.Name, st.Location)
	}

	for _, dp := range demoProducts {
		price := types.MustMoney(dp.price)
		p, err := svc.CreateProduct(ctx, stores[dp.store], catalog.ProductInput{
			Name:     dp.name,
			Price:    &price,
			Category: dp.category,
		})
		if err != nil {
			return fmt.Errorf("create product %s: %w", dp.name, err)
		}
		_, _ = fmt.Fprintf(out, "product %s  %s %s [%s] @ %s\n", p.ID, p.Name, p.Price, p.Category, dp.store)
	}
	return nil
}

func printReport(ctx context.Context, svc *catalog.Service, location string, out io.Writer) error {
	byLocation, err := svc.FindProductsByLocation(ctx, &location)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "products on %q:\n", location)
	for _, p := range byLocation {
		_, _ = fmt.Fprintf(out, "  %s  %s %s\n", p.ID, p.Name, p.Price)
	}

	unique, err := svc.FindUniqueProducts(ctx)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(out, "products sold by exactly one store:")
	for _, p := range unique {
		_, _ = fmt.Fprintf(out, "  %s  %s %s\n", p.ID, p.Name, p.Price)
	}
	return nil
}
