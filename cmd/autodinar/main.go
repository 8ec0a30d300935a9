// autodinar is the AutoDinar marketplace backend: an automotive parts
// and services storefront for Algeria with installment payment plans,
// order lifecycle tracking, and AI-assisted recommendations.
package main

import (
	"context"
	"log"
	"os"

	"github.com/autodinar/autodinar/internal/api"
	"github.com/autodinar/autodinar/internal/catalog"
	"github.com/autodinar/autodinar/internal/config"
	"github.com/autodinar/autodinar/internal/money"
	"github.com/autodinar/autodinar/internal/order"
	"github.com/autodinar/autodinar/internal/recommend"
	"github.com/autodinar/autodinar/internal/server"
	"github.com/autodinar/autodinar/internal/webhook"
)

func main() {
	flags := server.ParseFlags()

	cfg, err := config.LoadFrom(flags.ConfigFile)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	// Flags win over the config file.
	if flags.Port == 0 {
		flags.Port = cfg.Port
	}
	if flags.WebhookURL == "" {
		flags.WebhookURL = cfg.Webhook.URL
	}

	srv := server.New(flags)
	cat := catalog.Default()

	memStore := order.NewMemoryStore()
	manager := order.NewManager(memStore, srv.Logger, money.FromDinars(cfg.MinMonthlyPayment))

	dispatcher := webhook.NewDispatcher(webhook.Config{
		URL:         flags.WebhookURL,
		Secret:      cfg.Webhook.Secret,
		Logger:      srv.Logger,
		AutoDeliver: flags.WebhookURL != "",
	})

	var recommender recommend.Recommender
	if cfg.Gemini.APIKey != "" {
		g, err := recommend.NewGemini(context.Background(), cfg.Gemini.APIKey, cfg.Gemini.Model, cat)
		if err != nil {
			log.Fatalf("creating recommender: %v", err)
		}
		recommender = g
	} else {
		srv.Logger.Warn("no gemini API key configured, recommendations disabled")
	}

	handler := api.NewHandler(manager, memStore, cat, recommender, dispatcher, srv.RequestLog, srv.Logger)
	handler.Routes(srv.Router)

	if flags.SeedFile != "" {
		data, err := os.ReadFile(flags.SeedFile)
		if err != nil {
			log.Fatalf("reading seed file: %v", err)
		}
		if err := memStore.LoadState(data); err != nil {
			log.Fatalf("loading seed data: %v", err)
		}
		srv.Logger.Info("loaded seed data", "file", flags.SeedFile, "orders", memStore.Orders.Len())
	}
	if flags.SeedDemo || cfg.SeedDemo {
		if err := order.SeedDemo(manager, cat); err != nil {
			log.Fatalf("seeding demo data: %v", err)
		}
		srv.Logger.Info("seeded demo orders", "orders", memStore.Orders.Len())
	}

	srv.Logger.Info("autodinar ready",
		"port", flags.Port,
		"webhook_url", flags.WebhookURL,
		"recommendations", recommender != nil,
	)

	if err := srv.Serve(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
