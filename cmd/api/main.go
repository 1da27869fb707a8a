package main

import (
	"context"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/levamidia/dimarzio-crm/internal/config"
	"github.com/levamidia/dimarzio-crm/internal/infra/database"
	"github.com/levamidia/dimarzio-crm/internal/infra/http/handlers"
	"github.com/levamidia/dimarzio-crm/internal/infra/http/middleware"
	"github.com/levamidia/dimarzio-crm/internal/infra/integration/metropole"
	"github.com/levamidia/dimarzio-crm/internal/infra/integration/whatsapp"
	"github.com/levamidia/dimarzio-crm/internal/infra/mail"
	"github.com/levamidia/dimarzio-crm/internal/infra/queue"
	"github.com/levamidia/dimarzio-crm/internal/infra/worker"
	"github.com/levamidia/dimarzio-crm/internal/usecase"
)

func main() {
	cfg := config.Load()
	setupLogger(cfg)

	db, err := database.NewDBConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("falha ao conectar no banco")
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitUser, cfg.RabbitPass, cfg.RabbitHost, cfg.RabbitPort)
	if err != nil {
		log.Fatal().Err(err).Msg("falha ao conectar no RabbitMQ")
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// 1. Catálogo
	catalogRepo := database.NewCatalogRepository(db)
	if err := catalogRepo.Seed(context.Background(), config.DefaultCatalog()); err != nil {
		log.Warn().Err(err).Msg("falha ao semear catálogo de fábrica")
	}

	// 2. Gateways e Adapters
	metropoleClient := metropole.NewClient(cfg.APIBaseURL)
	gateway := usecase.NewLeadGateway(metropoleClient, cfg.CacheTTL)
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	whatsappClient := whatsapp.NewClient(cfg.WhatsAppToken, cfg.WhatsAppPhoneID, cfg.WhatsAppTemplate)
	mailSender := mail.NewEmailSender(
		cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass, cfg.MailFrom, cfg.SalesInbox,
	)

	// 3. Worker de notificações (consome a fila de eventos de lead)
	notifyWorker := queue.NewWorker(rabbitMQ.Ch, whatsappClient, mailSender)
	go notifyWorker.Start(queue.QueueName)

	// 4. Worker de cache quente
	warmWorker := worker.NewCacheWarmWorker(gateway, catalogRepo, cfg.TenantID, cfg.CacheTTL)
	go warmWorker.Start(context.Background())

	// 5. UseCases
	rule := usecase.ProductRule{Mode: cfg.ProductMatchMode, Value: ruleValue(cfg)}

	listUC := usecase.NewListLeadsUseCase(
		gateway, catalogRepo, rule,
		cfg.TenantID, cfg.DefaultProduct, cfg.CompanyName, cfg.PageSize,
	)
	statsUC := usecase.NewLeadStatsUseCase(
		gateway, catalogRepo, rule,
		cfg.TenantID, cfg.DefaultProduct, cfg.CompanyName,
		cfg.RecentWindow, cfg.DayBuckets,
	)
	submitUC := usecase.NewSubmitLeadUseCase(gateway, producer, cfg.TenantID, cfg.DefaultProduct)
	updateUC := usecase.NewUpdateLeadStatusUseCase(gateway, producer, cfg.TenantID)

	// 6. Handlers
	leadHandler := handlers.NewLeadHandler(listUC, statsUC, submitUC, updateUC)
	catalogHandler := handlers.NewCatalogHandler(catalogRepo)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn, cfg.APIBaseURL)

	// 7. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/leads", leadHandler.HandleList)
	r.Get("/leads/stats", leadHandler.HandleStats)
	r.Post("/leads", leadHandler.HandleSubmit)
	r.Put("/leads/{id}/status", leadHandler.HandleUpdateStatus)

	r.Get("/catalog/products", catalogHandler.HandleList)
	r.Post("/catalog/products", catalogHandler.HandleCreate)
	r.Put("/catalog/products/{id}/active", catalogHandler.HandleSetActive)

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Str("tenant", cfg.CompanyName).Msg("CRM dashboard API no ar")
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal().Err(err).Msg("servidor HTTP caiu")
	}
}

// ruleValue escolhe o valor comparado pela regra de elegibilidade: prefixo
// de namespace ou o slug do produto padrão para match exato.
func ruleValue(cfg *config.Config) string {
	if cfg.ProductMatchMode == config.MatchPrefix {
		return cfg.ProductNamespace
	}
	return cfg.DefaultProduct
}

func setupLogger(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}
