package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/airportservice/api"
	"github.com/Domenick1991/airportservice/config"
	"github.com/Domenick1991/airportservice/internal/auth"
	"github.com/Domenick1991/airportservice/internal/bootstrap"
	"github.com/Domenick1991/airportservice/internal/cache"
	"github.com/Domenick1991/airportservice/internal/domain"
	"github.com/Domenick1991/airportservice/internal/eticket"
	"github.com/Domenick1991/airportservice/internal/kafka"
	"github.com/Domenick1991/airportservice/internal/logger"
	"github.com/Domenick1991/airportservice/internal/media"
	"github.com/Domenick1991/airportservice/internal/repository"
	"github.com/Domenick1991/airportservice/internal/service/account"
	"github.com/Domenick1991/airportservice/internal/service/crew"
	"github.com/Domenick1991/airportservice/internal/service/resource"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	log := logger.NewLogger()

	if err := godotenv.Load(); err != nil {
		log.Debug("config", "no .env file loaded")
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatal("config", fmt.Sprintf("load config: %v", err))
	}
	if cfg.HTTP.Debug {
		log.SetLevel(logger.LevelDebug)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatal("postgres", fmt.Sprintf("connect postgres: %v", err))
	}
	defer pool.Close()

	if cfg.Database.Migrate {
		if err := repository.Migrate(ctx, pool); err != nil {
			log.Fatal("postgres", fmt.Sprintf("migrate: %v", err))
		}
		log.Info("postgres", "schema is up to date")
	}

	checks := map[string]bootstrap.HealthCheck{"postgres": pool.Ping}
	opts := []resource.Option{resource.WithLogger(log)}

	if cfg.Redis.Addr != "" {
		redisCache := cache.NewRedisCache(cfg.Redis, cfg.Cache.ListTTL())
		defer redisCache.Close()
		opts = append(opts, resource.WithCache(redisCache))
		checks["redis"] = redisCache.Ping
	}

	if len(cfg.Kafka.Brokers) > 0 {
		producer := kafka.NewProducer(cfg.Kafka.Brokers, log)
		defer producer.Close()
		if err := producer.CheckConnection(ctx); err != nil {
			log.Warn("kafka", fmt.Sprintf("broker check failed, events may be dropped: %v", err))
		}
		opts = append(opts, resource.WithEvents(producer, cfg.Kafka.EventsTopic))
		checks["kafka"] = producer.CheckConnection
	}

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL())
	store := media.NewStore(cfg.Media.Root, cfg.Media.URL)

	airports := resource.NewService[domain.Airport, domain.AirportInput]("airports", repository.NewAirportRepository(pool), opts...)
	routes := resource.NewService[domain.Route, domain.RouteInput]("routes", repository.NewRouteRepository(pool), opts...)
	airplaneTypes := resource.NewService[domain.AirplaneType, domain.AirplaneTypeInput]("airplane_types", repository.NewAirplaneTypeRepository(pool), opts...)
	airplanes := resource.NewService[domain.Airplane, domain.AirplaneInput]("airplanes", repository.NewAirplaneRepository(pool), opts...)
	flights := resource.NewService[domain.Flight, domain.FlightInput]("flights", repository.NewFlightRepository(pool), opts...)
	orders := resource.NewService[domain.Order, domain.OrderInput]("orders", repository.NewOrderRepository(pool), opts...)
	tickets := resource.NewService[domain.Ticket, domain.TicketInput]("tickets", repository.NewTicketRepository(pool), opts...)
	crews := crew.NewCrewService(repository.NewCrewRepository(pool), store, log, opts...)
	accounts := account.NewAccountService(repository.NewUserRepository(pool), tokens)
	if cfg.Auth.AdminEmail != "" {
		admin, err := accounts.EnsureStaff(ctx, cfg.Auth.AdminEmail, cfg.Auth.AdminPassword)
		if err != nil {
			log.Fatal("auth", fmt.Sprintf("bootstrap staff user: %v", err))
		}
		log.Info("auth", fmt.Sprintf("staff user %s is ready (id=%d)", admin.Email, admin.ID))
	}

	handlers := bootstrap.Handlers{
		Resources: map[string]bootstrap.Registrar{
			"/airports":       api.NewAirportHandler(airports),
			"/routes":         api.NewRouteHandler(routes),
			"/airplane_types": api.NewAirplaneTypeHandler(airplaneTypes),
			"/airplanes":      api.NewAirplaneHandler(airplanes),
			"/flights":        api.NewFlightHandler(flights),
			"/orders":         api.NewOrderHandler(orders),
			"/tickets":        api.NewTicketHandler(tickets, eticket.Render),
			"/crews":          api.NewCrewHandler(crews, store.BaseURL()),
		},
		Users: api.NewUserHandler(accounts),
	}

	router := bootstrap.NewRouter(cfg, log, tokens, handlers, checks)
	if err := bootstrap.Run(ctx, cfg, log, router); err != nil {
		log.Fatal("http", fmt.Sprintf("server error: %v", err))
	}
}
