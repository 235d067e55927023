package app

import (
	"context"
	foodAPI "food_wheel/internal/api/food"
	historyAPI "food_wheel/internal/api/history"
	"food_wheel/internal/api/middleware"
	wheelAPI "food_wheel/internal/api/wheel"
	"food_wheel/internal/config"
	"food_wheel/internal/config/env"
	"food_wheel/internal/repository"
	"food_wheel/internal/repository/food_repo"
	"food_wheel/internal/repository/history_repo"
	"food_wheel/internal/repository/remote"
	"food_wheel/internal/service"
	"food_wheel/internal/service/food"
	"food_wheel/internal/service/wheel"
	"log/slog"
	"net/http"
	"os"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ServiceProvider struct {
	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Remote store
	storeCfg     config.StoreConfig
	remoteClient *remote.Client

	// Logging
	logCfg config.LogConfig
	logger *slog.Logger

	// Auth
	jwtCfg config.JWTConfig

	// Food bits
	foodRepo repository.FoodRepository
	foodServ service.FoodService
	foodHand *foodAPI.Handler

	// Wheel bits
	wheelCfg    config.WheelConfig
	historyRepo repository.HistoryRepository
	wheelServ   service.WheelService
	wheelHand   *wheelAPI.Handler
	historyHand *historyAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) LogCfg() config.LogConfig {
	if sp.logCfg == nil {
		cfg, err := env.NewLogConfig()
		if err != nil {
			panic("failed to get log config: " + err.Error())
		}
		sp.logCfg = cfg
	}
	return sp.logCfg
}

func (sp *ServiceProvider) Logger() *slog.Logger {
	if sp.logger == nil {
		sp.logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: sp.LogCfg().Level()}))
		slog.SetDefault(sp.logger)
	}
	return sp.logger
}

func (sp *ServiceProvider) StoreCfg() config.StoreConfig {
	if sp.storeCfg == nil {
		cfg, err := env.NewStoreConfig()
		if err != nil {
			panic("failed to get store config: " + err.Error())
		}
		sp.storeCfg = cfg
	}
	return sp.storeCfg
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
}

// Transactor Транзакции есть только у postgres, REST хранилище работает без них
func (sp *ServiceProvider) Transactor(ctx context.Context) food.Transactor {
	if sp.StoreCfg().Driver() == config.StoreDriverPostgres {
		return sp.TXManager(ctx)
	}
	return food.NopTransactor()
}

func (sp *ServiceProvider) RemoteClient() *remote.Client {
	if sp.remoteClient == nil {
		sp.remoteClient = remote.NewClient(
			&http.Client{Timeout: sp.StoreCfg().Timeout()},
			sp.StoreCfg().BaseURL(),
			sp.Logger(),
		)
	}
	return sp.remoteClient
}

func (sp *ServiceProvider) FoodRepo(ctx context.Context) repository.FoodRepository {
	if sp.foodRepo == nil {
		switch sp.StoreCfg().Driver() {
		case config.StoreDriverPostgres:
			sp.foodRepo = food_repo.NewFoodRepository(sp.DBClient(ctx))
		default:
			sp.foodRepo = remote.NewFoodRepository(sp.RemoteClient())
		}
	}
	return sp.foodRepo
}

func (sp *ServiceProvider) HistoryRepo(ctx context.Context) repository.HistoryRepository {
	if sp.historyRepo == nil {
		switch sp.StoreCfg().Driver() {
		case config.StoreDriverPostgres:
			sp.historyRepo = history_repo.NewHistoryRepository(sp.DBClient(ctx))
		default:
			sp.historyRepo = remote.NewHistoryRepository(sp.RemoteClient())
		}
	}
	return sp.historyRepo
}

func (sp *ServiceProvider) FoodService(ctx context.Context) service.FoodService {
	if sp.foodServ == nil {
		sp.foodServ = food.NewFoodService(sp.FoodRepo(ctx), sp.Transactor(ctx))
	}
	return sp.foodServ
}

func (sp *ServiceProvider) FoodHandler(ctx context.Context) *foodAPI.Handler {
	if sp.foodHand == nil {
		sp.foodHand = foodAPI.NewHandler(foodAPI.HandlerDeps{Serv: sp.FoodService(ctx), Logger: sp.Logger()})
	}
	return sp.foodHand
}

func (sp *ServiceProvider) WheelCfg() config.WheelConfig {
	if sp.wheelCfg == nil {
		cfg, err := env.NewWheelConfig()
		if err != nil {
			panic("failed to get wheel config: " + err.Error())
		}
		sp.wheelCfg = cfg
	}
	return sp.wheelCfg
}

func (sp *ServiceProvider) WheelService(ctx context.Context) service.WheelService {
	if sp.wheelServ == nil {
		sp.wheelServ = wheel.NewWheelService(sp.WheelCfg(), sp.FoodRepo(ctx), sp.HistoryRepo(ctx), sp.Logger())
	}
	return sp.wheelServ
}

func (sp *ServiceProvider) WheelHandler(ctx context.Context) *wheelAPI.Handler {
	if sp.wheelHand == nil {
		sp.wheelHand = wheelAPI.NewHandler(wheelAPI.HandlerDeps{Serv: sp.WheelService(ctx), Logger: sp.Logger()})
	}
	return sp.wheelHand
}

func (sp *ServiceProvider) HistoryHandler(ctx context.Context) *historyAPI.Handler {
	if sp.historyHand == nil {
		sp.historyHand = historyAPI.NewHandler(historyAPI.HandlerDeps{Serv: sp.WheelService(ctx), Logger: sp.Logger()})
	}
	return sp.historyHand
}

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		r.Use(chimw.RequestID)
		r.Use(chimw.RealIP)
		r.Use(middleware.Logging(sp.Logger()))
		r.Use(chimw.Recoverer)

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("OK"))
		})

		r.Group(func(pr chi.Router) {
			pr.Use(middleware.Auth(sp.JWTCfg().AccessTokenSecretKey(), sp.Logger()))

			// Wheel endpoints
			wheelHandler := sp.WheelHandler(ctx)
			pr.Route("/wheel", func(rr chi.Router) {
				rr.Get("/", wheelHandler.State)
				rr.Post("/spin", wheelHandler.Spin)
				rr.Post("/reload", wheelHandler.Reload)
				rr.Get("/stream", wheelHandler.Stream)
			})

			// Food endpoints
			foodHandler := sp.FoodHandler(ctx)
			pr.Route("/foods", func(rr chi.Router) {
				rr.Get("/", foodHandler.List)
				rr.Post("/", foodHandler.Add)
				rr.Delete("/latest", foodHandler.DeleteLatest)
				rr.Get("/suggestions", foodHandler.Suggestions)
			})

			pr.Get("/history", sp.HistoryHandler(ctx).List)
		})

		sp.router = r
	}

	return sp.router
}

// Close освобождает пул соединений, если он создавался
func (sp *ServiceProvider) Close() {
	if sp.dbClient != nil {
		sp.dbClient.Close()
	}
}
