package app

import (
	"context"
	"net/http"

	authAPI "wheel_backend/internal/api/auth"
	wheelAPI "wheel_backend/internal/api/wheel"
	"wheel_backend/internal/config"
	"wheel_backend/internal/config/env"
	"wheel_backend/internal/middleware"
	"wheel_backend/internal/repository"
	"wheel_backend/internal/repository/auth_repo"
	"wheel_backend/internal/repository/bet_repo"
	"wheel_backend/internal/repository/jackpot_repo"
	"wheel_backend/internal/repository/user_repo"
	"wheel_backend/internal/service"
	authServ "wheel_backend/internal/service/auth"
	wheelServ "wheel_backend/internal/service/wheel"
	"wheel_backend/internal/ws"
	"wheel_backend/pkg/resp"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ServiceProvider struct {
	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Auth bits
	jwtConfig config.JWTConfig
	authRepo  repository.AuthRepository
	authSrv   service.AuthService
	authHand  *authAPI.Handler

	// User bits
	userRepo repository.UserRepository

	// Wheel bits
	wheelCfg    config.WheelConfig
	betRepo     repository.BetRepository
	jackpotRepo repository.JackpotRepository
	drawer      wheelServ.Drawer
	wheelSrv    service.WheelService
	wheelHand   *wheelAPI.Handler

	// Notifications
	hub *ws.Hub

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
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

func (sp *ServiceProvider) JWTConfig() config.JWTConfig {
	if sp.jwtConfig == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtConfig = cfg
	}
	return sp.jwtConfig
}

func (sp *ServiceProvider) WheelCfg() config.WheelConfig {
	if sp.wheelCfg == nil {
		cfg, err := env.NewWheelConfigFromYAML("config.yaml")
		if err != nil {
			panic("failed to get wheel config: " + err.Error())
		}
		sp.wheelCfg = cfg
	}
	return sp.wheelCfg
}

func (sp *ServiceProvider) AuthRepo(ctx context.Context) repository.AuthRepository {
	if sp.authRepo == nil {
		sp.authRepo = auth_repo.NewAuthRepository(sp.DBClient(ctx))
	}
	return sp.authRepo
}

func (sp *ServiceProvider) UserRepo(ctx context.Context) repository.UserRepository {
	if sp.userRepo == nil {
		sp.userRepo = user_repo.NewUserRepository(sp.DBClient(ctx))
	}
	return sp.userRepo
}

func (sp *ServiceProvider) BetRepo(ctx context.Context) repository.BetRepository {
	if sp.betRepo == nil {
		sp.betRepo = bet_repo.NewBetRepository(sp.DBClient(ctx))
	}
	return sp.betRepo
}

func (sp *ServiceProvider) JackpotRepo(ctx context.Context) repository.JackpotRepository {
	if sp.jackpotRepo == nil {
		sp.jackpotRepo = jackpot_repo.NewJackpotRepository(sp.DBClient(ctx))
	}
	return sp.jackpotRepo
}

func (sp *ServiceProvider) Drawer() wheelServ.Drawer {
	if sp.drawer == nil {
		sp.drawer = wheelServ.NewCryptoDrawer()
	}
	return sp.drawer
}

func (sp *ServiceProvider) Hub(ctx context.Context) *ws.Hub {
	if sp.hub == nil {
		jackpotRepo := sp.JackpotRepo(ctx)
		// Новый наблюдатель получает снапшот текущего джекпота
		sp.hub = ws.NewHub(func(ctx context.Context) (string, any, error) {
			coins, err := jackpotRepo.GetJackpot(ctx)
			if err != nil {
				return "", nil, err
			}
			return wheelServ.EventJackpotUpdate, map[string]any{"coins": coins}, nil
		})
	}
	return sp.hub
}

func (sp *ServiceProvider) AuthService(ctx context.Context) service.AuthService {
	if sp.authSrv == nil {
		sp.authSrv = authServ.NewAuthService(
			sp.TXManager(ctx),
			sp.UserRepo(ctx),
			sp.AuthRepo(ctx),
			sp.JWTConfig(),
			sp.WheelCfg().StartBalance(),
		)
	}
	return sp.authSrv
}

func (sp *ServiceProvider) WheelService(ctx context.Context) service.WheelService {
	if sp.wheelSrv == nil {
		sp.wheelSrv = wheelServ.NewWheelService(
			sp.WheelCfg(),
			sp.Drawer(),
			sp.UserRepo(ctx),
			sp.BetRepo(ctx),
			sp.JackpotRepo(ctx),
			sp.TXManager(ctx),
			sp.Hub(ctx),
		)
	}
	return sp.wheelSrv
}

func (sp *ServiceProvider) AuthHandler(ctx context.Context) *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{
			Serv: sp.AuthService(ctx),
		})
	}
	return sp.authHand
}

func (sp *ServiceProvider) WheelHandler(ctx context.Context) *wheelAPI.Handler {
	if sp.wheelHand == nil {
		sp.wheelHand = wheelAPI.NewHandler(wheelAPI.HandlerDeps{
			Serv: sp.WheelService(ctx),
		})
	}
	return sp.wheelHand
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

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			resp.WriteJSONResponse(w, http.StatusOK, map[string]bool{"ok": true})
		})

		// Auth endpoints
		authHandler := sp.AuthHandler(ctx)
		r.Route("/auth", func(rr chi.Router) {
			rr.Post("/register", authHandler.Register)
			rr.Post("/login", authHandler.Login)
			rr.Post("/refresh", authHandler.Refresh)
			rr.Post("/logout", authHandler.Logout)
		})

		// Public wheel endpoints
		wheelHandler := sp.WheelHandler(ctx)
		r.Get("/jackpot", wheelHandler.Jackpot)
		r.Get("/outcomes", wheelHandler.Outcomes)

		// Websocket рассылка результатов и джекпота
		r.Handle("/ws", sp.Hub(ctx).Handler())

		// Endpoints под авторизацией
		r.Group(func(rr chi.Router) {
			rr.Use(middleware.Auth(sp.JWTConfig()))
			rr.Get("/me", authHandler.Me)
			rr.Get("/bets/history", wheelHandler.History)
			rr.Post("/spin", wheelHandler.Spin)
		})

		sp.router = r
	}

	return sp.router
}
