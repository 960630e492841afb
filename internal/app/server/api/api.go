// Локальный HTTP API хранилища паролей. Слушает только loopback.
//
//GET    /api/v1/health              # Состояние сервиса (публичный)
//GET    /api/v1/access              # Состояние шлюза (публичный)
//POST   /api/v1/access/setup        # Первый пароль доступа (публичный)
//POST   /api/v1/access/unlock       # Разблокировка, выдает токен (публичный)
//POST   /api/v1/access/change       # Смена пароля доступа (auth)
//GET    /api/v1/credentials         # Список и поиск записей (auth)
//POST   /api/v1/credentials         # Создать запись (auth)
//GET    /api/v1/credentials/{id}    # Получить запись (auth)
//PUT    /api/v1/credentials/{id}    # Обновить запись (auth)
//DELETE /api/v1/credentials/{id}    # Удалить запись (auth)
//GET    /api/v1/export              # Выгрузка CSV (auth + пароль доступа)
//POST   /api/v1/import              # Загрузка CSV (auth)

package api

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	accessAPI "passkeeper/internal/app/server/api/http/access"
	credentialAPI "passkeeper/internal/app/server/api/http/credential"
	healthAPI "passkeeper/internal/app/server/api/http/health"
	"passkeeper/internal/app/server/api/http/middleware"
	"passkeeper/internal/app/server/api/http/middleware/auth"
	"passkeeper/internal/app/server/api/http/middleware/logger"
	transferAPI "passkeeper/internal/app/server/api/http/transfer"
	"passkeeper/internal/domain/access"
	"passkeeper/internal/domain/record"
	"passkeeper/internal/domain/session"
	"passkeeper/internal/domain/transfer"
)

// Deps - сервисы, которые обслуживает API
type Deps struct {
	Records      record.Servicer
	Gate         access.Servicer
	Transfer     transfer.Servicer
	Sessions     session.Servicer
	StorageState func() string
}

type Handlers struct {
	Health     *healthAPI.Handler
	Access     *accessAPI.Handler
	Credential *credentialAPI.Handler
	Transfer   *transferAPI.Handler
}

// New создает *chi.Mux с ВСЕМИ операциями через huma.Register
func New(deps Deps, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	config := huma.DefaultConfig("Passkeeper API", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer"},
	}

	API := humachi.New(mux, config)

	h := handlers(deps, log)
	h.Health.SetupRoutes(API)
	h.Access.SetupRoutes(API)
	h.Credential.SetupRoutes(API)
	h.Transfer.SetupRoutes(API)

	return mux
}

func handlers(deps Deps, log *slog.Logger) *Handlers {
	authMW := auth.New(deps.Sessions, log)
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(log, middlewares.GetAllAndClear(), deps.StorageState)

	middlewares.Add(loggerMW.Middleware())
	public := middlewares.GetAllAndClear()
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	accessHandler := accessAPI.NewHandler(deps.Gate, deps.Sessions, log, public, middlewares.GetAllAndClear())

	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	credentialHandler := credentialAPI.NewHandler(deps.Records, log, middlewares.GetAllAndClear())

	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	transferHandler := transferAPI.NewHandler(deps.Transfer, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health:     healthHandler,
		Access:     accessHandler,
		Credential: credentialHandler,
		Transfer:   transferHandler,
	}
}
