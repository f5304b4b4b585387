package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/99minutos/auth-system/docs"
	"github.com/99minutos/auth-system/internal/api/handler"
	"github.com/99minutos/auth-system/internal/api/middleware"
	"github.com/99minutos/auth-system/internal/core/service"
	"github.com/99minutos/auth-system/internal/infrastructure/crypto"
	mongorepo "github.com/99minutos/auth-system/internal/infrastructure/db/mongo"
	redisrepo "github.com/99minutos/auth-system/internal/infrastructure/db/redis"
	"github.com/99minutos/auth-system/internal/infrastructure/token"
	"github.com/99minutos/auth-system/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(log))
	e.Use(echomiddleware.CORS())

	// --- Dependencies ---
	users := mongorepo.NewUserRepository(db)
	tokenGenerator := token.NewJWTGenerator(cfg.Token.Secret, cfg.Token.TTL)
	tokens := redisrepo.NewAccessTokenCache(rdb, users, tokenGenerator.TTL())
	encrypter := crypto.NewBcryptEncrypter(cfg.Bcrypt.Cost)

	authUseCase := service.NewAuthUseCase(service.AuthDependencies{
		LoadUserByEmailRepository:   users,
		Encrypter:                   encrypter,
		TokenGenerator:              tokenGenerator,
		UpdateAccessTokenRepository: tokens,
	}, log)
	signUpService := service.NewSignUpService(users, encrypter, log)
	authHandler := handler.NewAuthHandler(authUseCase, signUpService)

	// --- Auth routes ---
	apiGroup := e.Group("/api", middleware.ContentTypeJSON())
	apiGroup.POST("/login", authHandler.Login)
	apiGroup.POST("/signup", authHandler.SignUp)
	apiGroup.GET("/me", authHandler.Me, middleware.Auth(cfg.Token.Secret, tokens))

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(
		handler.MongoCheck(db),
		handler.RedisCheck(rdb),
	)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operations ---
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
