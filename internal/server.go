package internal

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/drinkwithme-lk/server/internal/config"
	"github.com/drinkwithme-lk/server/internal/datastore/postgres"
	redisClient "github.com/drinkwithme-lk/server/internal/datastore/redis"
	chatRepo "github.com/drinkwithme-lk/server/internal/repository/chat"
	matchRepo "github.com/drinkwithme-lk/server/internal/repository/match"
	profileRepo "github.com/drinkwithme-lk/server/internal/repository/profile"
	restaurantRepo "github.com/drinkwithme-lk/server/internal/repository/restaurant"
	reviewRepo "github.com/drinkwithme-lk/server/internal/repository/review"
	selectionRepo "github.com/drinkwithme-lk/server/internal/repository/selection"
	swipeRepo "github.com/drinkwithme-lk/server/internal/repository/swipe"
	userRepo "github.com/drinkwithme-lk/server/internal/repository/user"
	routesV1 "github.com/drinkwithme-lk/server/internal/routes/v1"
	authUseCase "github.com/drinkwithme-lk/server/internal/usecase/auth"
	chatUseCase "github.com/drinkwithme-lk/server/internal/usecase/chat"
	"github.com/drinkwithme-lk/server/internal/usecase/matching"
	profileUseCase "github.com/drinkwithme-lk/server/internal/usecase/profile"
	restaurantUseCase "github.com/drinkwithme-lk/server/internal/usecase/restaurant"
	"github.com/drinkwithme-lk/server/pkg/jwt"
	"github.com/labstack/echo"
	"gorm.io/gorm"
)

type Server struct {
	writer     io.Writer
	httpServer *http.Server
	database   *gorm.DB
}

// Run wires the whole application and serves until ctx is cancelled.
// args[0] selects the config environment (e.g. "dev", "test").
func Run(ctx context.Context, w io.Writer, args []string) error {
	env := "dev"
	if len(args) > 0 && args[0] != "" {
		env = args[0]
	}

	cfg, err := config.NewConfig(env)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	server, err := NewServer(ctx, w, cfg)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.StartServer()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	}
}

func NewServer(ctx context.Context, w io.Writer, cfg *config.Config) (*Server, error) {
	jwt.SetSecret(cfg.Get("JWT_SECRET"))

	database, err := postgres.InitializeDB(
		cfg.Get("POSTGRES_USER"),
		cfg.Get("POSTGRES_PASSWORD"),
		cfg.Get("POSTGRES_DB_NAME"),
		cfg.Get("POSTGRES_HOST"),
		cfg.Get("POSTGRES_PORT"),
	)
	if err != nil {
		return nil, fmt.Errorf("initialize database: %w", err)
	}

	redis := redisClient.NewRedis(cfg.Get("REDIS_HOST") + ":" + cfg.Get("REDIS_PORT"))

	users := userRepo.New(database)
	profiles := profileRepo.New(database)
	selections := selectionRepo.New(database)
	swipes := swipeRepo.New(database, redis.Client)
	matches := matchRepo.New(database)
	restaurants := restaurantRepo.New(database)
	reviews := reviewRepo.New(database)
	chats := chatRepo.New(database)

	cases := routesV1.UseCases{
		Auth:       authUseCase.New(users, profiles),
		Matching:   matching.New(database, selections, swipes, matches, profiles),
		Restaurant: restaurantUseCase.New(restaurants, reviews, users),
		Chat:       chatUseCase.New(chats, matches),
		Profile:    profileUseCase.New(profiles),
	}

	e := echo.New()

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	})

	server := &Server{
		writer: w,
		httpServer: &http.Server{
			Addr:    ":" + cfg.Get("PORT"),
			Handler: e,
		},
		database: database,
	}

	e.GET("/health", server.handleHealthCheck)
	routesV1.InitV1Routes(e, users, cases)

	return server, nil
}

func (s *Server) StartServer() error {
	fmt.Fprintf(s.writer, "Server starting on %s\n", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleHealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "healthy",
	})
}
