package routesV1

import (
	"github.com/drinkwithme-lk/server/internal/middleware"
	userRepo "github.com/drinkwithme-lk/server/internal/repository/user"
	routesV1Admin "github.com/drinkwithme-lk/server/internal/routes/v1/admin"
	routesV1Auth "github.com/drinkwithme-lk/server/internal/routes/v1/auth"
	routesV1Chat "github.com/drinkwithme-lk/server/internal/routes/v1/chat"
	routesV1Matching "github.com/drinkwithme-lk/server/internal/routes/v1/matching"
	routesV1Profile "github.com/drinkwithme-lk/server/internal/routes/v1/profile"
	routesV1Restaurant "github.com/drinkwithme-lk/server/internal/routes/v1/restaurant"
	authUseCase "github.com/drinkwithme-lk/server/internal/usecase/auth"
	chatUseCase "github.com/drinkwithme-lk/server/internal/usecase/chat"
	"github.com/drinkwithme-lk/server/internal/usecase/matching"
	profileUseCase "github.com/drinkwithme-lk/server/internal/usecase/profile"
	restaurantUseCase "github.com/drinkwithme-lk/server/internal/usecase/restaurant"
	"github.com/labstack/echo"
)

type UseCases struct {
	Auth       authUseCase.IAuthUseCase
	Matching   matching.IMatchingUseCase
	Restaurant restaurantUseCase.IRestaurantUseCase
	Chat       chatUseCase.IChatUseCase
	Profile    profileUseCase.IProfileUseCase
}

func InitV1Routes(e *echo.Echo, users userRepo.IUserRepo, cases UseCases) {
	v1 := e.Group("/v1")

	v1.POST("/auth/sign-up", func(c echo.Context) error {
		return routesV1Auth.SignUpHandler(c, cases.Auth)
	})
	v1.POST("/auth/sign-in", func(c echo.Context) error {
		return routesV1Auth.SignInHandler(c, cases.Auth)
	})

	// Public catalog.
	v1.GET("/restaurants", func(c echo.Context) error {
		return routesV1Restaurant.ListHandler(c, cases.Restaurant)
	})
	v1.GET("/restaurants/:id", func(c echo.Context) error {
		return routesV1Restaurant.GetHandler(c, cases.Restaurant)
	})
	v1.GET("/restaurants/:id/reviews", func(c echo.Context) error {
		return routesV1Restaurant.ReviewsHandler(c, cases.Restaurant)
	})

	authed := v1.Group("", middleware.JWTMiddleware(users))

	// Matching engine.
	authed.GET("/matching/candidates", func(c echo.Context) error {
		return routesV1Matching.CandidatesHandler(c, cases.Matching)
	})
	authed.POST("/matching/swipe/:id", func(c echo.Context) error {
		return routesV1Matching.SwipeHandler(c, cases.Matching)
	})
	authed.POST("/matching/reset", func(c echo.Context) error {
		return routesV1Matching.ResetLeftSwipesHandler(c, cases.Matching)
	})
	authed.GET("/matches", func(c echo.Context) error {
		return routesV1Matching.MatchesHandler(c, cases.Matching)
	})
	authed.GET("/selections", func(c echo.Context) error {
		return routesV1Matching.GetSelectionsHandler(c, cases.Matching)
	})
	authed.PUT("/selections", func(c echo.Context) error {
		return routesV1Matching.ReplaceSelectionsHandler(c, cases.Matching)
	})

	// Chat threads hang off matches.
	authed.GET("/matches/:id/messages", func(c echo.Context) error {
		return routesV1Chat.MessagesHandler(c, cases.Chat)
	})
	authed.POST("/matches/:id/messages", func(c echo.Context) error {
		return routesV1Chat.SendMessageHandler(c, cases.Chat)
	})
	authed.POST("/matches/:id/seen", func(c echo.Context) error {
		return routesV1Chat.MarkSeenHandler(c, cases.Chat)
	})

	// Profile.
	authed.GET("/profile", func(c echo.Context) error {
		return routesV1Profile.GetHandler(c, cases.Profile)
	})
	authed.PUT("/profile", func(c echo.Context) error {
		return routesV1Profile.UpdateHandler(c, cases.Profile)
	})

	// Reviews and owner flow.
	authed.POST("/restaurants/:id/reviews", func(c echo.Context) error {
		return routesV1Restaurant.AddReviewHandler(c, cases.Restaurant)
	})
	authed.GET("/owner/restaurant", func(c echo.Context) error {
		return routesV1Restaurant.MyRestaurantHandler(c, cases.Restaurant)
	})
	authed.POST("/owner/restaurants", func(c echo.Context) error {
		return routesV1Restaurant.SubmitHandler(c, cases.Restaurant)
	})
	authed.PUT("/owner/restaurants/:id", func(c echo.Context) error {
		return routesV1Restaurant.UpdateHandler(c, cases.Restaurant)
	})
	authed.GET("/owner/restaurants/:id/reservations", func(c echo.Context) error {
		return routesV1Restaurant.ReservationsHandler(c, cases.Restaurant)
	})

	// Admin review queue.
	authed.GET("/admin/restaurants", func(c echo.Context) error {
		return routesV1Admin.ListByStatusHandler(c, cases.Restaurant)
	})
	authed.POST("/admin/restaurants/:id/approve", func(c echo.Context) error {
		return routesV1Admin.ApproveHandler(c, cases.Restaurant)
	})
	authed.POST("/admin/restaurants/:id/reject", func(c echo.Context) error {
		return routesV1Admin.RejectHandler(c, cases.Restaurant)
	})
}
