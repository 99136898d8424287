package echoServer

import (
	"net/http"

	"movierental/app/echoServer/controller/auth"
	"movierental/app/echoServer/controller/genre"
	"movierental/app/echoServer/controller/movie"
	"movierental/app/echoServer/controller/rental"
	"movierental/app/echoServer/controller/returns"
	"movierental/app/echoServer/controller/user"
	"movierental/app/echoServer/jwtx"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

type C struct {
	Auth      *auth.Controller
	User      *user.Controller
	Genre     *genre.Controller
	Movie     *movie.Controller
	Rental    *rental.Controller
	Returns   *returns.Controller
	JWTSecret string
}

func Register(e *echo.Echo, c C) {
	// Public
	pub := e.Group("/v1")
	pub.POST("/users/register", c.Auth.Register)
	pub.POST("/users/login", c.Auth.Login)

	// Auth
	authed := e.Group("/v1")
	authed.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(c.JWTSecret),

		NewClaimsFunc: func(c echo.Context) jwt.Claims { return jwt.MapClaims{} },
		TokenLookup:   "header:Authorization:Bearer ",
	}))
	// user_id / role extraction from validated claims
	authed.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			uid, err := jwtx.UserIDFromContext(ctx)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
			}
			ctx.Set("user_id", uid)
			if role, err := jwtx.RoleFromContext(ctx); err == nil {
				ctx.Set("role", role)
			}
			return next(ctx)
		}
	})

	// Users
	authed.GET("/users/me", c.User.Me)
	authed.GET("/users/stats", c.User.RegistrationStats, adminOnly)
	authed.GET("/users/watchlist", c.User.Watchlist)
	authed.POST("/users/watchlist", c.User.AddToWatchlist)
	authed.DELETE("/users/watchlist/:movieId", c.User.RemoveFromWatchlist)

	// Genres
	authed.GET("/genres", c.Genre.List)
	authed.GET("/genres/:id", c.Genre.Detail)
	authed.POST("/genres", c.Genre.Create, adminOnly)
	authed.PUT("/genres/:id", c.Genre.Update, adminOnly)
	authed.DELETE("/genres/:id", c.Genre.Delete, adminOnly)

	// Movies
	authed.GET("/movies", c.Movie.List)
	authed.GET("/movies/search", c.Movie.Search)
	authed.GET("/movies/:id", c.Movie.Detail)
	authed.POST("/movies/:id/like", c.Movie.Like)
	authed.POST("/movies", c.Movie.Create, adminOnly)
	authed.PUT("/movies/:id", c.Movie.Update, adminOnly)
	authed.DELETE("/movies/:id", c.Movie.Delete, adminOnly)

	// Rentals
	authed.GET("/rentals", c.Rental.List, adminOnly)
	authed.GET("/rentals/my", c.Rental.MyHistory)
	authed.GET("/rentals/users/:id", c.Rental.ByUser, adminOnly)
	authed.GET("/rentals/quote/:movieId/:userId", c.Rental.Quote)
	authed.GET("/rentals/:id", c.Rental.Detail)
	authed.POST("/rentals", c.Rental.Open)

	// Returns
	authed.POST("/returns", c.Returns.Return)
}

func adminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if role, _ := c.Get("role").(string); role != "admin" {
			return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
		}
		return next(c)
	}
}
