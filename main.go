// Package main movie rental API.
//
// @title           Movie Rental API
// @version         1.0
// @description     movie rental service (catalog, users, rentals, returns).
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description  Use:  Bearer <JWT>
package main

import (
	"context"
	"log/slog"
	"os"

	"movierental/app/echoServer"
	authctrl "movierental/app/echoServer/controller/auth"
	genrectrl "movierental/app/echoServer/controller/genre"
	moviectrl "movierental/app/echoServer/controller/movie"
	rentalctrl "movierental/app/echoServer/controller/rental"
	returnctrl "movierental/app/echoServer/controller/returns"
	userctrl "movierental/app/echoServer/controller/user"
	"movierental/app/echoServer/validation"
	"movierental/config"
	authrepo "movierental/repository/auth"
	genrerepo "movierental/repository/genre"
	movierepo "movierental/repository/movie"
	rentalrepo "movierental/repository/rental"
	userrepo "movierental/repository/user"
	authsvc "movierental/service/auth"
	genresvc "movierental/service/genre"
	moviesvc "movierental/service/movie"
	rentalsvc "movierental/service/rental"
	usersvc "movierental/service/user"
	"movierental/util/database"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	// repos
	ar := authrepo.New(db)
	ur := userrepo.New(db)
	gr := genrerepo.New(db)
	mr := movierepo.New(db)
	rr := rentalrepo.New(db)

	// services
	as := authsvc.New(ar, cfg.JWTSecret)
	us := usersvc.New(ur, mr)
	gs := genresvc.New(gr)
	ms := moviesvc.New(mr, gr)
	rs := rentalsvc.New(rr, rentalsvc.PolicyByName(cfg.PricingPolicy))

	// controllers
	v := validator.New()
	authC := &authctrl.Controller{Svc: as, V: v, Log: log}
	userC := &userctrl.Controller{Svc: us, V: v, Log: log}
	genreC := &genrectrl.Controller{Svc: gs, V: v, Log: log}
	movieC := &moviectrl.Controller{Svc: ms, V: v, Log: log}
	rentalC := &rentalctrl.Controller{Svc: rs, V: v, Log: log}
	returnC := &returnctrl.Controller{Svc: rs, V: v, Log: log}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy and connected",
		})
	})

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Auth:    authC,
		User:    userC,
		Genre:   genreC,
		Movie:   movieC,
		Rental:  rentalC,
		Returns: returnC,

		JWTSecret: cfg.JWTSecret,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}
	if port == "" {
		port = "8080"
	}

	slog.Info("starting server", "port", port, "pricing_policy", cfg.PricingPolicy)

	e.Logger.Fatal(e.Start(":" + port))
}
