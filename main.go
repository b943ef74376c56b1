// Package main book exchange API.
package main

import (
	"bookexchange/app/echoServer"
	authctrl "bookexchange/app/echoServer/controller/auth"
	requestctrl "bookexchange/app/echoServer/controller/request"
	transactionctrl "bookexchange/app/echoServer/controller/transaction"
	"bookexchange/app/echoServer/validation"
	"bookexchange/config"
	requestrepo "bookexchange/repository/request"
	transactionrepo "bookexchange/repository/transaction"
	authsvc "bookexchange/service/auth"
	requestsvc "bookexchange/service/request"
	transactionsvc "bookexchange/service/transaction"
	"bookexchange/util/database"
	"context"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// DB pool + migrations
	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		log.Error("db migrate failed", "err", err)
		os.Exit(1)
	}

	// repos
	rr := requestrepo.New(db)
	tr := transactionrepo.New(db)

	// services
	as := authsvc.New(cfg.ClientID, cfg.JWTSecret)
	rs := requestsvc.New(db.Pool, rr)
	ts := transactionsvc.New(tr)

	// controllers
	v := validator.New()
	authC := &authctrl.Controller{Svc: as, V: v, Log: log}
	requestC := &requestctrl.Controller{Svc: rs, V: v, Log: log}
	transactionC := &transactionctrl.Controller{Svc: ts, V: v, Log: log}

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

	echoServer.Register(e, echoServer.C{
		Auth:        authC,
		Request:     requestC,
		Transaction: transactionC,

		JWTSecret: cfg.JWTSecret,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}
	if port == "" {
		port = "8080"
	}

	slog.Info("starting server", "chosen_port", port)

	e.Logger.Fatal(e.Start(":" + port))
}
