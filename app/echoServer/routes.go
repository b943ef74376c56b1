package echoServer

import (
	"bookexchange/app/echoServer/controller/auth"
	"bookexchange/app/echoServer/controller/request"
	"bookexchange/app/echoServer/controller/transaction"

	"github.com/labstack/echo/v4"
)

type C struct {
	Auth        *auth.Controller
	Request     *request.Controller
	Transaction *transaction.Controller

	JWTSecret string
}

func Register(e *echo.Echo, c C) {
	// Public: credential issuance
	e.POST("/requests/auth", c.Auth.Token)
	e.POST("/transactions/auth", c.Auth.Token)

	bearer := JWTAuth(c.JWTSecret)

	// Requests
	req := e.Group("/requests", bearer)
	req.POST("", c.Request.Create)
	req.GET("", c.Request.List)
	req.GET("/user/:userId", c.Request.ListForUser)
	req.GET("/:id", c.Request.Detail)
	req.PUT("/:id", c.Request.UpdateStatus)
	req.DELETE("/:id", c.Request.Delete)

	// Transactions
	txn := e.Group("/transactions", bearer)
	txn.POST("", c.Transaction.Create)
	txn.GET("", c.Transaction.List)
	txn.GET("/request/:exchangeRequestId", c.Transaction.DetailByRequest)
	txn.GET("/:id", c.Transaction.Detail)
	txn.PUT("/:id", c.Transaction.Update)
	txn.DELETE("/:id", c.Transaction.Delete)
}
