package auth

import (
	"log/slog"
	"net/http"

	authsvc "bookexchange/service/auth"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type TokenReq struct {
	ClientID string `json:"clientId" validate:"required"`
}

type Controller struct {
	Svc authsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /requests/auth, POST /transactions/auth
func (h *Controller) Token(c echo.Context) error {
	var req TokenReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}

	token, err := h.Svc.IssueToken(c.Request().Context(), req.ClientID)
	if err != nil {
		switch authsvc.Code(err) {
		case authsvc.ErrBadInput, authsvc.ErrInvalidClient:
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "invalid client"})
		default:
			h.Log.Error("token issue", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"token": token})
}
