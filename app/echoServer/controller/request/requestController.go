package request

import (
	"log/slog"
	"net/http"

	"bookexchange/model"
	rs "bookexchange/service/request"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc rs.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /requests
func (h *Controller) Create(c echo.Context) error {
	var req CreateRequestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}

	out, err := h.Svc.Create(c.Request().Context(), rs.CreateInput{
		RequesterID:     req.RequesterID,
		CounterpartyID:  req.CounterpartyID,
		BookID:          req.BookID,
		DeliveryMethod:  req.DeliveryMethod,
		Duration:        req.Duration,
		NegotiatedTerms: req.NegotiatedTerms,
	})
	if err != nil {
		h.Log.Error("request create", "err", err)
		switch rs.Code(err) {
		case rs.ErrBadInput:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "missing required fields"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "request created",
		"request": out,
	})
}

// GET /requests
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.List(c.Request().Context())
	if err != nil {
		h.Log.Error("request list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	if rows == nil {
		rows = []model.Request{}
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /requests/user/:userId
func (h *Controller) ListForUser(c echo.Context) error {
	rows, err := h.Svc.ListForUser(c.Request().Context(), c.Param("userId"))
	if err != nil {
		h.Log.Error("request list for user", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	if rows == nil {
		rows = []model.Request{}
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /requests/:id
func (h *Controller) Detail(c echo.Context) error {
	out, err := h.Svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		switch rs.Code(err) {
		case rs.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "request not found"})
		default:
			h.Log.Error("request detail", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, out)
}

// PUT /requests/:id
func (h *Controller) UpdateStatus(c echo.Context) error {
	var req UpdateStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}

	out, err := h.Svc.UpdateStatus(c.Request().Context(), c.Param("id"), model.RequestStatus(req.Status))
	if err != nil {
		switch rs.Code(err) {
		case rs.ErrBadStatus:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid status"})
		case rs.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "request not found"})
		default:
			h.Log.Error("request update status", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, out)
}

// DELETE /requests/:id
func (h *Controller) Delete(c echo.Context) error {
	if err := h.Svc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		switch rs.Code(err) {
		case rs.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "request not found"})
		default:
			h.Log.Error("request delete", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "request deleted"})
}
