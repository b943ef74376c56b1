package transaction

import (
	"log/slog"
	"net/http"

	"bookexchange/model"
	ts "bookexchange/service/transaction"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc ts.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /transactions
func (h *Controller) Create(c echo.Context) error {
	var req CreateTransactionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}

	out, err := h.Svc.Create(c.Request().Context(), ts.CreateInput{
		RequestID: req.RequestID,
		OwnerID:   req.OwnerID,
		BookID:    req.BookID,
		Status:    req.Status,
	})
	if err != nil {
		switch ts.Code(err) {
		case ts.ErrBadInput:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "missing required fields"})
		case ts.ErrBadStatus:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid status"})
		case ts.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "request not found"})
		default:
			h.Log.Error("transaction create", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message":     "transaction created",
		"transaction": out,
	})
}

// GET /transactions
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.List(c.Request().Context())
	if err != nil {
		h.Log.Error("transaction list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	if rows == nil {
		rows = []model.Transaction{}
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /transactions/request/:exchangeRequestId
func (h *Controller) DetailByRequest(c echo.Context) error {
	out, err := h.Svc.GetByRequestID(c.Request().Context(), c.Param("exchangeRequestId"))
	if err != nil {
		switch ts.Code(err) {
		case ts.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "transaction not found"})
		default:
			h.Log.Error("transaction by request", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, out)
}

// GET /transactions/:id
func (h *Controller) Detail(c echo.Context) error {
	out, err := h.Svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		switch ts.Code(err) {
		case ts.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "transaction not found"})
		default:
			h.Log.Error("transaction detail", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, out)
}

// PUT /transactions/:id
func (h *Controller) Update(c echo.Context) error {
	var req UpdateTransactionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}

	out, err := h.Svc.Update(c.Request().Context(), c.Param("id"), ts.UpdateInput{
		Status:         req.Status,
		BookReturnedAt: req.BookReturnedDate,
	})
	if err != nil {
		switch ts.Code(err) {
		case ts.ErrBadStatus:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid status"})
		case ts.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "transaction not found"})
		default:
			h.Log.Error("transaction update", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, out)
}

// DELETE /transactions/:id
func (h *Controller) Delete(c echo.Context) error {
	if err := h.Svc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		switch ts.Code(err) {
		case ts.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "transaction not found"})
		default:
			h.Log.Error("transaction delete", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "transaction deleted"})
}
