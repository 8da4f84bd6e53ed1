package handler

import (
	"log/slog"
	"net/http"

	"vend/internal/delivery/api/middleware"
	"vend/internal/delivery/api/response"
	"vend/internal/domain/entity"
	"vend/internal/domain/service"
	"vend/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	LedgerUC  usecase.LedgerUsecase
	QRCodeSvc service.QRCodeService
	Logger    *slog.Logger
}

// OrderHandler holds dependencies for order handlers
type OrderHandler struct {
	ledgerUC  usecase.LedgerUsecase
	qrcodeSvc service.QRCodeService
	logger    *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		ledgerUC:  params.LedgerUC,
		qrcodeSvc: params.QRCodeSvc,
		logger:    params.Logger,
	}
}

// ListOrders returns the authenticated account's orders, newest first
func (h *OrderHandler) ListOrders(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	orders, err := h.ledgerUC.ListOrders(c.Request().Context(), accountID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// GetOrder returns one order by its shareable code
func (h *OrderHandler) GetOrder(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	order, err := h.ledgerUC.GetOrder(c.Request().Context(), accountID, h.isAdmin(c), c.Param("code"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// GetOrderQR renders the order code as a QR image
func (h *OrderHandler) GetOrderQR(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	// Access check first: only the owner (or an admin) may render the QR.
	order, err := h.ledgerUC.GetOrder(c.Request().Context(), accountID, h.isAdmin(c), c.Param("code"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.qrcodeSvc.RenderOrderCode(order.Code)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

func (h *OrderHandler) isAdmin(c echo.Context) bool {
	return middleware.HasRole(c, string(entity.RoleAdmin))
}
