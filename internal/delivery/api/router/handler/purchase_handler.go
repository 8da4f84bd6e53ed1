package handler

import (
	"log/slog"
	"net/http"

	"vend/internal/delivery/api/middleware"
	"vend/internal/delivery/api/response"
	"vend/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PurchaseHandlerParams holds dependencies for PurchaseHandler, injected by Fx.
type PurchaseHandlerParams struct {
	fx.In

	PurchaseUC usecase.PurchaseUsecase
	Logger     *slog.Logger
}

// PurchaseHandler holds dependencies for purchase handlers
type PurchaseHandler struct {
	purchaseUC usecase.PurchaseUsecase
	logger     *slog.Logger
}

// NewPurchaseHandler is the constructor for PurchaseHandler
func NewPurchaseHandler(params PurchaseHandlerParams) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseUC: params.PurchaseUC,
		logger:     params.Logger,
	}
}

// CreatePurchaseRequest represents the request body for a purchase
type CreatePurchaseRequest struct {
	ProductID  string `json:"product_id" validate:"required,uuid"`
	Quantity   int    `json:"quantity" validate:"required,min=1"`
	CouponCode string `json:"coupon_code" validate:"omitempty,max=64"`
}

// CreatePurchase executes a purchase for the authenticated account
func (h *PurchaseHandler) CreatePurchase(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	var req CreatePurchaseRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid purchase input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	result, err := h.purchaseUC.Purchase(c.Request().Context(), &usecase.PurchaseInput{
		AccountID:  accountID,
		ProductID:  productID,
		Quantity:   req.Quantity,
		CouponCode: req.CouponCode,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, result)
}
