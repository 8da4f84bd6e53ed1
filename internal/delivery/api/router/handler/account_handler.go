package handler

import (
	"log/slog"
	"net/http"

	"vend/internal/delivery/api/middleware"
	"vend/internal/delivery/api/response"
	"vend/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AuthUC   usecase.AuthUsecase
	LedgerUC usecase.LedgerUsecase
	Logger   *slog.Logger
}

// AccountHandler holds dependencies for account-related handlers
type AccountHandler struct {
	authUC   usecase.AuthUsecase
	ledgerUC usecase.LedgerUsecase
	logger   *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		authUC:   params.AuthUC,
		ledgerUC: params.LedgerUC,
		logger:   params.Logger,
	}
}

// LoginRequest represents the request body for logging in
type LoginRequest struct {
	Email  string `json:"email" validate:"required,email"`
	Secret string `json:"secret" validate:"required"`
}

// AdjustCreditRequest represents the request body for an admin credit adjustment
type AdjustCreditRequest struct {
	Delta decimal.Decimal `json:"delta" validate:"required"`
}

// Login handles reseller login
func (h *AccountHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:  req.Email,
		Secret: req.Secret,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output)
}

// GetAccount handles retrieving the authenticated account
func (h *AccountHandler) GetAccount(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	account, err := h.ledgerUC.GetAccount(c.Request().Context(), accountID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, account)
}

// AdjustCredit handles an admin credit adjustment on an account
func (h *AccountHandler) AdjustCredit(c echo.Context) error {
	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid account ID")
	}

	var req AdjustCreditRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid credit adjustment input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	account, err := h.ledgerUC.AdjustCredit(c.Request().Context(), accountID, req.Delta)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, account)
}
