package handler

import (
	"log/slog"
	"net/http"

	"vend/internal/delivery/api/response"
	"vend/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SnapshotHandlerParams holds dependencies for SnapshotHandler, injected by Fx.
type SnapshotHandlerParams struct {
	fx.In

	BackupUC usecase.BackupUsecase
	Logger   *slog.Logger
}

// SnapshotHandler holds dependencies for snapshot handlers
type SnapshotHandler struct {
	backupUC usecase.BackupUsecase
	logger   *slog.Logger
}

// NewSnapshotHandler is the constructor for SnapshotHandler
func NewSnapshotHandler(params SnapshotHandlerParams) *SnapshotHandler {
	return &SnapshotHandler{
		backupUC: params.BackupUC,
		logger:   params.Logger,
	}
}

// ImportSnapshotRequest represents the request body for a snapshot import
type ImportSnapshotRequest struct {
	Key string `json:"key" validate:"required"`
}

// ExportSnapshot writes a full snapshot to the snapshot store (admin only)
func (h *SnapshotHandler) ExportSnapshot(c echo.Context) error {
	key, err := h.backupUC.ExportSnapshot(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"key": key})
}

// ImportSnapshot restores a snapshot from the store (admin only)
func (h *SnapshotHandler) ImportSnapshot(c echo.Context) error {
	var req ImportSnapshotRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid snapshot input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	summary, err := h.backupUC.ImportSnapshot(c.Request().Context(), req.Key)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary)
}
