package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"tourquote/internal/delivery/http/response"
	domainerrors "tourquote/internal/domain/errors"
	"tourquote/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// QuoteHandlerParams holds dependencies for QuoteHandler, injected by Fx.
type QuoteHandlerParams struct {
	fx.In

	QuoteUC usecase.QuoteUsecase
	Logger  *slog.Logger
}

// QuoteHandler holds dependencies for quote builder handlers
type QuoteHandler struct {
	quoteUC usecase.QuoteUsecase
	logger  *slog.Logger
}

// NewQuoteHandler is the constructor for QuoteHandler
func NewQuoteHandler(params QuoteHandlerParams) *QuoteHandler {
	return &QuoteHandler{
		quoteUC: params.QuoteUC,
		logger:  params.Logger,
	}
}

// AddItemRequest represents the request body for adding a catalog product to a day
type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

// CreateQuote handles starting a new quote session
func (h *QuoteHandler) CreateQuote(c echo.Context) error {
	quote, err := h.quoteUC.CreateQuote(c.Request().Context())
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, quote, "Quote created successfully")
}

// GetQuote handles retrieving a quote session
func (h *QuoteHandler) GetQuote(c echo.Context) error {
	quoteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid quote ID")
	}

	quote, err := h.quoteUC.GetQuote(c.Request().Context(), quoteID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, quote, "Quote retrieved successfully")
}

// UpdateInfo handles updating the quote header
func (h *QuoteHandler) UpdateInfo(c echo.Context) error {
	quoteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid quote ID")
	}

	var input usecase.QuoteInfoInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quote info input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	quote, err := h.quoteUC.UpdateInfo(c.Request().Context(), quoteID, input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, quote, "Quote info updated successfully")
}

// AddDay handles appending an empty day to the itinerary
func (h *QuoteHandler) AddDay(c echo.Context) error {
	quoteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid quote ID")
	}

	quote, err := h.quoteUC.AddDay(c.Request().Context(), quoteID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, quote, "Day added successfully")
}

// RemoveDay handles removing a day from the itinerary
func (h *QuoteHandler) RemoveDay(c echo.Context) error {
	quoteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid quote ID")
	}
	dayID, err := uuid.Parse(c.Param("dayId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid day ID")
	}

	quote, err := h.quoteUC.RemoveDay(c.Request().Context(), quoteID, dayID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, quote, "Day removed successfully")
}

// AddItem handles adding a catalog product to a day
func (h *QuoteHandler) AddItem(c echo.Context) error {
	quoteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid quote ID")
	}
	dayID, err := uuid.Parse(c.Param("dayId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid day ID")
	}

	var req AddItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid item input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	quote, err := h.quoteUC.AddItem(c.Request().Context(), quoteID, dayID, req.ProductID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, quote, "Item added successfully")
}

// UpdateItem handles editing an item's quantity or applied price
func (h *QuoteHandler) UpdateItem(c echo.Context) error {
	quoteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid quote ID")
	}
	dayID, err := uuid.Parse(c.Param("dayId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid day ID")
	}
	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid item ID")
	}

	var input usecase.ItemUpdateInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid item input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	quote, err := h.quoteUC.UpdateItem(c.Request().Context(), quoteID, dayID, itemID, input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, quote, "Item updated successfully")
}

// RemoveItem handles removing an item from a day
func (h *QuoteHandler) RemoveItem(c echo.Context) error {
	quoteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid quote ID")
	}
	dayID, err := uuid.Parse(c.Param("dayId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid day ID")
	}
	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid item ID")
	}

	quote, err := h.quoteUC.RemoveItem(c.Request().Context(), quoteID, dayID, itemID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, quote, "Item removed successfully")
}

// ExportText handles rendering the quote as a plain-text summary
func (h *QuoteHandler) ExportText(c echo.Context) error {
	quoteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid quote ID")
	}

	text, err := h.quoteUC.ExportText(c.Request().Context(), quoteID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "text/plain; charset=utf-8", []byte(text))
}

// ExportCSV handles rendering the quote as a CSV download
func (h *QuoteHandler) ExportCSV(c echo.Context) error {
	quoteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid quote ID")
	}

	export, err := h.quoteUC.ExportCSV(c.Request().Context(), quoteID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	// RFC 5987 encoding so Korean customer names survive the header
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s"; filename*=UTF-8''%s`,
			url.PathEscape(export.FileName), url.PathEscape(export.FileName)))

	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", export.Data)
}

func (h *QuoteHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
