package handler

import (
	"log/slog"
	"net/http"

	"tourquote/internal/delivery/http/response"
	domainerrors "tourquote/internal/domain/errors"
	"tourquote/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler holds dependencies for catalog CRUD handlers
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// NameRequest represents the request body for creating or renaming a named document
type NameRequest struct {
	Name string `json:"name" validate:"required"`
}

// CityRequest represents the request body for creating or updating a city
type CityRequest struct {
	Name      string `json:"name" validate:"required"`
	CountryID string `json:"country_id" validate:"required"`
}

// ListCountries handles retrieving all countries
func (h *CatalogHandler) ListCountries(c echo.Context) error {
	countries, err := h.catalogUC.ListCountries(c.Request().Context())
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, countries, "Countries retrieved successfully")
}

// CreateCountry handles creating a new country
func (h *CatalogHandler) CreateCountry(c echo.Context) error {
	var req NameRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid country input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	country, err := h.catalogUC.CreateCountry(c.Request().Context(), req.Name)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, country, "Country created successfully")
}

// RenameCountry handles renaming a country
func (h *CatalogHandler) RenameCountry(c echo.Context) error {
	var req NameRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid country input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	country, err := h.catalogUC.RenameCountry(c.Request().Context(), c.Param("id"), req.Name)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, country, "Country renamed successfully")
}

// DeleteCountry handles deleting a country with its dependent cities and products
func (h *CatalogHandler) DeleteCountry(c echo.Context) error {
	result, err := h.catalogUC.DeleteCountry(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Country deleted successfully")
}

// ListCities handles retrieving all cities
func (h *CatalogHandler) ListCities(c echo.Context) error {
	cities, err := h.catalogUC.ListCities(c.Request().Context())
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cities, "Cities retrieved successfully")
}

// CreateCity handles creating a new city under a country
func (h *CatalogHandler) CreateCity(c echo.Context) error {
	var req CityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid city input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	city, err := h.catalogUC.CreateCity(c.Request().Context(), req.Name, req.CountryID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, city, "City created successfully")
}

// UpdateCity handles updating a city's name and owning country
func (h *CatalogHandler) UpdateCity(c echo.Context) error {
	var req CityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid city input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	city, err := h.catalogUC.UpdateCity(c.Request().Context(), c.Param("id"), req.Name, req.CountryID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, city, "City updated successfully")
}

// DeleteCity handles deleting a city with its dependent products
func (h *CatalogHandler) DeleteCity(c echo.Context) error {
	result, err := h.catalogUC.DeleteCity(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "City deleted successfully")
}

// ListCategories handles retrieving all categories
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.catalogUC.ListCategories(c.Request().Context())
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, categories, "Categories retrieved successfully")
}

// CreateCategory handles creating a new category
func (h *CatalogHandler) CreateCategory(c echo.Context) error {
	var req NameRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	category, err := h.catalogUC.CreateCategory(c.Request().Context(), req.Name)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, category, "Category created successfully")
}

// RenameCategory handles renaming a category
func (h *CatalogHandler) RenameCategory(c echo.Context) error {
	var req NameRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	category, err := h.catalogUC.RenameCategory(c.Request().Context(), c.Param("id"), req.Name)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, category, "Category renamed successfully")
}

// DeleteCategory handles deleting a category with its dependent products
func (h *CatalogHandler) DeleteCategory(c echo.Context) error {
	result, err := h.catalogUC.DeleteCategory(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Category deleted successfully")
}

// ListProducts handles retrieving all products
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	products, err := h.catalogUC.ListProducts(c.Request().Context())
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products, "Products retrieved successfully")
}

// CreateProduct handles creating a new product
func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	var input usecase.ProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	product, err := h.catalogUC.CreateProduct(c.Request().Context(), input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created successfully")
}

// UpdateProduct handles overwriting a product's editable fields
func (h *CatalogHandler) UpdateProduct(c echo.Context) error {
	var input usecase.ProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	product, err := h.catalogUC.UpdateProduct(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated successfully")
}

// DeleteProduct handles deleting a single product
func (h *CatalogHandler) DeleteProduct(c echo.Context) error {
	if err := h.catalogUC.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

func (h *CatalogHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
