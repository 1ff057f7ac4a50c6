package catalog

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/drugs", h.List)
	api.GET("/drugs/search", h.Search)
}

func (h *Handler) List(c echo.Context) error {
	drugs, err := h.svc.List(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if drugs == nil {
		drugs = []*Drug{}
	}
	return c.JSON(http.StatusOK, drugs)
}

func (h *Handler) Search(c echo.Context) error {
	category := c.QueryParam("category")
	if category == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "category is required")
	}
	drugs, err := h.svc.FindByCategory(c.Request().Context(), category)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if drugs == nil {
		drugs = []*Drug{}
	}
	return c.JSON(http.StatusOK, drugs)
}
