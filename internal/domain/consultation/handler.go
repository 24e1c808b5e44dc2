package consultation

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// Handler exposes the consultation store over HTTP. It reads snapshots
// and invokes store operations; no business logic lives here.
type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/consultations", h.ListConsultations)
	api.POST("/consultations", h.CreateConsultation)
	api.PATCH("/consultations/:id", h.UpdateConsultation)
}

type listResponse struct {
	Items   []*Consultation `json:"items"`
	Loading bool            `json:"loading"`
	Error   string          `json:"error,omitempty"`
}

func (h *Handler) ListConsultations(c echo.Context) error {
	h.store.FetchAll(c.Request().Context())

	snap := h.store.Snapshot()
	if snap.Err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, snap.Err.Error())
	}
	return c.JSON(http.StatusOK, listResponse{Items: snap.Items, Loading: snap.Loading})
}

func (h *Handler) CreateConsultation(c echo.Context) error {
	var draft Draft
	if err := c.Bind(&draft); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if draft.MRN == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "mrn is required")
	}

	created := h.store.Create(c.Request().Context(), draft)
	if created == nil {
		snap := h.store.Snapshot()
		return echo.NewHTTPError(http.StatusBadGateway, snap.Err.Error())
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *Handler) UpdateConsultation(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var fields Update
	if err := c.Bind(&fields); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	h.store.Update(c.Request().Context(), id, fields)

	snap := h.store.Snapshot()
	if snap.Err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, snap.Err.Error())
	}
	for _, item := range snap.Items {
		if item.ID == id {
			return c.JSON(http.StatusOK, item)
		}
	}
	return c.NoContent(http.StatusNoContent)
}
