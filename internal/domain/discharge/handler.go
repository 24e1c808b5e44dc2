package discharge

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Handler exposes the discharge store over HTTP.
type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/admissions/active", h.ListActivePatients)
	api.PUT("/discharge/selection", h.SelectPatient)
	api.DELETE("/discharge/selection", h.ClearSelection)
	api.POST("/discharge", h.ProcessDischarge)
}

type activeListResponse struct {
	Items    []*ActivePatient `json:"items"`
	Selected *ActivePatient   `json:"selected,omitempty"`
	Loading  bool             `json:"loading"`
	Error    string           `json:"error,omitempty"`
}

func (h *Handler) ListActivePatients(c echo.Context) error {
	h.store.FetchActive(c.Request().Context())

	snap := h.store.Snapshot()
	if snap.Err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, snap.Err.Error())
	}
	return c.JSON(http.StatusOK, activeListResponse{
		Items:    snap.Items,
		Selected: snap.Selected,
		Loading:  snap.Loading,
	})
}

func (h *Handler) SelectPatient(c echo.Context) error {
	var p ActivePatient
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if p.ID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "admission id is required")
	}

	h.store.SelectPatient(&p)
	return c.JSON(http.StatusOK, &p)
}

func (h *Handler) ClearSelection(c echo.Context) error {
	h.store.SelectPatient(nil)
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ProcessDischarge(c echo.Context) error {
	var req DischargeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.store.ProcessDischarge(c.Request().Context(), req)
	if err != nil {
		var pf *PartialFailureError
		switch {
		case errors.Is(err, ErrNoPatientSelected), errors.Is(err, ErrNoCurrentUser):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		case errors.As(err, &pf):
			return c.JSON(http.StatusInternalServerError, map[string]interface{}{
				"error":           pf.Error(),
				"partial_failure": true,
				"admission_id":    pf.AdmissionID,
				"patient_id":      pf.PatientID,
			})
		default:
			return echo.NewHTTPError(http.StatusBadGateway, err.Error())
		}
	}

	snap := h.store.Snapshot()
	return c.JSON(http.StatusOK, activeListResponse{
		Items:   snap.Items,
		Loading: snap.Loading,
	})
}
