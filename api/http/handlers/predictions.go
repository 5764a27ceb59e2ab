package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/dkuznetsov13/enginehealth/api/http/presenter"
	"github.com/dkuznetsov13/enginehealth/pkg/prediction"
	"github.com/dkuznetsov13/enginehealth/pkg/security/jwt"
)

type PredictionsHandler struct {
	uc prediction.UseCase
}

func NewPredictionsHandler(uc prediction.UseCase) *PredictionsHandler {
	return &PredictionsHandler{uc: uc}
}

type createPredictionRequest struct {
	EngineRPM       float64 `json:"engine_rpm"`
	LubOilPressure  float64 `json:"lub_oil_pressure"`
	FuelPressure    float64 `json:"fuel_pressure"`
	CoolantPressure float64 `json:"coolant_pressure"`
	LubOilTemp      float64 `json:"lub_oil_temp"`
	CoolantTemp     float64 `json:"coolant_temp"`
	// Optional; the handler accepts but discards any caller timestamp or
	// owner — both are assigned server-side.
	Result    string     `json:"result,omitempty"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
	Owner     string     `json:"owner,omitempty"`
}

// Create persists one prediction record for the authenticated caller.
// @Summary Save a prediction record
// @Tags    predictions
// @Accept  json
// @Produce json
// @Param   input body createPredictionRequest true "sensor readings with optional result"
// @Security BearerAuth
// @Success 201 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /predictions/create [post]
func (h *PredictionsHandler) Create(c *fiber.Ctx) error {
	user, ok := jwt.UserFromCtx(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "could not validate credentials")
	}
	var req createPredictionRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}

	stored, err := h.uc.Save(c.Context(), user.ID, prediction.Input{
		EngineRPM:       req.EngineRPM,
		LubOilPressure:  req.LubOilPressure,
		FuelPressure:    req.FuelPressure,
		CoolantPressure: req.CoolantPressure,
		LubOilTemp:      req.LubOilTemp,
		CoolantTemp:     req.CoolantTemp,
		Result:          req.Result,
	})
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "store unavailable")
	}

	return presenter.JSON(c, http.StatusCreated, fiber.Map{
		"msg":        "Prediction saved",
		"prediction": presenter.Externalize(stored),
	})
}

// List returns the caller's stored records, newest first.
// @Summary List own prediction records
// @Tags    predictions
// @Produce json
// @Param   limit  query int false "page size (max 200)"
// @Param   offset query int false "page offset"
// @Security BearerAuth
// @Success 200 {array} map[string]any
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /predictions [get]
func (h *PredictionsHandler) List(c *fiber.Ctx) error {
	user, ok := jwt.UserFromCtx(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "could not validate credentials")
	}
	limit, offset := parseLimitOffset(c, 50)
	records, err := h.uc.List(c.Context(), user.ID, limit, offset)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "store unavailable")
	}
	if records == nil {
		records = []prediction.Prediction{}
	}
	return presenter.JSON(c, http.StatusOK, presenter.Externalize(records))
}
