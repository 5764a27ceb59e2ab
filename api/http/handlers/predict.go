package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/dkuznetsov13/enginehealth/api/http/presenter"
	"github.com/dkuznetsov13/enginehealth/pkg/inference"
)

type PredictHandler struct {
	engine inference.UseCase
}

func NewPredictHandler(engine inference.UseCase) *PredictHandler {
	return &PredictHandler{engine: engine}
}

// Predict runs ephemeral, unauthenticated inference over one feature vector.
// @Summary Predict engine condition
// @Description Body is a bare JSON array of exactly 6 readings: engine rpm, lub oil pressure, fuel pressure, coolant pressure, lub oil temp, coolant temp.
// @Tags    inference
// @Accept  json
// @Produce json
// @Param   features body []float64 true "6 sensor readings"
// @Success 200 {object} inference.Result
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /predict [post]
func (h *PredictHandler) Predict(c *fiber.Ctx) error {
	// BodyParser targets structs; the wire format here is a bare array.
	var features []float64
	if err := json.Unmarshal(c.Body(), &features); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "expected a JSON array of numbers")
	}

	result, err := h.engine.Predict(c.Context(), features)
	if err != nil {
		if errors.Is(err, inference.ErrInvalidFeatureVector) {
			return presenter.Error(c, http.StatusBadRequest, "expected 6 features")
		}
		var modelErr *inference.ModelError
		if errors.As(err, &modelErr) {
			return presenter.Error(c, http.StatusInternalServerError, modelErr.Error())
		}
		return presenter.Error(c, http.StatusInternalServerError, "prediction failed")
	}

	return presenter.JSON(c, http.StatusOK, result)
}
