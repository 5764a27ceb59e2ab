package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/dkuznetsov13/enginehealth/api/http/presenter"
	"github.com/dkuznetsov13/enginehealth/pkg/history"
)

// HistoryHandler serves the fixed training dataset as-is.
type HistoryHandler struct {
	data *history.Dataset
}

func NewHistoryHandler(data *history.Dataset) *HistoryHandler {
	return &HistoryHandler{data: data}
}

// Get returns every dataset record in file order.
// @Summary Historical sensor data
// @Tags    history
// @Produce json
// @Success 200 {array} history.Record
// @Router  /historical-data [get]
func (h *HistoryHandler) Get(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, h.data.Records())
}
