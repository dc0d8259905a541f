package handlers

import (
	"vendora/internal/models"
	"vendora/internal/services/charge"
	"vendora/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type ChargeHandler struct {
	chargeService charge.Service
}

func NewChargeHandler(chargeService charge.Service) *ChargeHandler {
	return &ChargeHandler{chargeService: chargeService}
}

// ChargeCustomer confirms a payment intent for an existing customer and
// records the order.
func (h *ChargeHandler) ChargeCustomer(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	var input charge.Input
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	result, err := h.chargeService.Charge(c.Context(), claims.UserID, input)
	if err != nil {
		return response.Domain(c, err)
	}
	return response.Success(c, result.Message, result)
}
