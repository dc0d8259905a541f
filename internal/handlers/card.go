package handlers

import (
	"vendora/internal/models"
	"vendora/internal/services/card"
	"vendora/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type CardHandler struct {
	cardService card.Service
}

func NewCardHandler(cardService card.Service) *CardHandler {
	return &CardHandler{cardService: cardService}
}

// CreateCardToken attaches and validates a payment method, optionally
// storing the redacted card.
func (h *CardHandler) CreateCardToken(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	var input card.CreateCardInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	result, err := h.cardService.CreateCard(c.Context(), claims.UserID, input)
	if err != nil {
		return response.Domain(c, err)
	}

	message := "Card validated successfully"
	if result.Saved {
		message = "Card saved successfully"
	}
	return response.Success(c, message, result)
}

// RetrieveCard fetches the remote payment method detail.
func (h *CardHandler) RetrieveCard(c *fiber.Ctx) error {
	detail, err := h.cardService.RetrieveCard(c.Context(), c.Params("customer_id"), c.Params("card_id"))
	if err != nil {
		return response.Domain(c, err)
	}
	return response.Success(c, "Card retrieved successfully", detail)
}

// ListCards returns the caller's stored cards.
func (h *CardHandler) ListCards(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	cards, err := h.cardService.ListCards(c.Context(), claims.UserID)
	if err != nil {
		return response.Domain(c, err)
	}
	return response.Success(c, "Cards retrieved successfully", cards)
}

// UpdateCard modifies the remote payment method and refreshes the stored row.
func (h *CardHandler) UpdateCard(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	var input card.UpdateCardInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	result, err := h.cardService.UpdateCard(c.Context(), claims.UserID, input)
	if err != nil {
		return response.Domain(c, err)
	}
	return response.Success(c, "Card updated successfully", result)
}

// DeleteCard detaches the remote method, removes the stored row and discards
// the remote customer.
func (h *CardHandler) DeleteCard(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	var input struct {
		CardNumber string `json:"card_number"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	if err := h.cardService.DeleteCard(c.Context(), claims.UserID, input.CardNumber); err != nil {
		return response.Domain(c, err)
	}
	return response.Success(c, "Card deleted successfully", nil)
}
