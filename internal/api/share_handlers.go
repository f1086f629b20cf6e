package api

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/fitledger/fitledger/internal/services"
)

type createShareRequest struct {
	ReceiverID uint                     `json:"receiver_id"`
	Scope      services.ShareScopeInput `json:"scope"`
	StartDate  time.Time                `json:"start_date"`
	EndDate    time.Time                `json:"end_date"`
}

type previewShareRequest struct {
	Scope     services.ShareScopeInput `json:"scope"`
	StartDate time.Time                `json:"start_date"`
	EndDate   time.Time                `json:"end_date"`
}

func (handler *Handler) CreateShare(c *fiber.Ctx) error {
	var req createShareRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	share, err := handler.shares.CreateShare(currentUserID(c), req.ReceiverID, req.Scope, req.StartDate, req.EndDate)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"share": share})
}

func (handler *Handler) ListShares(c *fiber.Ctx) error {
	userID := currentUserID(c)

	sent, err := handler.shares.ListForSender(userID)
	if err != nil {
		return respondError(c, err)
	}
	received, err := handler.shares.ListForReceiver(userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"sent": sent, "received": received})
}

func (handler *Handler) ResolveShare(c *fiber.Ctx) error {
	shareID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid share id")
	}

	var asOf *time.Time
	if raw := c.Query("as_of"); raw != "" {
		parsed, err := parseTimeParam(raw)
		if err != nil {
			return badRequest(c, "invalid as_of timestamp")
		}
		asOf = &parsed
	}

	data, err := handler.shares.ResolveShare(shareID, currentUserID(c), asOf)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(data)
}

func (handler *Handler) PreviewShare(c *fiber.Ctx) error {
	var req previewShareRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	data, err := handler.shares.PreviewShare(currentUserID(c), req.Scope, req.StartDate, req.EndDate)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(data)
}

func (handler *Handler) RevokeShare(c *fiber.Ctx) error {
	shareID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid share id")
	}

	if err := handler.shares.RevokeShare(shareID, currentUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ShareQR renders the share's resolve URL as a QR code PNG so the receiver
// can open it on another device.
func (handler *Handler) ShareQR(c *fiber.Ctx) error {
	shareID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid share id")
	}

	share, err := handler.shares.GetShare(shareID, currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}

	shareURL := fmt.Sprintf("%s/api/shares/%s", handler.baseURL, share.ID)
	png, err := qrcode.Encode(shareURL, qrcode.Medium, 256)
	if err != nil {
		return respondError(c, err)
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}
