package handler

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"cinema_booking/config"
	"cinema_booking/constants"
	"cinema_booking/database"
	"cinema_booking/helper"
	"cinema_booking/model"
	"cinema_booking/utils"

	"github.com/gofiber/fiber/v2"
)

// PayOS Service
type PayOS struct {
	Config model.PayOSConfig
}

func NewPayOS() *PayOS {
	return &PayOS{
		Config: model.PayOSConfig{
			ClientId:    config.Config("PAYOS_CLIENT_ID"),
			ApiKey:      config.Config("PAYOS_API_KEY"),
			ChecksumKey: config.Config("PAYOS_CHECKSUM_KEY"),
			CheckoutURL: config.ConfigDefault("PAYOS_CHECKOUT_URL", "https://pay.payos.vn/web"),
			ReturnURL:   config.Config("APP_URL") + "/payments/success",
			CancelURL:   config.Config("APP_URL") + "/payments/cancel",
		},
	}
}

// Tạo checkout URL kèm chữ ký
func (p *PayOS) BuildCheckoutUrl(req model.PayOSRequest) (string, error) {
	signature, err := p.generateSignature(req)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s?orderCode=%d&amount=%d&description=%s&signature=%s",
		p.Config.CheckoutURL, req.OrderCode, req.Amount, req.Description, signature), nil
}

// Ký theo chuẩn PayOS: các field sắp xếp alphabet, nối dạng key=value&...
func (p *PayOS) generateSignature(req model.PayOSRequest) (string, error) {
	data := fmt.Sprintf("amount=%d&cancelUrl=%s&description=%s&orderCode=%d&returnUrl=%s",
		req.Amount, p.Config.CancelURL, req.Description, req.OrderCode, p.Config.ReturnURL)

	h := hmac.New(sha256.New, []byte(p.Config.ChecksumKey))
	if _, err := h.Write([]byte(data)); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// CreatePaymentLink tạo link thanh toán PayOS cho một booking PENDING,
// trả về checkout URL kèm mã QR (PNG base64).
func CreatePaymentLink(c *fiber.Ctx) error {
	var input model.CreatePaymentLinkInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	if input.BookingId == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Thiếu bookingId", nil)
	}

	store := helper.NewSQLPaymentStore(database.DB)
	booking, err := store.GetBooking(input.BookingId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.SERVER_ERROR, err)
	}
	if booking == nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Booking không tồn tại", nil)
	}
	if booking.Status != constants.BOOKING_PENDING {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Booking đã được thanh toán hoặc đã huỷ", nil)
	}

	amount := int64(helper.ParseAmount(booking.TotalPrice))
	description := input.Description
	if description == "" {
		description = fmt.Sprintf("Thanh toan don %d", booking.ID)
	}

	payos := NewPayOS()
	req := model.PayOSRequest{
		OrderCode:   time.Now().UnixMilli(),
		Amount:      amount,
		Description: description,
	}
	checkoutUrl, err := payos.BuildCheckoutUrl(req)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể tạo link thanh toán", err)
	}

	qrPng, err := utils.GenerateQRCode(checkoutUrl, 256)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể tạo mã QR", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"orderCode":   strconv.FormatInt(req.OrderCode, 10),
		"amount":      amount,
		"checkoutUrl": checkoutUrl,
		"qrCode":      base64.StdEncoding.EncodeToString(qrPng),
	})
}
