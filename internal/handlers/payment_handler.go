package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/smartque/smartque-api/internal/httperr"
	"github.com/smartque/smartque-api/internal/httpresp"
	"github.com/smartque/smartque-api/internal/models"
	"github.com/smartque/smartque-api/internal/payments/mpesa"
)

type PaymentHandler struct {
	db     *gorm.DB
	client *mpesa.Client
	log    *logrus.Logger
}

func NewPaymentHandler(db *gorm.DB, client *mpesa.Client, log *logrus.Logger) *PaymentHandler {
	return &PaymentHandler{db: db, client: client, log: log}
}

type STKPushRequest struct {
	PhoneNumber      string  `json:"phoneNumber" binding:"required"`
	Amount           float64 `json:"amount" binding:"required"`
	AccountReference string  `json:"accountReference"`
	TransactionDesc  string  `json:"transactionDesc"`
}

func (h *PaymentHandler) STKPush(c *gin.Context) {
	var req STKPushRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Phone number and amount are required")
		return
	}

	phone := normalizePhone(req.PhoneNumber)
	if phone == "" {
		httperr.BadRequest(c, "Invalid phone number. Use format 2547XXXXXXXX.")
		return
	}
	if req.Amount < 1 {
		httperr.BadRequest(c, "Amount must be at least 1")
		return
	}

	record := models.PaymentRequest{
		Reference:        uuid.NewString(),
		PhoneNumber:      phone,
		Amount:           req.Amount,
		AccountReference: req.AccountReference,
		TransactionDesc:  req.TransactionDesc,
		Status:           "initiated",
	}
	if err := h.db.Create(&record).Error; err != nil {
		httperr.Internal(c, "Failed to record payment request")
		return
	}

	resp, err := h.client.STKPush(c.Request.Context(), mpesa.STKPushInput{
		Amount:           req.Amount,
		PhoneNumber:      phone,
		AccountReference: req.AccountReference,
		TransactionDesc:  req.TransactionDesc,
	})
	if err != nil {
		h.db.Model(&record).Updates(map[string]any{
			"status":      "failed",
			"result_desc": err.Error(),
		})
		httperr.From(c, err, "Failed to initiate payment")
		return
	}

	h.db.Model(&record).Updates(map[string]any{
		"status":              "accepted",
		"merchant_request_id": resp.MerchantRequestID,
		"checkout_request_id": resp.CheckoutRequestID,
	})

	httpresp.OK(c, gin.H{
		"message":           "STK push initiated. Check your phone.",
		"reference":         record.Reference,
		"checkoutRequestId": resp.CheckoutRequestID,
		"customerMessage":   resp.CustomerMessage,
	})
}

// Callback receives Daraja's result post. The reply shape is fixed by the
// gateway and bypasses the usual envelope.
func (h *PaymentHandler) Callback(c *gin.Context) {
	var env mpesa.CallbackEnvelope
	if err := c.ShouldBindJSON(&env); err != nil {
		c.JSON(http.StatusOK, gin.H{
			"ResultCode": 0,
			"ResultDesc": "Callback received successfully",
		})
		return
	}

	cb := env.Body.StkCallback
	status := "completed"
	if cb.ResultCode != 0 {
		status = "failed"
	}

	result := h.db.Model(&models.PaymentRequest{}).
		Where("checkout_request_id = ?", cb.CheckoutRequestID).
		Updates(map[string]any{
			"status":      status,
			"result_code": cb.ResultCode,
			"result_desc": cb.ResultDesc,
		})
	if result.Error != nil || result.RowsAffected == 0 {
		h.log.WithFields(logrus.Fields{
			"checkout_request_id": cb.CheckoutRequestID,
			"result_code":         cb.ResultCode,
		}).Warn("mpesa callback matched no payment request")
	} else {
		h.log.WithFields(logrus.Fields{
			"checkout_request_id": cb.CheckoutRequestID,
			"status":              status,
		}).Info("mpesa payment resolved")
	}

	c.JSON(http.StatusOK, gin.H{
		"ResultCode": 0,
		"ResultDesc": "Callback received successfully",
	})
}

// normalizePhone coerces 07XX / +254 / 254 forms to 2547XXXXXXXX and returns
// "" when the number cannot be coerced.
func normalizePhone(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "+")
	s = strings.ReplaceAll(s, " ", "")

	if strings.HasPrefix(s, "0") && len(s) == 10 {
		s = "254" + s[1:]
	}
	if len(s) != 12 || !strings.HasPrefix(s, "254") {
		return ""
	}
	if strings.Trim(s, "0123456789") != "" {
		return ""
	}
	return s
}
