package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"moodflow/internal/common"
	"moodflow/internal/server/payments"
)

type entryIDInput struct {
	EntryID int64 `json:"entry_id"`
}

func (s *Server) createPaymentLink(c *gin.Context) {
	user := currentUserFromContext(c)

	var input entryIDInput
	if err := c.ShouldBindJSON(&input); err != nil || input.EntryID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Entry ID is required"})
		return
	}

	url, err := s.journal.CreatePaymentLink(c.Request.Context(), user.ID, input.EntryID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) || errors.Is(err, common.ErrorEntryNotOwned) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
			return
		}
		s.log.Error(c.Request.Context(), "payment link creation failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Payment service unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"payment_url": url})
}

func (s *Server) generateInsight(c *gin.Context) {
	user := currentUserFromContext(c)

	var input entryIDInput
	if err := c.ShouldBindJSON(&input); err != nil || input.EntryID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Entry ID is required"})
		return
	}

	text, err := s.journal.GenerateInsight(c.Request.Context(), user.ID, input.EntryID)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound), errors.Is(err, common.ErrorEntryNotOwned):
			c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
		case errors.Is(err, common.ErrorPremiumLocked):
			c.JSON(http.StatusPaymentRequired, gin.H{"error": common.ErrorPremiumLocked.Error()})
		default:
			s.log.Error(c.Request.Context(), "insight generation failed", "error", err.Error())
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate insight"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"insight": text})
}

// paymentWebhook is called by the payment provider, not the client. The raw
// body is HMAC-verified before any of it is trusted.
func (s *Server) paymentWebhook(c *gin.Context) {

	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable payload"})
		return
	}

	signature := c.GetHeader(payments.SignatureHeader)
	if !payments.VerifySignature(payload, signature, s.config.PaymentSecretKey) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid signature"})
		return
	}

	var event payments.WebhookEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	if err := s.journal.HandlePaymentWebhook(c.Request.Context(), event); err != nil {
		s.log.Error(c.Request.Context(), "webhook processing failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Webhook processing failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
