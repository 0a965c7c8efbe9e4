// Package payments integrates the hosted payment-link provider used to sell
// premium insights, and verifies the webhooks the provider sends back.
package payments

import "context"

// LinkRequest describes one checkout link. Metadata is echoed back verbatim
// in the completion webhook, which is how the webhook handler finds the entry
// to unlock.
type LinkRequest struct {
	Amount      int               `json:"amount"`
	Currency    string            `json:"currency"`
	Reference   string            `json:"reference"`
	CallbackURL string            `json:"callback_url"`
	RedirectURL string            `json:"redirect_url"`
	Metadata    map[string]string `json:"metadata"`
}

// Provider creates hosted checkout links.
type Provider interface {
	CreatePaymentLink(ctx context.Context, req LinkRequest) (string, error)
}
