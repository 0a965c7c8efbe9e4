package services

import (
	"net/url"
)

// paymentSuccessParam is the one-shot indicator the payment provider appends
// to its redirect URL.
const paymentSuccessParam = "payment"

// Navigation models the address state the payment provider redirects back to.
// The payment-success indicator it may carry is consumable exactly once, so a
// repeated look at the same state does not re-trigger post-payment handling.
type Navigation struct {
	query url.Values
}

// ParseReturnURL builds a Navigation from the full redirect URL.
func ParseReturnURL(raw string) (*Navigation, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &Navigation{query: u.Query()}, nil
}

// NavigationFromQuery builds a Navigation from already-parsed query values.
func NavigationFromQuery(q url.Values) *Navigation {
	copied := url.Values{}
	for k, vs := range q {
		copied[k] = append([]string(nil), vs...)
	}
	return &Navigation{query: copied}
}

// ConsumePaymentSuccess reports whether the state carries the success
// indicator and clears it, so it returns true at most once.
func (n *Navigation) ConsumePaymentSuccess() bool {
	if n.query.Get(paymentSuccessParam) != "success" {
		return false
	}
	n.query.Del(paymentSuccessParam)
	return true
}

// Query exposes the remaining (cleaned) address state.
func (n *Navigation) Query() url.Values {
	return n.query
}
