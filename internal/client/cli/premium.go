package cli

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"moodflow/internal/client/services"
)

func (a *App) entryIDArg(args []string, usage string) (int64, error) {
	if len(args) == 0 {
		line, err := GetSimpleText(a.reader, "Entry id", a.out)
		if err != nil {
			return 0, err
		}
		args = []string{line}
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintln(a.out, usage)
		return 0, err
	}
	return id, nil
}

// Unlock requests a payment link for a locked entry and prints it. Payment
// itself happens on the provider's page; when the provider redirects back,
// the user hands the URL to the 'paid' command.
func (a *App) Unlock(ctx context.Context, args []string) error {

	id, err := a.entryIDArg(args, "Usage: unlock <id>")
	if err != nil {
		return err
	}

	url, err := a.premium.InitiatePayment(ctx, id)
	if err != nil {
		fmt.Fprintln(a.out, userMessage(err))
		return err
	}

	fmt.Fprintf(a.out, "Open this link to unlock the AI insight:\n  %s\n", url)
	fmt.Fprintln(a.out, "After paying, run: paid <redirect-url>")
	return nil
}

// Paid consumes the provider's redirect URL. On a success indicator one
// delayed refresh is scheduled so the webhook has time to land server-side.
func (a *App) Paid(ctx context.Context, args []string) error {

	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: paid <redirect-url>")
		return nil
	}

	nav, err := parseReturn(args[0])
	if err != nil {
		fmt.Fprintln(a.out, "That does not look like a redirect URL")
		return err
	}

	if a.premium.HandlePaymentReturn(ctx, nav) {
		fmt.Fprintln(a.out, "Payment successful! Premium insight will appear shortly.")
	} else {
		fmt.Fprintln(a.out, "No payment confirmation found in that URL")
	}
	return nil
}

// parseReturn accepts either the provider's full redirect URL or just its
// query string, which is what users tend to paste when they copy everything
// after the '?'.
func parseReturn(arg string) (*services.Navigation, error) {
	if strings.Contains(arg, "://") {
		return services.ParseReturnURL(arg)
	}

	q, err := url.ParseQuery(strings.TrimPrefix(arg, "?"))
	if err != nil {
		return nil, err
	}
	return services.NavigationFromQuery(q), nil
}

func (a *App) Insight(ctx context.Context, args []string) error {

	id, err := a.entryIDArg(args, "Usage: insight <id>")
	if err != nil {
		return err
	}

	insight, err := a.premium.GenerateInsight(ctx, id)
	if err != nil {
		fmt.Fprintln(a.out, userMessage(err))
		return err
	}

	a.renderInsight(insight)
	return nil
}
