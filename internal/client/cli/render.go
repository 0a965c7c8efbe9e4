package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"moodflow/internal/client/models"
	"moodflow/internal/client/prefs"
)

const dateLayout = "Jan 2, 2006 15:04"

// sentimentColor picks the badge color for a label. The dark theme uses
// high-intensity variants that stay readable on dark terminals.
func (a *App) sentimentColor(label string) *color.Color {
	dark := a.prefs.Theme(context.Background()) == prefs.ThemeDark

	switch models.KindOfSentiment(label) {
	case models.SentimentPositive:
		if dark {
			return color.New(color.FgHiGreen)
		}
		return color.New(color.FgGreen)
	case models.SentimentNegative:
		if dark {
			return color.New(color.FgHiRed)
		}
		return color.New(color.FgRed)
	default:
		if dark {
			return color.New(color.FgHiYellow)
		}
		return color.New(color.FgYellow)
	}
}

func sentimentEmoji(label string) string {
	switch models.KindOfSentiment(label) {
	case models.SentimentPositive:
		return "😊"
	case models.SentimentNegative:
		return "😔"
	default:
		return "😐"
	}
}

func premiumCell(e models.JournalEntry) string {
	switch models.DerivePremiumState(e) {
	case models.PremiumInsightGenerated:
		return "✨ insight ready"
	case models.PremiumUnlocked:
		return "insight <id>"
	default:
		return "unlock <id>"
	}
}

func (a *App) renderEntries(entries []models.JournalEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(a.out, "No entries yet. Start writing your first journal entry with 'add'!")
		return
	}

	table := uitable.New()
	table.MaxColWidth = 60
	table.Wrap = true
	table.AddRow("ID", "DATE", "MOOD", "SCORE", "PREMIUM", "ENTRY")

	for _, e := range entries {
		badge := a.sentimentColor(e.SentimentLabel).Sprintf("%s %s", sentimentEmoji(e.SentimentLabel), e.SentimentLabel)
		table.AddRow(
			e.ID,
			e.DateCreated.Format(dateLayout),
			badge,
			fmt.Sprintf("%d%%", int(e.SentimentScore*100)),
			premiumCell(e),
			e.Content,
		)
	}

	fmt.Fprintln(a.out, table)
}

func (a *App) renderEntry(e models.JournalEntry) {
	badge := a.sentimentColor(e.SentimentLabel).Sprintf("%s %s", sentimentEmoji(e.SentimentLabel), e.SentimentLabel)

	fmt.Fprintf(a.out, "#%d  %s  %s (%d%% confidence)\n",
		e.ID, e.DateCreated.Format(dateLayout), badge, int(e.SentimentScore*100))
	fmt.Fprintln(a.out, e.Content)

	switch models.DerivePremiumState(e) {
	case models.PremiumInsightGenerated:
		a.renderInsight(e.PremiumAnalysis)
	case models.PremiumUnlocked:
		fmt.Fprintf(a.out, "AI insight available — run: insight %d\n", e.ID)
	default:
		fmt.Fprintf(a.out, "Unlock an AI-powered insight for this entry — run: unlock %d\n", e.ID)
	}
}

func (a *App) renderInsight(insight string) {
	title := color.New(color.FgMagenta, color.Bold).Sprint("✨ AI Insight")
	fmt.Fprintf(a.out, "%s\n%s\n", title, insight)
}
