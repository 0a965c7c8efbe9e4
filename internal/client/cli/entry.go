package cli

import (
	"context"
	"fmt"
	"strconv"
)

func (a *App) Add(ctx context.Context) error {

	text, err := GetMultiline(a.reader, "How are you feeling today?", a.out)
	if err != nil {
		return err
	}

	if err := a.store.Submit(ctx, text); err != nil {
		fmt.Fprintln(a.out, userMessage(err))
		return err
	}

	fmt.Fprintln(a.out, "Entry saved!")
	return a.List(ctx, nil)
}

// List renders the entry collection. With an id argument it shows a single
// entry in full, including its premium section.
func (a *App) List(ctx context.Context, args []string) error {

	if err := a.store.Load(ctx); err != nil {
		fmt.Fprintln(a.out, userMessage(err))
		return err
	}

	entries := a.state.Entries()

	if len(args) > 0 {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fmt.Fprintln(a.out, "Usage: list [id]")
			return err
		}
		entry, ok := a.state.EntryByID(id)
		if !ok {
			fmt.Fprintln(a.out, "Entry not found")
			return nil
		}
		a.renderEntry(entry)
		return nil
	}

	a.renderEntries(entries)
	return nil
}
