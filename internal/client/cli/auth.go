package cli

import (
	"context"
	"fmt"
)

func (a *App) Login(ctx context.Context) error {

	userName, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	password, err := GetPassword(a.out, "Enter password")
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	user, err := a.controller.Login(ctx, userName, password)
	if err != nil {
		fmt.Fprintln(a.out, userMessage(err))
		return err
	}

	fmt.Fprintf(a.out, "Welcome back, %s!\n", user.Username)
	return a.List(ctx, nil)
}

func (a *App) Register(ctx context.Context) error {

	userName, err := GetSimpleText(a.reader, "Choose a username", a.out)
	if err != nil {
		return err
	}

	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := GetPassword(a.out, "Choose a password")
	if err != nil {
		return err
	}

	confirm, err := GetPassword(a.out, "Confirm password")
	if err != nil {
		return err
	}

	if err := a.controller.Register(ctx, userName, email, password, confirm); err != nil {
		fmt.Fprintln(a.out, userMessage(err))
		return err
	}

	fmt.Fprintln(a.out, "Registration successful! Please log in.")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.controller.Logout(ctx); err != nil {
		fmt.Fprintln(a.out, userMessage(err))
		return err
	}
	fmt.Fprintln(a.out, "Logged out successfully")
	return nil
}
