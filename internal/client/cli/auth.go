package cli

import (
	"context"
	"log"
	"os"

	"github.com/yajai/medtrack/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in
// tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for an identity and password and attempts to create a
// new account. A successful registration does not log the user in; they
// are told to log in next. The password byte slice is wiped before
// returning.
func (a *App) Register(ctx context.Context) error {
	identity, err := getSimpleText(a.reader, "Enter identity", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Register(ctx, identity, password); err != nil {
		log.Printf("Registration unsuccessful: %s", err.Error())
		return err
	}

	log.Printf("Registered. Please log in.")
	return nil
}

// Login prompts for credentials, authenticates, and loads the medication
// list so role-gated commands operate on fresh state. The password is
// wiped before returning.
func (a *App) Login(ctx context.Context) error {
	identity, err := getSimpleText(a.reader, "Enter identity", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Login(ctx, identity, password); err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		return err
	}

	if err := a.medService.Refresh(ctx); err != nil {
		log.Printf("Error loading medications: %s", err.Error())
		return err
	}

	log.Printf("Login successful")
	return nil
}

// confirm is a test seam for the logout confirmation prompt.
var confirm = func(a *App, prompt string) bool {
	return Confirm(a.reader, prompt, os.Stdout)
}

// Logout confirms, clears the session, and drops the local medication
// list.
func (a *App) Logout(ctx context.Context) error {
	if !confirm(a, "Log out?") {
		return common.ErrCancelled
	}

	if err := a.authService.Logout(ctx); err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}
	a.medService.Forget()
	return nil
}
