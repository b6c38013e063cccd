package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/tmorris/bizlink-admin/internal/common"
)

func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		printlnFn("error:", err)
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		printlnFn("error:", err)
		return err
	}
	defer common.WipeByteArray(password)

	identity, err := a.auth.Login(ctx, email, password)
	if err != nil {
		printlnFn("Login unsuccessful:", err)
		return err
	}

	a.setIdentity(identity)
	a.startSession(ctx)
	printlnFn("Logged in as", identity.Email)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.stopSession()
	if err := a.auth.Logout(ctx); err != nil {
		printlnFn("error:", err)
		return err
	}
	a.setIdentity(nil)
	printlnFn("Logged out.")
	return nil
}

// Status reports the session facts the guard exposes: lifecycle state and
// time remaining on the access token.
func (a *App) Status(ctx context.Context) error {
	state := a.auth.SessionState(ctx)
	printlnFn("Session state:", string(state))
	if identity := a.currentIdentity(); identity != nil && identity.Email != "" {
		printlnFn("Logged in as:", fmt.Sprintf("%s (%s)", identity.Email, identity.Role))
	}
	if a.auth.Authenticated(ctx) {
		printlnFn("Token expires in:", a.auth.TimeUntilExpiry(ctx).Round(time.Second).String())
	}
	return nil
}
