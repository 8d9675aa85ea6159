package cli

import (
	"context"
	"fmt"
)

// Login prompts for credentials and authenticates. When already logged in
// it routes to the profile view instead, like the web client does.
func (a *App) Login(ctx context.Context) error {
	if a.isLoggedIn() {
		return a.Profile(ctx)
	}

	a.navigate(ViewLogin)

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	profile, err := a.auth.Login(ctx, email, string(password))
	if err != nil {
		a.reportError(err)
		return err
	}

	a.showToast(toastSuccess(fmt.Sprintf("Welcome back, %s!", profile.Name)))
	a.navigate(ViewHome)
	a.render()
	return nil
}

func (a *App) Signup(ctx context.Context) error {
	a.navigate(ViewSignup)

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Repeat the password to confirm.")
	confirm, err := getPassword(a.out)
	if err != nil {
		return err
	}

	message, err := a.auth.Signup(ctx, email, string(password), string(confirm))
	if err != nil {
		a.reportError(err)
		return err
	}

	a.showToast(toastSuccess(message))
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		a.showToast(toastInfo("You are not logged in."))
		return nil
	}

	a.auth.Logout(ctx)
	a.navigate(ViewHome)
	a.showToast(toastSuccess("You have been logged out."))
	a.render()
	return nil
}

func (a *App) Profile(ctx context.Context) error {
	a.navigate(ViewProfile)
	a.render()
	return nil
}

// Settings runs the account settings flow: username change plus an
// optional password change. The form is seeded from the current profile on
// entry.
func (a *App) Settings(ctx context.Context) error {
	a.navigate(ViewSettings)
	if a.view != ViewSettings {
		a.render()
		return nil
	}

	name, err := getSimpleText(a.reader, fmt.Sprintf("Username [%s]", a.settingsName), a.out)
	if err != nil {
		return err
	}
	if name != "" {
		a.settingsName = name
	}

	fmt.Fprintln(a.out, "New password (leave empty to keep the current one).")
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	a.settingsPassword = string(password)

	if a.settingsPassword != "" {
		fmt.Fprintln(a.out, "Repeat the new password to confirm.")
		confirm, err := getPassword(a.out)
		if err != nil {
			return err
		}
		a.settingsConfirm = string(confirm)
	}

	profile, err := a.auth.UpdateProfile(ctx, a.settingsName, a.settingsPassword, a.settingsConfirm)
	if err != nil {
		a.reportError(err)
		return err
	}

	if a.settingsPassword != "" {
		a.showToast(toastSuccess("Username and password updated."))
	} else {
		a.showToast(toastSuccess("Username updated."))
	}

	a.settingsName = profile.Name
	a.settingsPassword = ""
	a.settingsConfirm = ""

	a.navigate(ViewProfile)
	a.render()
	return nil
}
