package cli

// View names the finite set of screens the client can show. The initial
// view is home; no view is terminal and logout always returns home.
type View string

const (
	ViewHome        View = "home"
	ViewTopic       View = "topic"
	ViewLogin       View = "login"
	ViewSignup      View = "signup"
	ViewProfile     View = "profile"
	ViewSettings    View = "settings"
	ViewCreateTopic View = "create-topic"
)

// navigate performs a gated view transition. Entering profile, settings or
// create-topic without an active session redirects to login instead.
// Transition side effects: settings seeds its form from the current
// profile, create-topic resets its form, home drops the topic selection.
func (a *App) navigate(view View) {
	switch view {
	case ViewProfile, ViewSettings, ViewCreateTopic:
		if !a.isLoggedIn() {
			if view == ViewCreateTopic {
				a.showToast(toastInfo("Please log in before creating a topic."))
			}
			a.view = ViewLogin
			return
		}
	}

	switch view {
	case ViewSettings:
		a.seedSettingsForm()
	case ViewCreateTopic:
		a.resetCreateForm()
	case ViewHome:
		a.hasSelection = false
		a.selectedID = 0
	}

	a.view = view
}

func (a *App) seedSettingsForm() {
	a.settingsName = ""
	if user := a.session.CurrentUser(); user != nil {
		a.settingsName = user.Name
	}
	a.settingsPassword = ""
	a.settingsConfirm = ""
}

func (a *App) resetCreateForm() {
	a.createTitle = ""
	a.createDescription = ""
}
