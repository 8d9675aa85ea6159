package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/forumcli/internal/client/models"
)

func TestNavigate_GatedViewsRedirectToLogin(t *testing.T) {
	for _, view := range []View{ViewProfile, ViewSettings, ViewCreateTopic} {
		t.Run(string(view), func(t *testing.T) {
			ta := newTestApp(t, false)

			ta.app.navigate(view)

			assert.Equal(t, ViewLogin, ta.app.view)
		})
	}
}

func TestNavigate_CreateTopicRedirectToasts(t *testing.T) {
	ta := newTestApp(t, false)

	ta.app.navigate(ViewCreateTopic)

	toast := ta.app.banner.Current()
	require.NotNil(t, toast)
	assert.Equal(t, models.ToastInfo, toast.Type)
	assert.Equal(t, "Please log in before creating a topic.", toast.Message)

	// The other gated views redirect silently.
	ta = newTestApp(t, false)
	ta.app.navigate(ViewSettings)
	assert.Nil(t, ta.app.banner.Current())
}

func TestNavigate_LoggedInPassesGates(t *testing.T) {
	ta := newTestApp(t, true)

	ta.app.navigate(ViewProfile)
	assert.Equal(t, ViewProfile, ta.app.view)

	ta.app.navigate(ViewCreateTopic)
	assert.Equal(t, ViewCreateTopic, ta.app.view)
}

func TestNavigate_SettingsSeedsForm(t *testing.T) {
	ta := newTestApp(t, true)
	ta.app.settingsPassword = "leftover"
	ta.app.settingsConfirm = "leftover"

	ta.app.navigate(ViewSettings)

	assert.Equal(t, ViewSettings, ta.app.view)
	assert.Equal(t, "Alice", ta.app.settingsName)
	assert.Empty(t, ta.app.settingsPassword)
	assert.Empty(t, ta.app.settingsConfirm)
}

func TestNavigate_CreateTopicResetsForm(t *testing.T) {
	ta := newTestApp(t, true)
	ta.app.createTitle = "stale"
	ta.app.createDescription = "stale"

	ta.app.navigate(ViewCreateTopic)

	assert.Empty(t, ta.app.createTitle)
	assert.Empty(t, ta.app.createDescription)
}

func TestNavigate_HomeClearsSelection(t *testing.T) {
	ta := newTestApp(t, true)
	ta.app.selectedID = 7
	ta.app.hasSelection = true
	ta.app.view = ViewTopic

	ta.app.navigate(ViewHome)

	assert.Equal(t, ViewHome, ta.app.view)
	assert.False(t, ta.app.hasSelection)
	assert.Zero(t, ta.app.selectedID)
}
