package cli

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/dmitrijs2005/forumcli/internal/client/models"
)

// render prints the current view. It reads only derived copies of the
// cached state and never mutates it.
func (a *App) render() {
	switch a.view {
	case ViewHome:
		a.renderHome()
	case ViewTopic:
		a.renderTopic()
	case ViewLogin:
		fmt.Fprintln(a.out, "Please log in. Commands: login, signup.")
	case ViewSignup:
		fmt.Fprintln(a.out, "Create an account with the 'signup' command.")
	case ViewProfile:
		a.renderProfile()
	case ViewSettings:
		fmt.Fprintf(a.out, "Account settings for %s.\n", a.settingsName)
	case ViewCreateTopic:
		fmt.Fprintln(a.out, "Creating a new topic.")
	}
}

func (a *App) renderHome() {
	topics := a.forum.Topics(a.searchTerm)

	if a.searchTerm != "" {
		fmt.Fprintf(a.out, "Topics matching %q:\n", a.searchTerm)
	} else {
		fmt.Fprintln(a.out, "Topics:")
	}

	if len(topics) == 0 {
		fmt.Fprintln(a.out, "  (no topics)")
		return
	}

	for _, topic := range topics {
		marker := ""
		if topic.Closed {
			marker = " [closed]"
		}
		fmt.Fprintf(a.out, "  [%d] %s — %s%s (%d comments)\n",
			topic.ID, topic.Title, topic.Author, marker, len(topic.Comments))
	}
}

func (a *App) renderTopic() {
	topic, ok := a.forum.Get(a.selectedID)
	if !ok {
		fmt.Fprintln(a.out, "Topic not found. Use 'back' to return to the list.")
		return
	}

	marker := ""
	if topic.Closed {
		marker = " [closed]"
	}
	fmt.Fprintf(a.out, "[%d] %s%s\n", topic.ID, topic.Title, marker)
	fmt.Fprintf(a.out, "by %s\n", topic.Author)
	if topic.Likes != nil {
		fmt.Fprintf(a.out, "likes: %d\n", *topic.Likes)
	}
	if topic.Description != "" {
		fmt.Fprintln(a.out, topic.Description)
	}

	if len(topic.Comments) == 0 {
		fmt.Fprintln(a.out, "No comments yet.")
	} else {
		fmt.Fprintf(a.out, "Comments (%d):\n", len(topic.Comments))
		for _, comment := range topic.Comments {
			fmt.Fprintf(a.out, "  %s (%s): %s\n", comment.Author, comment.CreatedAt, comment.Body)
		}
	}

	if !topic.Closed && a.forum.CanClose(topic) {
		fmt.Fprintln(a.out, "You started this topic; use 'close' to close it.")
	}
}

func (a *App) renderProfile() {
	user := a.session.CurrentUser()
	if user == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return
	}

	if initial := userInitial(user); initial != "" {
		fmt.Fprintf(a.out, "(%s) %s\n", initial, user.Name)
	} else {
		fmt.Fprintln(a.out, user.Name)
	}
	if user.Email != "" {
		fmt.Fprintln(a.out, user.Email)
	}
}

// userInitial picks the avatar letter: the first rune of the name, or of
// the email when the name is blank.
func userInitial(user *models.UserProfile) string {
	for _, source := range []string{user.Name, user.Email} {
		trimmed := strings.TrimSpace(source)
		if trimmed == "" {
			continue
		}
		runes := []rune(trimmed)
		return string(unicode.ToUpper(runes[0]))
	}
	return ""
}
