package cli

import (
	"context"
)

// Home returns to the topic list, clearing the search term and the topic
// selection.
func (a *App) Home(ctx context.Context) error {
	a.searchTerm = ""
	a.navigate(ViewHome)
	a.render()
	return nil
}

// Search filters the topic list by title or id substring.
func (a *App) Search(ctx context.Context, query string) error {
	a.searchTerm = query
	a.navigate(ViewHome)
	a.render()
	return nil
}

// Refresh re-fetches the topic list from the backend.
func (a *App) Refresh(ctx context.Context) error {
	if err := a.forum.Refresh(ctx); err != nil {
		a.reportError(err)
		return err
	}
	a.render()
	return nil
}

// OpenTopic selects a topic and loads its detail. A 404 evicts the topic
// and the view renders not-found instead of crashing; any other failure
// leaves the cached state untouched.
func (a *App) OpenTopic(ctx context.Context, id int64) error {
	a.selectedID = id
	a.hasSelection = true
	a.view = ViewTopic

	if _, err := a.forum.Open(ctx, id); err != nil {
		a.reportError(err)
	}

	a.render()
	return nil
}

// CloseTopic closes the selected topic. The action is offered only when
// the ownership token sets intersect; the backend remains the authority
// and its rejections are surfaced as-is.
func (a *App) CloseTopic(ctx context.Context) error {
	if a.view != ViewTopic || !a.hasSelection {
		a.showToast(toastInfo("Open a topic first."))
		return nil
	}

	topic, ok := a.forum.Get(a.selectedID)
	if ok && topic.Closed {
		a.showToast(toastInfo("The topic is already closed."))
		return nil
	}
	if ok && !a.forum.CanClose(topic) {
		a.showToast(toastError("Only the topic starter can close this topic."))
		return nil
	}

	if _, err := a.forum.Close(ctx, a.selectedID); err != nil {
		a.reportError(err)
		return err
	}

	a.showToast(toastSuccess("The topic is now closed. New comments can no longer be submitted."))
	a.render()
	return nil
}

// Comment posts a comment to the selected topic.
func (a *App) Comment(ctx context.Context) error {
	if a.view != ViewTopic || !a.hasSelection {
		a.showToast(toastInfo("Open a topic first."))
		return nil
	}

	if topic, ok := a.forum.Get(a.selectedID); ok && topic.Closed {
		a.showToast(toastInfo("The topic is closed; comments are disabled."))
		return nil
	}

	content, err := getMultiline(a.reader, "Your comment", a.out)
	if err != nil {
		return err
	}

	if _, err := a.forum.Comment(ctx, a.selectedID, content); err != nil {
		a.reportError(err)
		return err
	}

	a.showToast(toastSuccess("Comment posted."))
	a.render()
	return nil
}

// NewTopic runs the create-topic flow. Entering the view resets the form;
// an empty title cancels and discards the pending input.
func (a *App) NewTopic(ctx context.Context) error {
	a.navigate(ViewCreateTopic)
	if a.view != ViewCreateTopic {
		a.render()
		return nil
	}

	title, err := getSimpleText(a.reader, "Title (empty line to cancel)", a.out)
	if err != nil {
		return err
	}
	if title == "" {
		a.resetCreateForm()
		a.navigate(ViewHome)
		a.showToast(toastInfo("Topic creation cancelled."))
		a.render()
		return nil
	}
	a.createTitle = title

	description, err := getMultiline(a.reader, "Description", a.out)
	if err != nil {
		return err
	}
	a.createDescription = description

	topic, err := a.forum.Create(ctx, a.createTitle, a.createDescription)
	if err != nil {
		a.reportError(err)
		return err
	}

	a.resetCreateForm()
	a.showToast(toastSuccess("Topic published!"))

	a.selectedID = topic.ID
	a.hasSelection = true
	a.view = ViewTopic
	a.render()
	return nil
}
