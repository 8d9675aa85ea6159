package topics

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/forumcli/internal/client/api"
	"github.com/dmitrijs2005/forumcli/internal/client/models"
)

// test seam for comment timestamps synthesized during a merge
var nowFn = time.Now

// MergeDetail combines a partial detail payload with whatever the cache
// already holds for that topic. Remote values win field by field, but a
// known value is never discarded when the payload has no replacement for
// it. The result is a fresh Topic; neither input is mutated.
func MergeDetail(detail api.TopicDetail, fallback *models.Topic) models.Topic {
	var fb models.Topic
	hasFallback := fallback != nil
	if hasFallback {
		fb = *fallback
	}

	id := fb.ID
	if detail.ID != nil {
		id = *detail.ID
	}

	comments := fb.Comments
	if detail.Comments != nil {
		comments = reconcileComments(detail.Comments, fb.Comments)
	}

	fallbackAuthor := UnknownAuthorName
	if hasFallback && fb.Author != "" {
		fallbackAuthor = fb.Author
	}

	authorRaw := detail.Author
	if isNullRaw(authorRaw) {
		authorRaw, _ = json.Marshal(fallbackAuthor)
	}
	authorName := AuthorName(authorRaw, fallbackAuthor)
	tokenFallbacks := append(append([]string{}, fb.AuthorTokens...), fallbackAuthor, authorName)

	title := fb.Title
	if detail.Title != nil {
		title = *detail.Title
	}
	if title == "" {
		title = fmt.Sprintf("Topic %d", id)
	}

	description := fb.Description
	if detail.Description != nil {
		description = *detail.Description
	}

	closed := fb.Closed
	if detail.Closed != nil {
		closed = *detail.Closed
	}

	likes := fb.Likes
	if detail.Likes != nil {
		likes = detail.Likes
	}

	return models.Topic{
		ID:           id,
		Title:        title,
		Author:       authorName,
		AuthorTokens: CollectTokens(authorRaw, tokenFallbacks...),
		Description:  description,
		Closed:       closed,
		Likes:        likes,
		Comments:     comments,
	}
}

// reconcileComments patches individual missing sub-fields of each remote
// comment from a previously cached one. A cached comment is matched by id
// when both sides carry one; id-less payloads fall back to index alignment,
// which is best-effort only and breaks under reordering.
func reconcileComments(remote []api.CommentPayload, fallback []models.Comment) []models.Comment {
	byID := make(map[int64]models.Comment, len(fallback))
	for _, comment := range fallback {
		byID[comment.ID] = comment
	}

	merged := make([]models.Comment, 0, len(remote))
	for i, payload := range remote {
		var backup *models.Comment
		if payload.ID != nil {
			if match, ok := byID[*payload.ID]; ok {
				backup = &match
			}
		}
		if backup == nil && i < len(fallback) {
			indexMatch := fallback[i]
			backup = &indexMatch
		}

		body := ""
		if text := payload.BodyText(); text != nil {
			body = *text
		} else if backup != nil {
			body = backup.Body
		}

		createdAt := ""
		if ts := payload.Timestamp(); ts != nil {
			createdAt = *ts
		} else if backup != nil && backup.CreatedAt != "" {
			createdAt = backup.CreatedAt
		} else {
			createdAt = nowFn().UTC().Format(time.RFC3339)
		}

		id := int64(i)
		if payload.ID != nil {
			id = *payload.ID
		} else if backup != nil {
			id = backup.ID
		}

		fallbackName := AnonymousAuthorName
		authorRaw := payload.Author
		if backup != nil && backup.Author != "" {
			fallbackName = backup.Author
			if isNullRaw(authorRaw) {
				authorRaw, _ = json.Marshal(backup.Author)
			}
		}

		merged = append(merged, models.Comment{
			ID:        id,
			Author:    AuthorName(authorRaw, fallbackName),
			Body:      body,
			CreatedAt: createdAt,
		})
	}

	return merged
}

// TopicFromListItem builds a cache entry from one listing row. Comments
// start empty; detail fetches fill them in later.
func TopicFromListItem(item api.TopicItem) models.Topic {
	name := AuthorName(item.Author, UnknownAuthorName)

	title := ""
	if item.Title != nil {
		title = *item.Title
	}
	if title == "" {
		title = fmt.Sprintf("Topic %d", item.ID)
	}

	description := ""
	if item.Description != nil {
		description = *item.Description
	}

	closed := false
	if item.Closed != nil {
		closed = *item.Closed
	}

	return models.Topic{
		ID:           item.ID,
		Title:        title,
		Author:       name,
		AuthorTokens: CollectTokens(item.Author, name),
		Description:  description,
		Closed:       closed,
		Likes:        item.Likes,
		Comments:     []models.Comment{},
	}
}
