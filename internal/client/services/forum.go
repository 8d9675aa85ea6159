package services

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/dmitrijs2005/forumcli/internal/client/api"
	"github.com/dmitrijs2005/forumcli/internal/client/models"
	"github.com/dmitrijs2005/forumcli/internal/client/session"
	"github.com/dmitrijs2005/forumcli/internal/client/topics"
	"github.com/dmitrijs2005/forumcli/internal/common"
	"github.com/dmitrijs2005/forumcli/internal/logging"
)

// test seam for timestamps of locally appended comments
var nowFn = time.Now

// TopicService defines the topic operations of the client. All cache
// mutations happen here; the view layer only ever sees copies.
type TopicService interface {
	// Refresh fetches the topic list into the cache.
	Refresh(ctx context.Context) error

	// Topics returns the cached list filtered by query ("" for all).
	Topics(query string) []models.Topic

	// Get returns a cached topic without touching the network.
	Get(id int64) (models.Topic, bool)

	// Open fetches topic detail and merges it into the cache. A response
	// arriving after another Open superseded this one is discarded.
	Open(ctx context.Context, id int64) (models.Topic, error)

	// Create publishes a topic and puts it at the head of the cache.
	Create(ctx context.Context, title, description string) (models.Topic, error)

	// Close closes a topic the user owns. A second call for the same id
	// while one is outstanding fails with common.ErrInFlight.
	Close(ctx context.Context, id int64) (models.Topic, error)

	// Comment posts a comment and appends the result to the cached topic.
	Comment(ctx context.Context, id int64, content string) (models.Comment, error)

	// CanClose reports whether the close action should be offered for
	// topic. UX gating only; the backend stays authoritative.
	CanClose(topic models.Topic) bool
}

type topicService struct {
	api     api.Client
	cache   *topics.Cache
	session *session.Store
	log     logging.Logger

	selections topics.SelectionGuard
	closing    topics.InflightGuard
}

func NewTopicService(apiClient api.Client, cache *topics.Cache, sess *session.Store, log logging.Logger) TopicService {
	return &topicService{api: apiClient, cache: cache, session: sess, log: log}
}

func (s *topicService) Refresh(ctx context.Context) error {
	res, err := s.api.FetchTopics(ctx)
	if err != nil {
		s.log.Warn(ctx, "topic list fetch failed", "error", err)
		return networkError()
	}

	list, ok := api.DecodeTopicList(res)
	if !ok {
		return &UserError{Message: "Failed to load topics. Please try again later."}
	}

	loaded := make([]models.Topic, 0, len(list.Items))
	for _, item := range list.Items {
		loaded = append(loaded, topics.TopicFromListItem(item))
	}
	s.cache.Replace(loaded)

	s.log.Info(ctx, "topics loaded", "count", len(loaded))
	return nil
}

func (s *topicService) Topics(query string) []models.Topic {
	return s.cache.Filter(query)
}

func (s *topicService) Get(id int64) (models.Topic, bool) {
	return s.cache.Select(id)
}

func (s *topicService) Open(ctx context.Context, id int64) (models.Topic, error) {
	gen := s.selections.Begin()

	res, err := s.api.FetchTopicDetail(ctx, id)
	if err != nil {
		s.log.Warn(ctx, "topic detail fetch failed", "id", id, "error", err)
		return models.Topic{}, networkError()
	}

	// Another selection superseded this one while the request was in
	// flight: drop the response without touching the cache.
	if !s.selections.Current(gen) {
		if cached, ok := s.cache.Select(id); ok {
			return cached, nil
		}
		return models.Topic{}, &UserError{Message: "Topic not found.", cause: common.ErrNotFound}
	}

	if detail, ok := api.DecodeTopicDetail(res); ok {
		mergeID := id
		if detail.ID != nil {
			mergeID = *detail.ID
		}

		var merged models.Topic
		s.cache.Update(func(prev []models.Topic) []models.Topic {
			var fallback *models.Topic
			for i := range prev {
				if prev[i].ID == mergeID {
					fallback = &prev[i]
					break
				}
			}
			merged = topics.MergeDetail(detail, fallback)

			next := make([]models.Topic, 0, len(prev)+1)
			found := false
			for _, t := range prev {
				if t.ID == merged.ID {
					next = append(next, merged)
					found = true
					continue
				}
				next = append(next, t)
			}
			if !found {
				next = append(next, merged)
			}
			return next
		})
		return merged, nil
	}

	if res.Status == 404 {
		s.cache.Evict(id)
		return models.Topic{}, &UserError{Message: "Topic not found.", cause: common.ErrNotFound}
	}

	return models.Topic{}, remoteError(res, "Failed to load the topic. Please try again later.")
}

func (s *topicService) Create(ctx context.Context, title, description string) (models.Topic, error) {
	user := s.session.CurrentUser()
	if user == nil {
		return models.Topic{}, &UserError{Message: "Please log in before creating a topic.", cause: common.ErrUnauthorized}
	}

	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if title == "" || description == "" {
		return models.Topic{}, validationError("Please fill in both a title and a description.")
	}

	res, err := s.api.CreateTopic(ctx, api.CreateTopicRequest{Title: title, Description: description})
	if err != nil {
		s.log.Warn(ctx, "create topic failed", "error", err)
		return models.Topic{}, networkError()
	}

	detail, ok := api.DecodeTopicDetail(res)
	if !ok || detail.ID == nil {
		return models.Topic{}, remoteError(res, "Failed to publish the topic.")
	}

	authorRaw := detail.Author
	if len(authorRaw) == 0 {
		authorRaw, _ = json.Marshal(user.Name)
	}
	name := topics.AuthorName(authorRaw, user.Name)

	topicTitle := title
	if detail.Title != nil && *detail.Title != "" {
		topicTitle = *detail.Title
	}
	topicDescription := description
	if detail.Description != nil && *detail.Description != "" {
		topicDescription = *detail.Description
	}
	closed := false
	if detail.Closed != nil {
		closed = *detail.Closed
	}

	created := models.Topic{
		ID:           *detail.ID,
		Title:        topicTitle,
		Author:       name,
		AuthorTokens: topics.CollectTokens(authorRaw, user.Email, user.Name, name),
		Description:  topicDescription,
		Closed:       closed,
		Likes:        detail.Likes,
		Comments:     []models.Comment{},
	}

	s.cache.PutFront(created)
	s.log.Info(ctx, "topic created", "id", created.ID)
	return created, nil
}

func (s *topicService) Close(ctx context.Context, id int64) (models.Topic, error) {
	user := s.session.CurrentUser()
	if user == nil {
		return models.Topic{}, &UserError{Message: "Please log in before closing a topic.", cause: common.ErrUnauthorized}
	}

	if !s.closing.TryAcquire(id) {
		return models.Topic{}, common.ErrInFlight
	}
	defer s.closing.Release(id)

	res, err := s.api.CloseTopic(ctx, id)
	if err != nil {
		s.log.Warn(ctx, "close topic failed", "id", id, "error", err)
		return models.Topic{}, networkError()
	}

	if detail, ok := api.DecodeTopicDetail(res); ok && res.Status == 200 {
		fallback, _ := s.cache.Select(id)
		var fb *models.Topic
		if fallback.ID == id {
			fb = &fallback
		}

		merged := topics.MergeDetail(detail, fb)
		// The topic was just closed; trust that even when the payload
		// omits the flag.
		if detail.Closed == nil {
			merged.Closed = true
		}
		s.cache.Upsert(merged)
		return merged, nil
	}

	rejection := remoteError(res, "Failed to close the topic. Please try again later.")
	if res.Status == 401 {
		// Stale token: stop sending it and force a fresh login.
		s.session.Clear(ctx)
	}
	return models.Topic{}, rejection
}

func (s *topicService) Comment(ctx context.Context, id int64, content string) (models.Comment, error) {
	user := s.session.CurrentUser()
	if user == nil {
		return models.Comment{}, &UserError{Message: "Please log in before commenting.", cause: common.ErrUnauthorized}
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return models.Comment{}, validationError("Please enter a comment.")
	}

	res, err := s.api.PostComment(ctx, id, api.CommentRequest{Content: content, SessionID: s.session.Token()})
	if err != nil {
		s.log.Warn(ctx, "post comment failed", "id", id, "error", err)
		return models.Comment{}, networkError()
	}

	payload, ok := api.DecodeComment(res)
	if !ok {
		rejection := remoteError(res, "Failed to post the comment.")
		if res.Status == 401 {
			s.session.Clear(ctx)
		}
		return models.Comment{}, rejection
	}

	cached, _ := s.cache.Select(id)
	commentID := int64(len(cached.Comments))
	if payload.ID != nil {
		commentID = *payload.ID
	}
	body := content
	if text := payload.BodyText(); text != nil && *text != "" {
		body = *text
	}
	createdAt := nowFn().UTC().Format(time.RFC3339)
	if ts := payload.Timestamp(); ts != nil && *ts != "" {
		createdAt = *ts
	}

	comment := models.Comment{
		ID:        commentID,
		Author:    topics.AuthorName(payload.Author, user.Name),
		Body:      body,
		CreatedAt: createdAt,
	}
	s.cache.AppendComment(id, comment)
	return comment, nil
}

func (s *topicService) CanClose(topic models.Topic) bool {
	return topics.CanClose(s.session.CurrentUser(), topic)
}
