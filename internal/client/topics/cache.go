// Package topics holds the client-side topic cache and the merge engine
// that reconciles partial backend payloads with cached state.
package topics

import (
	"strconv"
	"strings"
	"sync"

	"github.com/dmitrijs2005/forumcli/internal/client/models"
)

// Cache is the authoritative in-memory topic list. All mutations go through
// Update, a pure transform of the previous slice applied under the lock, so
// concurrent mergers cannot interleave partial writes. Readers get copies.
type Cache struct {
	mu     sync.Mutex
	topics []models.Topic
}

func NewCache() *Cache {
	return &Cache{}
}

// List returns a copy of the current topic list.
func (c *Cache) List() []models.Topic {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.Topic(nil), c.topics...)
}

// Select returns the topic with the given id, if known.
func (c *Cache) Select(id int64) (models.Topic, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, topic := range c.topics {
		if topic.ID == id {
			return topic, true
		}
	}
	return models.Topic{}, false
}

// Update applies a pure transform to the topic list. The transform must
// treat its argument as read-only and return the next list.
func (c *Cache) Update(transform func(prev []models.Topic) []models.Topic) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.topics = transform(c.topics)
}

// Replace swaps in a whole new topic list.
func (c *Cache) Replace(topics []models.Topic) {
	c.Update(func([]models.Topic) []models.Topic {
		return append([]models.Topic(nil), topics...)
	})
}

// Upsert replaces the topic with the same id, or appends it when unknown.
func (c *Cache) Upsert(topic models.Topic) {
	c.Update(func(prev []models.Topic) []models.Topic {
		next := make([]models.Topic, 0, len(prev)+1)
		found := false
		for _, t := range prev {
			if t.ID == topic.ID {
				next = append(next, topic)
				found = true
				continue
			}
			next = append(next, t)
		}
		if !found {
			next = append(next, topic)
		}
		return next
	})
}

// PutFront inserts a topic at the head of the list, dropping any previous
// entry with the same id. Used for freshly created topics.
func (c *Cache) PutFront(topic models.Topic) {
	c.Update(func(prev []models.Topic) []models.Topic {
		next := make([]models.Topic, 0, len(prev)+1)
		next = append(next, topic)
		for _, t := range prev {
			if t.ID != topic.ID {
				next = append(next, t)
			}
		}
		return next
	})
}

// Evict drops the topic with the given id, if present.
func (c *Cache) Evict(id int64) {
	c.Update(func(prev []models.Topic) []models.Topic {
		next := make([]models.Topic, 0, len(prev))
		for _, t := range prev {
			if t.ID != id {
				next = append(next, t)
			}
		}
		return next
	})
}

// AppendComment adds a comment to the topic's list via a copy-on-write
// update. Returns false when the topic is unknown.
func (c *Cache) AppendComment(id int64, comment models.Comment) bool {
	appended := false
	c.Update(func(prev []models.Topic) []models.Topic {
		next := make([]models.Topic, 0, len(prev))
		for _, t := range prev {
			if t.ID == id {
				updated := t
				updated.Comments = append(append([]models.Comment(nil), t.Comments...), comment)
				next = append(next, updated)
				appended = true
				continue
			}
			next = append(next, t)
		}
		return next
	})
	return appended
}

// Filter returns topics whose title contains the query (case-insensitive)
// or whose id contains it as a substring. An empty query returns everything.
func (c *Cache) Filter(query string) []models.Topic {
	all := c.List()

	trimmed := strings.ToLower(strings.TrimSpace(query))
	if trimmed == "" {
		return all
	}

	matched := make([]models.Topic, 0, len(all))
	for _, topic := range all {
		if strings.Contains(strings.ToLower(topic.Title), trimmed) ||
			strings.Contains(strconv.FormatInt(topic.ID, 10), trimmed) {
			matched = append(matched, topic)
		}
	}
	return matched
}
