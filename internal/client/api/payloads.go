package api

import "encoding/json"

// Request bodies.

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateUserRequest struct {
	Email    string `json:"email"`
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
}

type CreateTopicRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type CommentRequest struct {
	Content   string `json:"content"`
	SessionID string `json:"session_id,omitempty"`
}

// Response shapes. Optional fields are pointers so a missing field can be
// told apart from a zero value; the merge engine depends on that.

type AuthUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type AuthResponse struct {
	Status    string    `json:"status"`
	SessionID string    `json:"session_id"`
	User      *AuthUser `json:"user"`
}

// DecodeAuth parses an auth-shaped body (signup, login, update-user).
// ok is true only for a 2xx response whose payload reports status "ok".
func DecodeAuth(r Result) (AuthResponse, bool) {
	var resp AuthResponse
	if !r.OK() || !r.Decode(&resp) {
		return resp, false
	}
	return resp, resp.Status == "ok"
}

type TopicItem struct {
	ID          int64           `json:"id"`
	Title       *string         `json:"title"`
	Author      json.RawMessage `json:"author"`
	Description *string         `json:"description"`
	Closed      *bool           `json:"closed"`
	Likes       *int            `json:"likes"`
}

type TopicListResponse struct {
	Items []TopicItem `json:"items"`
	Count int         `json:"count"`
}

// DecodeTopicList parses the topic listing. ok requires a 2xx status and an
// items array (an empty list is fine, a missing one is not).
func DecodeTopicList(r Result) (TopicListResponse, bool) {
	var resp TopicListResponse
	if !r.OK() || !r.Decode(&resp) {
		return resp, false
	}
	return resp, resp.Items != nil
}

// CommentPayload tolerates both naming conventions the backend has used for
// a comment body (content vs body) and its timestamp (created_at vs
// createdAt).
type CommentPayload struct {
	ID           *int64          `json:"id"`
	Author       json.RawMessage `json:"author"`
	Content      *string         `json:"content"`
	Body         *string         `json:"body"`
	CreatedAt    *string         `json:"createdAt"`
	CreatedAtAlt *string         `json:"created_at"`
}

// BodyText returns the comment text, preferring "content" over "body".
func (c CommentPayload) BodyText() *string {
	if c.Content != nil {
		return c.Content
	}
	return c.Body
}

// Timestamp returns the creation time, preferring "created_at" over
// "createdAt".
func (c CommentPayload) Timestamp() *string {
	if c.CreatedAtAlt != nil {
		return c.CreatedAtAlt
	}
	return c.CreatedAt
}

// TopicDetail is a partial topic payload. A nil Comments slice means the
// response did not mention comments at all; an empty non-nil slice means
// the topic has none.
type TopicDetail struct {
	ID          *int64           `json:"id"`
	Title       *string          `json:"title"`
	Author      json.RawMessage  `json:"author"`
	Description *string          `json:"description"`
	Closed      *bool            `json:"closed"`
	Likes       *int             `json:"likes"`
	Comments    []CommentPayload `json:"comments"`
}

// DecodeTopicDetail parses a topic detail body (detail fetch, create, close).
func DecodeTopicDetail(r Result) (TopicDetail, bool) {
	var resp TopicDetail
	if !r.OK() || !r.Decode(&resp) {
		return resp, false
	}
	return resp, true
}

// DecodeComment parses a posted-comment response.
func DecodeComment(r Result) (CommentPayload, bool) {
	var resp CommentPayload
	if !r.OK() || !r.Decode(&resp) {
		return resp, false
	}
	return resp, true
}
