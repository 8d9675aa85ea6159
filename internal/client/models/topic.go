package models

// Topic is a discussion thread as held by the client-side cache.
//
// AuthorTokens is a derived, normalized set of lowercase identity fragments
// (name, email, email local part, raw author field) used to approximate
// "does this user own this topic" without exact string equality. It is
// non-empty whenever the author is resolvable.
type Topic struct {
	ID           int64
	Title        string
	Author       string
	AuthorTokens []string
	Description  string
	Closed       bool
	Likes        *int
	Comments     []Comment
}

// Comment is a single reply inside a topic. Comments are kept in arrival
// order and are only ever replaced wholesale during a merge, never mutated
// in place.
type Comment struct {
	ID        int64
	Author    string
	Body      string
	CreatedAt string
}
