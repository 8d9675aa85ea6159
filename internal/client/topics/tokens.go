package topics

import (
	"bytes"
	"encoding/json"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/forumcli/internal/client/models"
)

// The backend has served the author field as a bare string, a number, and
// an object, depending on the endpoint and era. Token derivation accepts
// all of them and reduces the field to a flat set of lowercase identity
// fragments used for approximate ownership matching.

// UnknownAuthorName is displayed when no author can be resolved at all.
const UnknownAuthorName = "Unknown"

// AnonymousAuthorName is the display fallback for comments without an author.
const AnonymousAuthorName = "Anonymous"

var authorCandidateKeys = []string{"username", "name", "author", "email", "displayName", "id"}

var (
	emailPattern    = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	bracketPattern  = regexp.MustCompile(`[(<\[]`)
	fragmentPattern = regexp.MustCompile(`[^A-Za-z0-9@._+-]+`)
)

func isNullRaw(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

func scalarToString(v any) (string, bool) {
	switch value := v.(type) {
	case string:
		return value, true
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(value), true
	default:
		return "", false
	}
}

// enumerateAuthorStrings lists every candidate identity string contained in
// a raw author payload.
func enumerateAuthorStrings(raw json.RawMessage) []string {
	if isNullRaw(raw) {
		return nil
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}

	if s, ok := scalarToString(v); ok {
		return []string{s}
	}

	record, ok := v.(map[string]any)
	if !ok {
		return nil
	}

	var values []string
	for _, key := range authorCandidateKeys {
		if s, ok := scalarToString(record[key]); ok {
			values = append(values, s)
		}
	}
	return values
}

// AuthorName resolves a raw author payload to a display name, falling back
// to the given name when nothing usable is present.
func AuthorName(raw json.RawMessage, fallback string) string {
	if isNullRaw(raw) {
		return fallback
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fallback
	}

	if s, ok := scalarToString(v); ok {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			return trimmed
		}
		return fallback
	}

	if record, ok := v.(map[string]any); ok {
		// Only string values count for display purposes.
		for _, key := range []string{"username", "name", "author", "email", "displayName"} {
			if s, ok := record[key].(string); ok {
				if trimmed := strings.TrimSpace(s); trimmed != "" {
					return trimmed
				}
			}
		}
	}

	return fallback
}

func addToken(set map[string]struct{}, value string) {
	trimmed := strings.ToLower(strings.TrimSpace(value))
	if trimmed != "" {
		set[trimmed] = struct{}{}
	}
}

func processString(set map[string]struct{}, value string) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return
	}

	addToken(set, trimmed)

	for _, email := range emailPattern.FindAllString(trimmed, -1) {
		addToken(set, email)
		addToken(set, strings.SplitN(email, "@", 2)[0])
	}

	// "Jane Doe <jane@x.org>" style strings: the part before the bracket
	// is a candidate on its own.
	addToken(set, bracketPattern.Split(trimmed, 2)[0])

	for _, fragment := range fragmentPattern.Split(trimmed, -1) {
		addToken(set, fragment)
	}
}

// CollectTokens derives the normalized token set from a raw author payload
// plus any fallback identity strings. The result is sorted and de-duplicated,
// so deriving twice from the same input yields the same slice.
func CollectTokens(raw json.RawMessage, fallbacks ...string) []string {
	set := make(map[string]struct{})

	for _, fallback := range fallbacks {
		processString(set, fallback)
	}
	for _, candidate := range enumerateAuthorStrings(raw) {
		processString(set, candidate)
	}

	tokens := make([]string, 0, len(set))
	for token := range set {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)
	return tokens
}

// UserTokens derives the token set for the logged-in user from their name
// and email.
func UserTokens(user models.UserProfile) []string {
	raw, _ := json.Marshal(map[string]string{"name": user.Name, "email": user.Email})
	return CollectTokens(raw, user.Name, user.Email)
}

// CanClose reports whether user may be offered the close action for topic:
// true iff their token sets intersect. This is a UX convenience only; the
// backend performs the authoritative check and may still reject.
func CanClose(user *models.UserProfile, topic models.Topic) bool {
	if user == nil {
		return false
	}

	topicTokens := make(map[string]struct{}, len(topic.AuthorTokens))
	for _, token := range topic.AuthorTokens {
		addToken(topicTokens, token)
	}
	if len(topicTokens) == 0 {
		addToken(topicTokens, topic.Author)
	}
	if len(topicTokens) == 0 {
		return false
	}

	for _, token := range UserTokens(*user) {
		if _, ok := topicTokens[token]; ok {
			return true
		}
	}
	return false
}
