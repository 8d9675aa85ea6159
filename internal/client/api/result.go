package api

import "encoding/json"

// Result is the normalized outcome of one backend call: the HTTP status plus
// the raw body, tagged by shape. Exactly one of JSON and Text is set when
// the response carried a body; both are empty for body-less responses.
//
// Non-2xx statuses are not errors at this level. Callers inspect Status and
// decode the body through the endpoint-specific decoders below.
type Result struct {
	Status int
	JSON   json.RawMessage
	Text   string
}

// OK reports whether the status is in the 2xx range.
func (r Result) OK() bool {
	return r.Status >= 200 && r.Status < 300
}

// Decode unmarshals a JSON body into v. It returns false when the response
// had no JSON body or the body does not parse.
func (r Result) Decode(v any) bool {
	if len(r.JSON) == 0 {
		return false
	}
	return json.Unmarshal(r.JSON, v) == nil
}

// Message extracts a human-readable message from the body: a bare text body
// is returned verbatim, a JSON body is probed for "message" then "error".
// Returns "" when nothing usable is present.
func (r Result) Message() string {
	if r.Text != "" {
		return r.Text
	}
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if !r.Decode(&payload) {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	return payload.Error
}
