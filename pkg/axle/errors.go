package axle

import "fmt"

// bodyExcerptLimit caps how much upstream body ends up in error messages
// (and therefore in operator logs).
const bodyExcerptLimit = 250

// UpstreamError reports a non-success status from the transaction API.
type UpstreamError struct {
	StatusCode int
	Body       string // excerpt, at most bodyExcerptLimit chars
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("axle: upstream returned %d: %s", e.StatusCode, e.Body)
}

// MalformedResponseError reports a success status whose body could not be
// decoded or did not carry the expected data.result array.
type MalformedResponseError struct {
	Reason string
	Err    error
}

func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("axle: malformed response: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("axle: malformed response: %s", e.Reason)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

func newUpstreamError(status int, body []byte) *UpstreamError {
	excerpt := string(body)
	if len(excerpt) > bodyExcerptLimit {
		excerpt = excerpt[:bodyExcerptLimit]
	}
	return &UpstreamError{StatusCode: status, Body: excerpt}
}
