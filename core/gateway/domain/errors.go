package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// RemoteError is a downstream HTTP failure: the call reached the service and
// came back with a 4xx/5xx. Body holds the raw response body, which may or
// may not be JSON.
type RemoteError struct {
	Status int
	Body   []byte
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote call failed with status %d", e.Status)
}

// Message best-effort extracts a human-readable "respuesta" field from the
// downstream error body. Non-string values are stringified rather than
// dropped, matching what downstream consumers historically received. It
// never fails: an unparseable or absent field yields "".
func (e *RemoteError) Message() string {
	if len(e.Body) == 0 {
		return ""
	}
	var m map[string]any
	if err := json.Unmarshal(e.Body, &m); err != nil {
		return ""
	}
	v, ok := m["respuesta"]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// RemoteStatus reports the downstream HTTP status carried by err, or 0 when
// err is not a RemoteError.
func RemoteStatus(err error) int {
	var rerr *RemoteError
	if errors.As(err, &rerr) {
		return rerr.Status
	}
	return 0
}

// IsRemoteNotFound reports whether err is a downstream 404.
func IsRemoteNotFound(err error) bool {
	return RemoteStatus(err) == http.StatusNotFound
}
