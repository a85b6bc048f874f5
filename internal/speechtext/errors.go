package speechtext

import "fmt"

// UploadError reports a non-2xx response from the recognition endpoint.
type UploadError struct {
	StatusCode int
	Body       string
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("upload failed: status %d: %s", e.StatusCode, e.Body)
}
