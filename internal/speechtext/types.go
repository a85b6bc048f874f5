package speechtext

import "encoding/json"

// Job status values reported by the service. Anything else is treated as
// still in progress.
const (
	StatusFinished = "finished"
	StatusFailed   = "failed"
)

// StatusResponse is one polled response from the /results endpoint. Optional
// fields are pointers so that an absent key can be told apart from a zero
// value; the service omits fields freely depending on job state.
type StatusResponse struct {
	ID     string  `json:"id,omitempty"`
	Status *string `json:"status,omitempty"`

	// The quota key really does contain a space.
	RemainingSeconds *float64 `json:"remaining seconds,omitempty"`

	Results *RecognitionResults `json:"results,omitempty"`

	raw []byte
}

// Raw returns the undecoded response body, kept for diagnostics.
func (r *StatusResponse) Raw() []byte {
	return r.raw
}

// Terminal reports whether the response carries a state that ends polling.
func (r *StatusResponse) Terminal() bool {
	if r.Status == nil {
		return false
	}
	return *r.Status == StatusFinished || *r.Status == StatusFailed
}

// RecognitionResults is the nested payload carrying the transcript and its
// auxiliary metadata.
type RecognitionResults struct {
	Transcript      *string           `json:"transcript,omitempty"`
	WordTimeOffsets []WordOffset      `json:"word_time_offsets,omitempty"`
	Speakers        []json.RawMessage `json:"speakers,omitempty"`
	Summary         *string           `json:"summary,omitempty"`
}

// WordOffset is one word-level timing entry with its confidence score.
type WordOffset struct {
	StartTime  float64 `json:"start_time"`
	EndTime    float64 `json:"end_time"`
	Word       string  `json:"word"`
	Confidence float64 `json:"confidence"`
}

type submitResponse struct {
	ID string `json:"id"`
}

// DecodeStatusResponse parses a /results body, retaining the raw bytes for
// diagnostics.
func DecodeStatusResponse(body []byte) (*StatusResponse, error) {
	var status StatusResponse
	if err := json.Unmarshal(body, &status); err != nil {
		return nil, err
	}
	status.raw = body
	return &status, nil
}
