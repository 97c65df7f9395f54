package shipment

import (
	"encoding/json"

	"shiptracker/internal/pkg/errs"
)

// Metadata holds arbitrary structured attributes attached to a shipment.
// The core stores and returns the document without interpreting it.
type Metadata map[string]any

// ParseMetadata decodes a raw JSON document into Metadata. The document must
// be a JSON object; any other shape is rejected. Nil or empty input yields
// nil metadata without error.
//
// Callers treating malformed metadata as a soft failure should catch the
// returned error and proceed with nil metadata, surfacing a warning instead
// of aborting the mutation.
func ParseMetadata(raw []byte) (Metadata, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var m Metadata
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("metadata", err)
	}
	return m, nil
}
