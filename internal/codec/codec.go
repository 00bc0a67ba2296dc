// Package codec converts the full store state to and from transportable
// forms: an opaque copy-pasteable sync string and pretty-printed JSON file
// backups. Both import paths are destructive overwrites; callers must
// confirm before applying a decoded snapshot.
package codec

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"github.com/kwalters/jobtrack/internal/types"
)

// snapshotSchema is the minimal structural requirement for imported data:
// an object with a jobs array. Anything stricter would reject backups from
// older versions that carried extra fields.
const snapshotSchema = `{
	"type": "object",
	"required": ["jobs"],
	"properties": {
		"jobs": {"type": "array"}
	}
}`

// Encode serializes a snapshot to canonical JSON and wraps it in base64.
// Base64 over UTF-8 bytes round-trips arbitrary Unicode content in free-text
// fields.
func Encode(snapshot types.Snapshot) (string, error) {
	if snapshot.Jobs == nil {
		snapshot.Jobs = []types.JobApplication{}
	}
	data, err := json.Marshal(snapshot)
	if err != nil {
		return "", fmt.Errorf("failed to serialize snapshot: %w", err)
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// Decode is the inverse of Encode. It returns a *DecodeError when the input
// is not validly encoded and a *SchemaError when the decoded structure lacks
// the required shape.
func Decode(syncString string) (types.Snapshot, error) {
	data, err := base64.StdEncoding.DecodeString(syncString)
	if err != nil {
		return types.Snapshot{}, &DecodeError{Message: "not valid base64", Cause: err}
	}
	if !json.Valid(data) {
		return types.Snapshot{}, &DecodeError{Message: "decoded bytes are not JSON"}
	}
	return validateAndUnmarshal(data)
}

// validateAndUnmarshal applies the minimal structural validation shared by
// the sync and file import paths, then unmarshals into the strict snapshot.
func validateAndUnmarshal(data []byte) (types.Snapshot, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(snapshotSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return types.Snapshot{}, &DecodeError{Message: "structural validation failed", Cause: err}
	}
	if !result.Valid() {
		schemaErr := &SchemaError{}
		for _, desc := range result.Errors() {
			schemaErr.Details = append(schemaErr.Details, desc.String())
		}
		return types.Snapshot{}, schemaErr
	}

	var snapshot types.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return types.Snapshot{}, &DecodeError{Message: "failed to unmarshal snapshot", Cause: err}
	}
	if snapshot.Jobs == nil {
		snapshot.Jobs = []types.JobApplication{}
	}
	return snapshot, nil
}
