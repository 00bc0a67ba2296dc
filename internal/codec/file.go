package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/kwalters/jobtrack/internal/types"
)

// ExportFile renders a snapshot as a pretty-printed JSON backup plus a
// suggested filename carrying the current date for disambiguation.
func ExportFile(snapshot types.Snapshot) ([]byte, string, error) {
	if snapshot.Jobs == nil {
		snapshot.Jobs = []types.JobApplication{}
	}
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return nil, "", fmt.Errorf("failed to serialize snapshot: %w", err)
	}
	filename := fmt.Sprintf("backup_%s.json", time.Now().UTC().Format("2006-01-02"))
	return data, filename, nil
}

// ImportFile parses backup file bytes and applies the same minimal
// structural validation as Decode. Invalid JSON is a *ParseError, a missing
// or non-array jobs field a *SchemaError.
func ImportFile(fileBytes []byte) (types.Snapshot, error) {
	if !json.Valid(fileBytes) {
		return types.Snapshot{}, &ParseError{Cause: fmt.Errorf("invalid JSON document")}
	}
	snapshot, err := validateAndUnmarshal(fileBytes)
	if err != nil {
		var decodeErr *DecodeError
		if errors.As(err, &decodeErr) {
			// Inside the file path, decode-level problems surface as
			// parse errors.
			return types.Snapshot{}, &ParseError{Cause: decodeErr}
		}
		return types.Snapshot{}, err
	}
	return snapshot, nil
}
