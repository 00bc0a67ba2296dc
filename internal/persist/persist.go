// Package persist defines the local key-value persistence boundary the
// record store saves its serialized state through.
package persist

// KV is the persistence adapter contract: an opaque blob per key. Missing
// keys are reported through the ok return, not an error, so first runs are
// not failures.
type KV interface {
	Load(key string) (blob []byte, ok bool, err error)
	Save(key string, blob []byte) error
	Remove(key string) error
	Close() error
}

// SnapshotKey is the key the full store snapshot is persisted under.
const SnapshotKey = "jobtrack_snapshot"
