package catalog

import "context"

//go:generate mockgen -destination=mocks/source_mock.go -package=mocks github.com/3loulou/phone-purchase-referee/internal/catalog Source

// Source supplies catalog snapshots to the CLI. The engine itself never
// loads anything; it only ever sees an already-built snapshot.
type Source interface {
	Load(ctx context.Context) (*Snapshot, error)
}

// FileSource loads a snapshot from a local file.
type FileSource struct {
	Path string
}

func (f FileSource) Load(_ context.Context) (*Snapshot, error) {
	return Load(f.Path)
}
