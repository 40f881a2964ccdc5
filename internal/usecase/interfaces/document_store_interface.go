package interfaces

import "context"

// IDocumentStore abstracts the remote folder-and-file document store the
// cooperative keeps its cycle data in.
//
// Contract assumed by the callers:
//   - Read and Write are individually atomic: a Read never observes a
//     partially written body.
//   - There is no compare-and-swap and no multi-document transaction. Any
//     read-modify-write against a shared document must be serialized by the
//     caller (see the volume gate in the usecase layer).
//   - FindByName returns the empty string when no document matches.

type IDocumentStore interface {
	Read(ctx context.Context, id string) ([]byte, error)
	Write(ctx context.Context, id string, body []byte) error
	FindByName(ctx context.Context, name, containerID string) (string, error)
	Create(ctx context.Context, name, containerID string, body []byte) (string, error)
}
