package thumbnail

import (
	"context"
	"image"
)

// Resolver maps an image name to its encoded bytes.
type Resolver interface {
	Resolve(name string) ([]byte, error)
}

// Renderer defines the interface for the thumbnail service.
type Renderer interface {
	// Render decodes, resizes and crops synchronously on the calling goroutine.
	Render(ctx context.Context, req Request) (image.Image, error)

	// Load renders in the background and reports the result on a worker
	// goroutine. Callers touching UI state must marshal back themselves.
	Load(ctx context.Context, req Request, done func(Result))

	// Wait blocks until every in-flight Load has reported.
	Wait()
}
