package thumbnail

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"log"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/image/draw"
	"golang.org/x/sync/semaphore"
)

// Pool sizing
const (
	DefaultMaxParallel = 2
	MinMaxParallel     = 1
	MaxMaxParallel     = 8
)

// RequestIDPrefix prefixes generated request IDs
const RequestIDPrefix = "thumb-"

// ErrInvalidSize is returned for non-positive target dimensions
var ErrInvalidSize = errors.New("invalid thumbnail size")

// Request describes one thumbnail to render
type Request struct {
	ID     string
	Name   string
	Width  int
	Height int
}

// NewRequest creates a request with a fresh ID
func NewRequest(name string, width, height int) Request {
	return Request{
		ID:     generateRequestID(),
		Name:   name,
		Width:  width,
		Height: height,
	}
}

// Result is the outcome of a background load
type Result struct {
	Request Request
	Image   image.Image
	Err     error
}

// Service renders thumbnails on a bounded pool of goroutines
type Service struct {
	resolver Resolver
	sem      *semaphore.Weighted
	inFlight sync.WaitGroup
}

// NewService creates a new thumbnail service
func NewService(resolver Resolver, maxParallel int) *Service {
	if maxParallel < MinMaxParallel {
		maxParallel = MinMaxParallel
	}
	if maxParallel > MaxMaxParallel {
		maxParallel = MaxMaxParallel
	}

	return &Service{
		resolver: resolver,
		sem:      semaphore.NewWeighted(int64(maxParallel)),
	}
}

// Load renders req in the background and calls done with the result.
// In-flight work is never cancelled because its cell was recycled; ctx only
// bounds the wait for a free worker.
func (s *Service) Load(ctx context.Context, req Request, done func(Result)) {
	s.inFlight.Add(1)
	go func() {
		defer s.inFlight.Done()

		result := Result{Request: req}
		if err := s.sem.Acquire(ctx, 1); err != nil {
			result.Err = fmt.Errorf("waiting for worker: %w", err)
		} else {
			started := time.Now()
			result.Image, result.Err = s.Render(ctx, req)
			s.sem.Release(1)

			if result.Err != nil {
				log.Printf("Thumbnail %s (%s) failed: %v", req.ID, req.Name, result.Err)
			} else {
				log.Printf("Thumbnail %s (%s) rendered %dx%d in %s", req.ID, req.Name, req.Width, req.Height, time.Since(started))
			}
		}

		if done != nil {
			done(result)
		}
	}()
}

// Wait blocks until all in-flight loads have completed
func (s *Service) Wait() {
	s.inFlight.Wait()
}

// Render decodes the named image, scales it to req.Width and crops the
// centre to req.Width x req.Height
func (s *Service) Render(ctx context.Context, req Request) (image.Image, error) {
	if req.Width <= 0 || req.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, req.Width, req.Height)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := s.resolver.Resolve(req.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve image %q: %w", req.Name, err)
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %q: %w", req.Name, err)
	}

	resized, err := ResizeToWidth(src, req.Width)
	if err != nil {
		return nil, err
	}
	return CropCenter(resized, req.Width, req.Height), nil
}

// ResizeToWidth scales src to width, preserving its aspect ratio
func ResizeToWidth(src image.Image, width int) (image.Image, error) {
	bounds := src.Bounds()
	if width <= 0 || bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, fmt.Errorf("%w: resize %dx%d to width %d", ErrInvalidSize, bounds.Dx(), bounds.Dy(), width)
	}

	height := int(math.Round(float64(bounds.Dy()) * float64(width) / float64(bounds.Dx())))
	if height < 1 {
		height = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Src, nil)
	return dst, nil
}

// CropCenter cuts a width x height region from the middle of src.
// Dimensions larger than src are clamped to its bounds.
func CropCenter(src image.Image, width, height int) image.Image {
	bounds := src.Bounds()
	if width > bounds.Dx() {
		width = bounds.Dx()
	}
	if height > bounds.Dy() {
		height = bounds.Dy()
	}

	origin := image.Pt(
		bounds.Min.X+(bounds.Dx()-width)/2,
		bounds.Min.Y+(bounds.Dy()-height)/2,
	)

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), src, origin, draw.Src)
	return dst
}

// generateRequestID generates a unique request ID using UUID v7 so IDs sort by creation time
func generateRequestID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(RequestIDPrefix+"%d", time.Now().UnixNano())
	}
	return RequestIDPrefix + id.String()
}
