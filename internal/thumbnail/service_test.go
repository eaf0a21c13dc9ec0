package thumbnail

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var errMissing = errors.New("missing")

type mapResolver struct {
	images map[string][]byte
}

func (r *mapResolver) Resolve(name string) ([]byte, error) {
	data, ok := r.images[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errMissing, name)
	}
	return data, nil
}

// blockingResolver parks every call until release is closed
type blockingResolver struct {
	data    []byte
	release chan struct{}
	active  int32
	peak    int32
}

func (r *blockingResolver) Resolve(string) ([]byte, error) {
	n := atomic.AddInt32(&r.active, 1)
	for {
		peak := atomic.LoadInt32(&r.peak)
		if n <= peak || atomic.CompareAndSwapInt32(&r.peak, peak, n) {
			break
		}
	}
	<-r.release
	atomic.AddInt32(&r.active, -1)
	return r.data, nil
}

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestNewService_ClampsParallelism(t *testing.T) {
	resolver := &mapResolver{}

	tests := []struct {
		requested int
		expected  int
	}{
		{0, MinMaxParallel},
		{-3, MinMaxParallel},
		{3, 3},
		{100, MaxMaxParallel},
	}

	for _, test := range tests {
		service := NewService(resolver, test.requested)
		// Acquire exactly the expected capacity without blocking, then one more must fail.
		assert.True(t, service.sem.TryAcquire(int64(test.expected)), "requested %d", test.requested)
		assert.False(t, service.sem.TryAcquire(1), "requested %d", test.requested)
	}
}

func TestRender_ResizesAndCrops(t *testing.T) {
	resolver := &mapResolver{images: map[string][]byte{"wide": encodePNG(t, 480, 320)}}
	service := NewService(resolver, 1)

	img, err := service.Render(context.Background(), NewRequest("wide", 300, 200))
	require.NoError(t, err)
	assert.Equal(t, 300, img.Bounds().Dx())
	assert.Equal(t, 200, img.Bounds().Dy())
}

func TestRender_CropClampsToScaledHeight(t *testing.T) {
	resolver := &mapResolver{images: map[string][]byte{"wide": encodePNG(t, 480, 320)}}
	service := NewService(resolver, 1)

	// 480x320 scaled to width 150 is 150x100, shorter than the requested 200
	img, err := service.Render(context.Background(), NewRequest("wide", 150, 200))
	require.NoError(t, err)
	assert.Equal(t, 150, img.Bounds().Dx())
	assert.Equal(t, 100, img.Bounds().Dy())
}

func TestRender_InvalidSize(t *testing.T) {
	service := NewService(&mapResolver{}, 1)

	for _, req := range []Request{
		NewRequest("any", 0, 200),
		NewRequest("any", -10, 200),
		NewRequest("any", 100, 0),
	} {
		_, err := service.Render(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidSize, "request %dx%d", req.Width, req.Height)
	}
}

func TestRender_ResolveFailure(t *testing.T) {
	service := NewService(&mapResolver{}, 1)

	_, err := service.Render(context.Background(), NewRequest("nope", 100, 100))
	assert.ErrorIs(t, err, errMissing)
}

func TestRender_DecodeFailure(t *testing.T) {
	resolver := &mapResolver{images: map[string][]byte{"junk": []byte("not an image")}}
	service := NewService(resolver, 1)

	_, err := service.Render(context.Background(), NewRequest("junk", 100, 100))
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "decode"), "unexpected error: %v", err)
}

func TestRender_CancelledContext(t *testing.T) {
	resolver := &mapResolver{images: map[string][]byte{"wide": encodePNG(t, 40, 20)}}
	service := NewService(resolver, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := service.Render(ctx, NewRequest("wide", 10, 10))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoad_ReportsResult(t *testing.T) {
	resolver := &mapResolver{images: map[string][]byte{"wide": encodePNG(t, 480, 320)}}
	service := NewService(resolver, 2)

	req := NewRequest("wide", 240, 100)
	results := make(chan Result, 1)
	service.Load(context.Background(), req, func(r Result) { results <- r })
	service.Wait()

	select {
	case r := <-results:
		require.NoError(t, r.Err)
		assert.Equal(t, req.ID, r.Request.ID)
		assert.Equal(t, 240, r.Image.Bounds().Dx())
		assert.Equal(t, 100, r.Image.Bounds().Dy())
	default:
		t.Fatal("Load did not report a result before Wait returned")
	}
}

func TestLoad_ReportsFailure(t *testing.T) {
	service := NewService(&mapResolver{}, 1)

	var got Result
	service.Load(context.Background(), NewRequest("nope", 10, 10), func(r Result) { got = r })
	service.Wait()

	assert.ErrorIs(t, got.Err, errMissing)
	assert.Nil(t, got.Image)
}

func TestLoad_BoundsParallelism(t *testing.T) {
	resolver := &blockingResolver{
		data:    encodePNG(t, 8, 8),
		release: make(chan struct{}),
	}
	service := NewService(resolver, 2)

	var mu sync.Mutex
	reported := 0
	for i := 0; i < 6; i++ {
		service.Load(context.Background(), NewRequest("any", 4, 4), func(Result) {
			mu.Lock()
			reported++
			mu.Unlock()
		})
	}

	require.Eventually(t, func() bool {
		return atomic.LoadInt32(&resolver.active) == 2
	}, time.Second, 5*time.Millisecond)

	close(resolver.release)
	service.Wait()

	assert.Equal(t, int32(2), atomic.LoadInt32(&resolver.peak))
	assert.Equal(t, 6, reported)
}

func TestLoad_CancelledWhileWaiting(t *testing.T) {
	resolver := &blockingResolver{
		data:    encodePNG(t, 8, 8),
		release: make(chan struct{}),
	}
	service := NewService(resolver, 1)

	// Occupy the only worker.
	service.Load(context.Background(), NewRequest("busy", 4, 4), nil)
	require.Eventually(t, func() bool {
		return atomic.LoadInt32(&resolver.active) == 1
	}, time.Second, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	results := make(chan Result, 1)
	service.Load(ctx, NewRequest("queued", 4, 4), func(r Result) { results <- r })
	cancel()

	select {
	case r := <-results:
		assert.ErrorIs(t, r.Err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("cancelled load did not report")
	}

	close(resolver.release)
	service.Wait()
}

func TestGenerateRequestID(t *testing.T) {
	a := NewRequest("x", 1, 1)
	b := NewRequest("x", 1, 1)

	assert.True(t, strings.HasPrefix(a.ID, RequestIDPrefix))
	assert.NotEqual(t, a.ID, b.ID)
}

func TestCropCenter_Origin(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 10, 10))
	src.Set(5, 5, color.RGBA{R: 255, A: 255})

	cropped := CropCenter(src, 2, 2)
	assert.Equal(t, 2, cropped.Bounds().Dx())
	r, _, _, _ := cropped.At(1, 1).RGBA()
	assert.Equal(t, uint32(0xffff), r)
}

func TestResizeToWidth_InvalidSource(t *testing.T) {
	_, err := ResizeToWidth(image.NewRGBA(image.Rect(0, 0, 0, 0)), 10)
	assert.ErrorIs(t, err, ErrInvalidSize)
}
