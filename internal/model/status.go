package model

// ThumbnailState represents where a card's image is in its load cycle
type ThumbnailState string

const (
	// ThumbnailEmpty means no image has ever been applied
	ThumbnailEmpty ThumbnailState = "Empty"

	// ThumbnailLoading means a render request is in flight
	ThumbnailLoading ThumbnailState = "Loading"

	// ThumbnailLoaded means the latest applied image is on screen
	ThumbnailLoaded ThumbnailState = "Loaded"

	// ThumbnailFailed means the last render failed and the previous image was kept
	ThumbnailFailed ThumbnailState = "Failed"

	// ThumbnailDiscarded means no image will arrive for the current item:
	// the request was skipped or abandoned before it ran
	ThumbnailDiscarded ThumbnailState = "Discarded"
)

// String returns the string representation of ThumbnailState
func (ts ThumbnailState) String() string {
	return string(ts)
}

// IsPending returns true while a render request is outstanding
func (ts ThumbnailState) IsPending() bool {
	return ts == ThumbnailLoading
}
