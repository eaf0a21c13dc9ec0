package thumbnail

// Package thumbnail turns named images into card-sized thumbnails. Rendering
// (decode, scale to width, centre crop) runs on a bounded pool of goroutines;
// results are handed back on the worker goroutine for the caller to marshal.
