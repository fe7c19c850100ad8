package report

import (
	"bytes"
	"fmt"
	"image/jpeg"

	"github.com/icza/mjpeg"

	"wildfire/internal/sims/wildfire"
)

// Recorder writes every observed step as one frame of an MJPEG AVI file.
// Observe cannot report failures, so the first error is kept and returned by
// Close; later frames are skipped.
type Recorder struct {
	w      mjpeg.AviWriter
	scale  int
	opts   jpeg.Options
	buf    bytes.Buffer
	frames int
	err    error
}

// NewRecorder creates path sized for an n×n grid at scale pixels per cell.
func NewRecorder(path string, n, scale, fps int) (*Recorder, error) {
	if scale <= 0 {
		scale = 1
	}
	if fps <= 0 {
		fps = 2
	}
	side := int32(n * scale)
	w, err := mjpeg.New(path, side, side, int32(fps))
	if err != nil {
		return nil, fmt.Errorf("create video %s: %w", path, err)
	}
	return &Recorder{w: w, scale: scale, opts: jpeg.Options{Quality: 90}}, nil
}

// Observe matches wildfire.StepObserver.
func (r *Recorder) Observe(step int, snap *wildfire.Snapshot) {
	if r.err != nil {
		return
	}
	r.buf.Reset()
	if err := jpeg.Encode(&r.buf, StepFrame(step, snap, r.scale), &r.opts); err != nil {
		r.err = fmt.Errorf("encode frame %d: %w", step, err)
		return
	}
	if err := r.w.AddFrame(r.buf.Bytes()); err != nil {
		r.err = fmt.Errorf("add frame %d: %w", step, err)
		return
	}
	r.frames++
}

// Frames returns the number of frames written so far.
func (r *Recorder) Frames() int { return r.frames }

// Close finalises the file and returns the first frame error, if any.
func (r *Recorder) Close() error {
	cerr := r.w.Close()
	if r.err != nil {
		return r.err
	}
	if cerr != nil {
		return fmt.Errorf("close video: %w", cerr)
	}
	return nil
}
