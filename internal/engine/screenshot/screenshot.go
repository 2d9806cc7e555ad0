// Package screenshot saves rendered frames as PNG files.
package screenshot

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// Writer names and writes screenshots into a directory.
type Writer struct {
	dir    string
	prefix string
	now    func() time.Time
	last   string
	seq    int
}

// NewWriter creates a writer that saves into dir with the given file prefix.
func NewWriter(dir, prefix string) *Writer {
	return &Writer{dir: dir, prefix: prefix, now: time.Now}
}

// Dir returns the output directory.
func (w *Writer) Dir() string { return w.dir }

// SaveFrame writes bottom-up RGBA rows, as read back from OpenGL, as a
// top-down PNG.
func (w *Writer) SaveFrame(pixels []byte, width, height int) (string, error) {
	img, err := FlipRows(pixels, width, height)
	if err != nil {
		return "", err
	}
	return w.Save(img)
}

// Save encodes img to the next file name and returns the path.
func (w *Writer) Save(img image.Image) (string, error) {
	if w.dir != "" {
		if err := os.MkdirAll(w.dir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	path := w.nextName()
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}
	return path, nil
}

// nextName returns a timestamped name. Captures within the same second get
// a numeric suffix.
func (w *Writer) nextName() string {
	stamp := w.now().Format("2006-01-02_15-04-05")
	if stamp == w.last {
		w.seq++
	} else {
		w.last, w.seq = stamp, 0
	}

	name := fmt.Sprintf("%s_%s.png", w.prefix, stamp)
	if w.seq > 0 {
		name = fmt.Sprintf("%s_%s_%d.png", w.prefix, stamp, w.seq)
	}
	return filepath.Join(w.dir, name)
}

// FlipRows copies bottom-up RGBA pixels into a top-down image.
func FlipRows(pixels []byte, width, height int) (*image.RGBA, error) {
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := range height {
		src := (height - 1 - y) * rowSize
		copy(img.Pix[y*img.Stride:y*img.Stride+rowSize], pixels[src:src+rowSize])
	}
	return img, nil
}
