package vid2gif

import (
	"os"

	"github.com/kovidgoyal/imaging"
)

// Summary describes the produced GIF.
type Summary struct {
	Frames    int
	Width     int
	Height    int
	LoopCount uint
	Size      int64
}

// Inspect decodes the finished GIF and reports its shape. Used only for the
// post conversion report; a failure here must not fail the conversion.
func Inspect(path string) (Summary, error) {
	var s Summary
	fi, err := os.Stat(path)
	if err != nil {
		return s, err
	}
	img, err := imaging.OpenAll(path)
	if err != nil {
		return s, err
	}
	s.Frames = len(img.Frames)
	s.LoopCount = img.LoopCount
	s.Size = fi.Size()
	if img.Metadata != nil {
		s.Width = int(img.Metadata.PixelWidth)
		s.Height = int(img.Metadata.PixelHeight)
	}
	return s, nil
}
