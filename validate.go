package vid2gif

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// VideoExts lists the container formats accepted as conversion input. The
// check is by file name suffix only and deliberately case sensitive; a file
// with a matching extension but broken contents is left for ffmpeg to
// reject.
var VideoExts = map[string]bool{
	"mp4":  true,
	"mov":  true,
	"avi":  true,
	"mkv":  true,
	"webm": true,
	"flv":  true,
	"m4v":  true,
	"ts":   true,
}

var (
	// ErrNoInput means no input video was specified.
	ErrNoInput = errors.New("vid2gif: no input video specified")

	// ErrUnsupportedFormat means the input file extension is not a
	// recognized video container.
	ErrUnsupportedFormat = errors.New("vid2gif: unsupported video format")

	// ErrFFmpegNotFound means no ffmpeg binary is available on PATH.
	ErrFFmpegNotFound = errors.New("vid2gif: ffmpeg not found in PATH")
)

// CheckInput validates the input path without opening the file.
func CheckInput(path string) error {
	if path == "" {
		return ErrNoInput
	}
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if !VideoExts[ext] {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return nil
}
