package vid2gif

import (
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Runner abstracts the two external encoder invocations so the pipeline can
// be exercised without a real ffmpeg binary.
type Runner interface {
	GeneratePalette(input, palette string, o Options) error
	EncodeWithPalette(input, palette, output string, o Options) error
}

// Options carries the sampling and scaling policy applied identically by
// both passes.
type Options struct {
	FPS   int
	Width int
}

func (o Options) withDefaults() Options {
	if o.FPS <= 0 {
		o.FPS = DefaultFPS
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	return o
}

// LocateFFmpeg resolves the ffmpeg binary on PATH.
func LocateFFmpeg() (string, error) {
	path, err := exec.LookPath("ffmpeg")
	if err != nil {
		return "", ErrFFmpegNotFound
	}
	return path, nil
}

// FFmpeg is the Runner backed by the real binary. Encoder stdout/stderr are
// passed through to the configured writers so its own progress output stays
// visible.
type FFmpeg struct {
	Path   string
	Stdout io.Writer
	Stderr io.Writer
}

// NewFFmpeg returns a runner whose encoder output goes to the process
// stdout/stderr.
func NewFFmpeg(path string) *FFmpeg {
	if path == "" {
		path = "ffmpeg"
	}
	return &FFmpeg{Path: path, Stdout: os.Stdout, Stderr: os.Stderr}
}

func filter_chain(o Options) string {
	return fmt.Sprintf("fps=%d,scale=%d:-1:flags=lanczos", o.FPS, o.Width)
}

func palette_args(input, palette string, o Options) []string {
	return []string{"-y", "-i", input, "-vf", filter_chain(o) + ",palettegen", palette}
}

func encode_args(input, palette, output string, o Options) []string {
	return []string{
		"-y", "-i", input, "-i", palette,
		"-filter_complex", filter_chain(o) + "[x];[x][1:v]paletteuse",
		output,
	}
}

func (self *FFmpeg) run(phase string, args []string) error {
	cmd := exec.Command(self.Path, args...)
	cmd.Stdout = self.Stdout
	cmd.Stderr = self.Stderr
	if err := cmd.Run(); err != nil {
		return &ExternalToolError{Phase: phase, Err: err}
	}
	return nil
}

func (self *FFmpeg) GeneratePalette(input, palette string, o Options) error {
	return self.run("palette generation", palette_args(input, palette, o.withDefaults()))
}

func (self *FFmpeg) EncodeWithPalette(input, palette, output string, o Options) error {
	return self.run("encoding", encode_args(input, palette, output, o.withDefaults()))
}
