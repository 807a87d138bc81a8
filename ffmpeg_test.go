package vid2gif

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestFFmpegArgs(t *testing.T) {
	o := Options{FPS: 10, Width: 640}
	want := []string{
		"-y", "-i", "in.mp4",
		"-vf", "fps=10,scale=640:-1:flags=lanczos,palettegen",
		"palette.png",
	}
	if diff := cmp.Diff(want, palette_args("in.mp4", "palette.png", o)); diff != "" {
		t.Fatalf("palette args mismatch (-want +got):\n%s", diff)
	}
	want = []string{
		"-y", "-i", "in.mp4", "-i", "palette.png",
		"-filter_complex", "fps=10,scale=640:-1:flags=lanczos[x];[x][1:v]paletteuse",
		"out.gif",
	}
	if diff := cmp.Diff(want, encode_args("in.mp4", "palette.png", "out.gif", o)); diff != "" {
		t.Fatalf("encode args mismatch (-want +got):\n%s", diff)
	}
}

func TestFilterChainOverrides(t *testing.T) {
	require.Equal(t, "fps=15,scale=320:-1:flags=lanczos", filter_chain(Options{FPS: 15, Width: 320}))
}

func TestOptionsDefaults(t *testing.T) {
	o := Options{}.withDefaults()
	require.Equal(t, DefaultFPS, o.FPS)
	require.Equal(t, DefaultWidth, o.Width)
	o = Options{FPS: 15, Width: 320}.withDefaults()
	require.Equal(t, 15, o.FPS)
	require.Equal(t, 320, o.Width)
}
