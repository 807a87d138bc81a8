package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/pflag"

	"github.com/kovidgoyal/vid2gif"
)

var _ = fmt.Print

var (
	error_style    = color.New(color.FgRed, color.Bold)
	progress_style = color.New(color.FgCyan)
	success_style  = color.New(color.FgGreen, color.Bold)
)

func fatal(err error) {
	error_style.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func usage(flags *pflag.FlagSet) {
	fmt.Fprintln(os.Stderr, "usage: vid2gif -i input-video [-o name] [-t] [--fps n] [--width n]")
	fmt.Fprintln(os.Stderr, "\nConvert a video file into an optimized animated GIF using ffmpeg.")
	fmt.Fprintln(os.Stderr, "\nOptions:")
	fmt.Fprint(os.Stderr, flags.FlagUsages())
}

func main() {
	flags := pflag.NewFlagSet("vid2gif", pflag.ContinueOnError)
	flags.SetOutput(io.Discard) // errors and usage are printed by hand below
	input := flags.StringP("input", "i", "", "input video file")
	output := flags.StringP("output", "o", "", "output name (default \"output\")")
	timestamp := flags.BoolP("timestamp", "t", false, "append a timestamp to the output name")
	fps := flags.Int("fps", vid2gif.DefaultFPS, "frames per second sampled from the input")
	width := flags.Int("width", vid2gif.DefaultWidth, "output width in pixels, height keeps aspect ratio")
	show_version := flags.BoolP("version", "v", false, "print version and exit")
	show_help := flags.BoolP("help", "h", false, "show this help")

	if err := flags.Parse(os.Args[1:]); err != nil {
		error_style.Fprintf(os.Stderr, "Error: %v\n", err)
		usage(flags)
		os.Exit(1)
	}
	if *show_version {
		fmt.Printf("vid2gif %s\n", vid2gif.Version)
		return
	}
	if *show_help || len(os.Args) == 1 {
		usage(flags)
		os.Exit(1)
	}
	if *input == "" {
		error_style.Fprintf(os.Stderr, "Error: %v\n", vid2gif.ErrNoInput)
		usage(flags)
		os.Exit(1)
	}
	if err := vid2gif.CheckInput(*input); err != nil {
		fatal(err)
	}
	ffmpeg_path, err := vid2gif.LocateFFmpeg()
	if err != nil {
		fatal(err)
	}

	token := vid2gif.TimestampToken(time.Now())
	name_token := ""
	if *timestamp {
		name_token = token
	}
	req := vid2gif.Request{
		Input:   *input,
		Output:  vid2gif.OutputName(*output, name_token),
		Palette: vid2gif.PaletteName(token),
		Options: vid2gif.Options{FPS: *fps, Width: *width},
	}
	p := vid2gif.Pipeline{
		Runner: vid2gif.NewFFmpeg(ffmpeg_path),
		Progress: func(format string, a ...any) {
			progress_style.Fprintf(os.Stderr, format+"\n", a...)
		},
	}
	if err := p.Run(req); err != nil {
		fatal(err)
	}
	success_style.Printf("Done: %s\n", req.Output)
	if s, err := vid2gif.Inspect(req.Output); err == nil {
		fmt.Printf("%d frames, %dx%d, %s\n", s.Frames, s.Width, s.Height, human_size(s.Size))
	}
}

func human_size(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMG"[exp])
}
