/*
Package vid2gif converts video files into optimized animated GIFs by driving
an external ffmpeg binary through a two pass palette pipeline: a custom color
palette is computed from the source video first, then the video is re-encoded
against that palette. Compared to ffmpeg's single pass GIF output this gives
materially better colors at comparable or smaller file size.
*/
package vid2gif

import "fmt"

type ToolVersion struct {
	Major, Minor, Patch uint
}

func (v ToolVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

func (v ToolVersion) Equal(o ToolVersion) bool {
	return v.Major == o.Major && v.Minor == o.Minor && v.Patch == o.Patch
}

var Version = ToolVersion{1, 0, 0}
