package vid2gif

import (
	"strings"
	"time"
)

// Fixed conversion policy: sample 10 frames per second and scale to 640px
// width preserving aspect ratio, with lanczos resampling. Both passes of the
// pipeline must apply the identical filter or the palette will not match the
// frames it is applied to.
const (
	DefaultFPS   = 10
	DefaultWidth = 640

	DefaultBaseName = "output"
)

// TimestampToken formats t for embedding in file names. The token doubles as
// the uniqueness qualifier for the intermediate palette, so it is generated
// once per invocation and shared by every derived name.
func TimestampToken(t time.Time) string {
	return t.Format("2006-01-02_15-04-05")
}

// OutputName derives the final GIF file name from the user supplied base
// name and an optional timestamp token. A trailing .gif on the base name is
// stripped first, which makes the derivation idempotent: naming "demo.gif"
// again still yields "demo.gif".
func OutputName(base, timestamp string) string {
	if base == "" {
		base = DefaultBaseName
	}
	base = strings.TrimSuffix(base, ".gif")
	if timestamp != "" {
		base += "_" + timestamp
	}
	return base + ".gif"
}

// PaletteName is the name of the intermediate palette image for one
// invocation.
func PaletteName(timestamp string) string {
	return "palette_" + timestamp + ".png"
}
