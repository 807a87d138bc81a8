package vid2gif

import (
	"fmt"
	"os"
)

type fileSystem interface {
	Remove(string) error
}

type localFS struct{}

func (localFS) Remove(name string) error { return os.Remove(name) }

var fs fileSystem = localFS{}

// ExternalToolError reports a non zero exit from one of the encoder passes.
type ExternalToolError struct {
	Phase string
	Err   error
}

func (self *ExternalToolError) Error() string {
	return fmt.Sprintf("vid2gif: %s failed: %v", self.Phase, self.Err)
}

func (self *ExternalToolError) Unwrap() error { return self.Err }

// Request describes one conversion. Every name is fully derived before the
// pipeline runs; two concurrent invocations only ever share the palette
// name, which the timestamp token keeps unique per invocation.
type Request struct {
	Input   string
	Output  string
	Palette string
	Options
}

// Pipeline drives the two pass conversion: generate a palette from the
// input, encode the input against that palette, remove the palette.
type Pipeline struct {
	Runner   Runner
	Progress func(format string, a ...any)
}

func (self *Pipeline) progress(format string, a ...any) {
	if self.Progress != nil {
		self.Progress(format, a...)
	}
}

// Run executes the conversion. Phases are strictly sequential and fail fast:
// a palette generation failure means encoding is never attempted. The
// palette is removed no matter which phase fails; removal failure is never
// fatal.
func (self *Pipeline) Run(req Request) error {
	defer func() { _ = fs.Remove(req.Palette) }()
	self.progress("Generating palette from %s", req.Input)
	if err := self.Runner.GeneratePalette(req.Input, req.Palette, req.Options); err != nil {
		return err
	}
	self.progress("Encoding %s", req.Output)
	return self.Runner.EncodeWithPalette(req.Input, req.Palette, req.Output, req.Options)
}
