package vid2gif

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestOutputName(t *testing.T) {
	require.Equal(t, "output.gif", OutputName("", ""))
	require.Equal(t, "demo.gif", OutputName("demo", ""))
	// a base name that already carries the suffix must not be doubled
	require.Equal(t, "demo.gif", OutputName("demo.gif", ""))
	require.Equal(t, "demo_2024-01-01_10-00-00.gif", OutputName("demo", "2024-01-01_10-00-00"))
	require.Equal(t, "demo_2024-01-01_10-00-00.gif", OutputName("demo.gif", "2024-01-01_10-00-00"))
	require.Equal(t, "output_2024-01-01_10-00-00.gif", OutputName("", "2024-01-01_10-00-00"))
}

func TestTimestampToken(t *testing.T) {
	at := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	require.Equal(t, "2024-01-01_10-00-00", TimestampToken(at))
	require.Equal(t, "palette_2024-01-01_10-00-00.png", PaletteName(TimestampToken(at)))
}
