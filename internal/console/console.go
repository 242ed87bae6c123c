// Package console renders forecast slots for a text terminal.
package console

import (
	"fmt"
	"io"
	"strings"

	"ipweather/internal/weather"
)

// DefaultWidth is the width of a rendered forecast block
const DefaultWidth = 80

// TimestampLayout renders as e.g. "03 AM, Jun 01, 2024"
const TimestampLayout = "03 PM, Jan 02, 2006"

// Console writes fixed-width forecast blocks
type Console struct {
	w     io.Writer
	width int
}

// New creates a Console. A non-positive width selects DefaultWidth.
func New(w io.Writer, width int) *Console {
	if width <= 0 {
		width = DefaultWidth
	}
	return &Console{w: w, width: width}
}

// Render writes one block per slot. No slots means no output.
func (c *Console) Render(label string, slots []weather.Slot) error {
	for _, slot := range slots {
		if err := c.renderSlot(label, slot); err != nil {
			return fmt.Errorf("failed to render forecast: %w", err)
		}
	}
	return nil
}

func (c *Console) renderSlot(label string, slot weather.Slot) error {
	separator := strings.Repeat("-", c.width)
	e := slot.Entry

	lines := []string{
		separator,
		Header(label, slot, c.width),
		e.Temperature + "°F",
		e.Weather,
		"Wind " + e.Wind,
		"R.H. " + e.RelativeHumidity,
		"Precip. " + e.PrecType + " " + e.PrecAmount,
		separator,
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(c.w, line); err != nil {
			return err
		}
	}
	return nil
}

// Header formats "<label> [<timestamp>]" left-justified to width. Longer
// headers are not cut.
func Header(label string, slot weather.Slot, width int) string {
	return fmt.Sprintf("%-*s", width, label+" ["+slot.ValidAt.Format(TimestampLayout)+"]")
}
