package term

import (
	"context"
	"io"
	"time"

	"github.com/muesli/termenv"

	"starfield/internal/raster"
)

// Screen redraws frames in place on a terminal.
type Screen struct {
	out    *termenv.Output
	height int // lines written by the last Draw
}

// NewScreen returns a Screen writing 256-color escapes to w.
func NewScreen(w io.Writer) *Screen {
	out := termenv.NewOutput(w, termenv.WithProfile(termenv.ANSI256))
	out.HideCursor()
	return &Screen{out: out}
}

// Draw writes cells top row first (the highest y) and moves the cursor
// back to where the frame started, so the next Draw overwrites it.
func (s *Screen) Draw(cells *raster.Buffer[Cell]) error {
	if s.height > 0 {
		s.out.CursorUp(s.height)
	}
	for y := cells.Height - 1; y >= 0; y-- {
		line := ColorString(cells.Row(y)) + termenv.CSI + termenv.ResetSeq + "m\n"
		if _, err := io.WriteString(s.out, line); err != nil {
			return err
		}
	}
	s.height = cells.Height
	return nil
}

// Close resets colors and shows the cursor again.
func (s *Screen) Close() {
	s.out.Reset()
	s.out.ShowCursor()
}

// Loop draws frame(t) every delay, advancing t by step, until ctx is done
// or frames have been drawn. frames <= 0 runs until ctx is done.
func Loop(ctx context.Context, s *Screen, frames int, step float64, delay time.Duration, frame func(t float64) *raster.Buffer[Cell]) error {
	ticker := time.NewTicker(delay)
	defer ticker.Stop()

	t := 0.0
	for i := 0; frames <= 0 || i < frames; i++ {
		if err := s.Draw(frame(t)); err != nil {
			return err
		}
		t += step
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
	return nil
}
