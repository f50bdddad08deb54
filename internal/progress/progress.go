// Package progress draws a trickling busy bar on a terminal while requests
// are in flight.
package progress

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"
)

const (
	barWidth     = 24
	startValue   = 0.08
	maxTrickle   = 0.994
	trickleRatio = 0.1
)

// Bar implements wms.ProgressIndicator.
type Bar struct {
	mutex   sync.Mutex
	out     io.Writer
	enabled bool
	active  bool
	value   float64
}

// New creates a bar on f, drawn only when f is a terminal.
func New(f *os.File) *Bar {
	return NewWriter(f, f != nil && term.IsTerminal(int(f.Fd())))
}

// NewWriter creates a bar on w; nothing is drawn unless enabled.
func NewWriter(w io.Writer, enabled bool) *Bar {
	return &Bar{out: w, enabled: enabled}
}

// Start shows the bar. Starting an active bar is a no-op.
func (b *Bar) Start() {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	if b.active {
		return
	}

	b.active = true
	b.value = startValue
	b.render()
}

// Inc advances the bar by a shrinking step; it never reaches the end on
// its own.
func (b *Bar) Inc() {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	if !b.active {
		return
	}

	b.value += (1 - b.value) * trickleRatio
	if b.value > maxTrickle {
		b.value = maxTrickle
	}

	b.render()
}

// Done completes and hides the bar.
func (b *Bar) Done() {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	if !b.active {
		return
	}

	b.active = false
	b.value = 0

	if b.enabled {
		_, _ = fmt.Fprintf(b.out, "\r%s\r", strings.Repeat(" ", barWidth+2))
	}
}

// Active reports whether the bar is shown.
func (b *Bar) Active() bool {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	return b.active
}

// Value returns the current fill ratio.
func (b *Bar) Value() float64 {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	return b.value
}

func (b *Bar) render() {
	if !b.enabled {
		return
	}

	filled := int(b.value * barWidth)
	_, _ = fmt.Fprintf(b.out, "\r[%s%s]", strings.Repeat("=", filled), strings.Repeat(" ", barWidth-filled))
}
