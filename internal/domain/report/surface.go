package report

import (
	"time"

	"github.com/rs/zerolog"
)

// Surface is the rendering target for a printable document: a window, a
// spool file, whatever the host provides. Open is asked first; a surface
// that cannot open aborts the whole print silently.
type Surface interface {
	Open() error
	Write(doc string) error
	Print() error
	Close() error
}

const defaultCloseDelay = 500 * time.Millisecond

// Printer pushes a rendered document through a Surface: open, write,
// print, then close after a short delay so the print dialog has the
// document while it is up.
type Printer struct {
	surface    Surface
	closeDelay time.Duration
	log        zerolog.Logger
}

// NewPrinter wires a printer to its surface. closeDelay <= 0 picks the
// default.
func NewPrinter(surface Surface, closeDelay time.Duration, log zerolog.Logger) *Printer {
	if closeDelay <= 0 {
		closeDelay = defaultCloseDelay
	}
	return &Printer{surface: surface, closeDelay: closeDelay, log: log}
}

// Print runs the document through the surface. A surface that refuses to
// open is a silent no-op; later failures are logged and abandoned, never
// retried.
func (p *Printer) Print(doc string) {
	if err := p.surface.Open(); err != nil {
		return
	}
	if err := p.surface.Write(doc); err != nil {
		p.log.Warn().Err(err).Msg("writing report to surface failed")
		return
	}
	if err := p.surface.Print(); err != nil {
		p.log.Warn().Err(err).Msg("print trigger failed")
	}
	time.AfterFunc(p.closeDelay, func() {
		if err := p.surface.Close(); err != nil {
			p.log.Warn().Err(err).Msg("closing report surface failed")
		}
	})
}
