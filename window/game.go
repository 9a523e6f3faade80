package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/sync/errgroup"

	loop "github.com/rhpo/loop.go"
)

var _ ebiten.Game = (*Window)(nil)

func (w *Window) Update() error {
	if w.closed() {
		return ebiten.Termination
	}
	w.apply(readSample())
	return nil
}

func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(w.props.Background)
	for _, cmd := range w.presented() {
		cmd.draw(screen, w.props.Font)
	}
}

func (w *Window) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	if outsideWidth != w.outsideW || outsideHeight != w.outsideH {
		if w.outsideW != 0 || w.outsideH != 0 {
			w.push(loop.Event{Type: loop.EventResize, Width: outsideWidth, Height: outsideHeight})
		}
		w.outsideW, w.outsideH = outsideWidth, outsideHeight
	}
	return w.width, w.height
}

// Run calls run on its own goroutine and drives the window on the calling
// goroutine, which must be the main one. The window closes when run returns;
// if the window goes away first, run is sent a quit event. Run returns run's
// error, or ebiten's if run succeeded.
func Run(w *Window, run func() error) error {
	if !w.created {
		return ErrNoWindow
	}

	ebiten.SetWindowTitle(w.title)
	ebiten.SetWindowSize(w.width, w.height)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(w.props.InputRate)
	if w.props.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	var g errgroup.Group
	g.Go(func() error {
		defer w.Close()
		return run()
	})

	err := ebiten.RunGame(w)
	if err != nil {
		w.logger.Error().Err(err).Msg("ebiten stopped")
	}
	w.push(loop.Event{Type: loop.EventQuit})

	if runErr := g.Wait(); runErr != nil {
		return runErr
	}
	return err
}
