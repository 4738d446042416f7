package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"go.uber.org/zap"

	"github.com/driverpad/driverpad/internal/shiftstore"
)

func main() {
	go func() {
		var (
			title    = app.Title("DriverPad")
			size     = app.Size(unit.Dp(420), unit.Dp(640))
			statusBg = app.StatusColor(backgroundColor)
			navBg    = app.NavigationColor(backgroundColor)
		)
		w := app.NewWindow(title, size, statusBg, navBg)
		w.Option(app.MinSize(unit.Dp(360), unit.Dp(480)))

		if err := loop(w); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		os.Exit(0)
	}()
	app.Main()
}

// loop is the main loop of the app.
func loop(w *app.Window) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer logger.Sync()

	datadir, err := app.DataDir()
	if err != nil {
		return err
	}
	store := shiftstore.NewStore(filepath.Join(datadir, "driverpad"), logger)
	defer store.Close()

	var (
		th    = material.NewTheme(gofont.Collection())
		model = newShiftModel(store)
		ui    = newUI(th, model)
		ops   op.Ops
	)
	for {
		select {
		case e := <-store.Events():
			model.handleStoreEvent(e)
			w.Invalidate()
		case e := <-w.Events():
			switch e := e.(type) {
			case system.StageEvent:
				if e.Stage == system.StagePaused {
					store.Persist()
				}
			case system.DestroyEvent:
				return e.Err
			case system.FrameEvent:
				gtx := layout.NewContext(&ops, e)
				paint.Fill(gtx.Ops, backgroundColor)
				ui.Layout(gtx)
				e.Frame(gtx.Ops)
			}
		}
	}
}
