package main

import (
	"fmt"
	"image/color"

	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/driverpad/driverpad/internal/calc"
	. "github.com/driverpad/driverpad/internal/cd"
)

var (
	backgroundColor = color.NRGBA{245, 245, 245, 255}
	accentColor     = color.NRGBA{46, 125, 90, 255}
	chipColor       = color.NRGBA{70, 70, 70, 255}
	mutedColor      = color.NRGBA{119, 119, 119, 255}
	errorColor      = color.NRGBA{191, 54, 54, 255}

	mainInset = layout.UniformInset(unit.Dp(12))
	rowInset  = layout.Inset{Top: unit.Dp(4), Bottom: unit.Dp(4), Left: unit.Dp(12), Right: unit.Dp(12)}
)

// driverUI is the shift list with the embedded calculator pad.
type driverUI struct {
	model *shiftModel
	theme *material.Theme
	list  layout.List
	add   widget.Clickable

	// pad is non-nil while a numeric field is being edited.
	pad *calcPad
}

func newUI(th *material.Theme, model *shiftModel) *driverUI {
	return &driverUI{
		model: model,
		theme: th,
		list:  layout.List{Axis: layout.Vertical},
	}
}

// Layout draws the app: the calculator pad while a field is open, the shift
// list otherwise.
func (ui *driverUI) Layout(gtx C) D {
	if pad := ui.pad; pad != nil {
		if pad.done.Clicked() {
			pad.session.Commit()
			ui.pad = nil
		} else if pad.cancel.Clicked() {
			pad.session.Cancel()
			ui.pad = nil
		} else {
			return pad.Layout(gtx)
		}
	}

	if ui.add.Clicked() {
		ui.model.addToday()
	}
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(ui.layoutHeader),
		layout.Flexed(1, ui.layoutRows),
		layout.Rigid(ui.layoutStatusBar),
	)
}

// layoutHeader draws the title line with the add button.
func (ui *driverUI) layoutHeader(gtx C) D {
	return mainInset.Layout(gtx, func(gtx C) D {
		flex := layout.Flex{Spacing: layout.SpaceBetween, Alignment: layout.Middle}
		return flex.Layout(gtx,
			layout.Rigid(material.H6(ui.theme, "DriverPad").Layout),
			layout.Rigid(func(gtx C) D {
				btn := material.Button(ui.theme, &ui.add, "New shift")
				btn.Background = accentColor
				btn.TextSize = unit.Sp(14)
				return btn.Layout(gtx)
			}),
		)
	})
}

// layoutRows draws the shift list.
func (ui *driverUI) layoutRows(gtx C) D {
	rows := ui.model.rows

	// Process clicks before drawing.
	for _, row := range rows {
		for f := range row.fields {
			if row.fields[f].Clicked() {
				ui.openPad(row, shiftField(f))
			}
		}
		if row.remove.Clicked() {
			ui.model.remove(row)
		}
	}

	return ui.list.Layout(gtx, len(rows), func(gtx C, i int) D {
		return ui.layoutRow(gtx, rows[i])
	})
}

func (ui *driverUI) layoutRow(gtx C, row *shiftRow) D {
	return rowInset.Layout(gtx, func(gtx C) D {
		flex := layout.Flex{Alignment: layout.Middle}
		return flex.Layout(gtx,
			layout.Rigid(func(gtx C) D {
				l := material.Label(ui.theme, unit.Sp(14), row.shift.Date)
				l.Color = mutedColor
				return l.Layout(gtx)
			}),
			layout.Flexed(1, ui.fieldChip(row, fieldEarnings)),
			layout.Flexed(1, ui.fieldChip(row, fieldFuel)),
			layout.Flexed(1, ui.fieldChip(row, fieldMiles)),
			layout.Rigid(func(gtx C) D {
				btn := material.Button(ui.theme, &row.remove, "×")
				btn.Background = color.NRGBA{}
				btn.Color = errorColor
				btn.TextSize = unit.Sp(14)
				return btn.Layout(gtx)
			}),
		)
	})
}

// fieldChip draws one tappable numeric field. Tapping opens the calculator
// pad on that field.
func (ui *driverUI) fieldChip(row *shiftRow, f shiftField) layout.Widget {
	return func(gtx C) D {
		inset := layout.Inset{Left: unit.Dp(4), Right: unit.Dp(4)}
		return inset.Layout(gtx, func(gtx C) D {
			btn := material.Button(ui.theme, &row.fields[f], f.format(row.shift))
			btn.Background = chipColor
			btn.TextSize = unit.Sp(14)
			return btn.Layout(gtx)
		})
	}
}

// openPad starts a calculator session owning the given field. The session
// writes back into the store only through Done; Cancel leaves the shift
// untouched.
func (ui *driverUI) openPad(row *shiftRow, f shiftField) {
	session := calc.New(calc.Config{
		Value:  f.get(row.shift),
		Places: f.places(),
		Commit: func(v float64) { ui.model.setField(row, f, v) },
	})
	title := fmt.Sprintf("%s · %s", row.shift.Date, f.label())
	ui.pad = newCalcPad(ui.theme, session, title)
}

// layoutStatusBar draws the totals line at the bottom.
func (ui *driverUI) layoutStatusBar(gtx C) D {
	return mainInset.Layout(gtx, func(gtx C) D {
		profit, miles := ui.model.totals()
		l := material.Label(ui.theme, unit.Sp(14), fmt.Sprintf("Profit $%.2f · %.1f mi", profit, miles))
		l.Color = mutedColor
		if err := ui.model.lastError; err != nil {
			l.Text = err.Error()
			l.Color = errorColor
		}
		return l.Layout(gtx)
	})
}
