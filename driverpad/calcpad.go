package main

import (
	"fmt"
	"image"
	"image/color"
	"strconv"

	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/driverpad/driverpad/internal/calc"
	. "github.com/driverpad/driverpad/internal/cd"
)

var (
	digitColor    = color.NRGBA{90, 90, 90, 255}
	specialColor  = color.NRGBA{70, 70, 70, 255}
	opColor       = color.NRGBA{122, 90, 90, 255}
	activeOpColor = color.NRGBA{160, 90, 90, 255}
	displayColor  = color.NRGBA{255, 255, 255, 255}
	displayBg     = color.NRGBA{35, 35, 35, 255}
	tapeColor     = color.NRGBA{200, 200, 200, 255}
	tapeBg        = color.NRGBA{50, 50, 50, 255}

	designWidth  = unit.Dp(270)
	controlInset = unit.Dp(6)
	cornerRadius = unit.Dp(3.5)
)

// calcPad is the calculator keypad editing one numeric field. The owning UI
// watches the done and cancel buttons to close the session.
type calcPad struct {
	session *calc.Session
	theme   *material.Theme
	title   string
	buttons [7][4]*padButton
	tape    layout.List
	done    widget.Clickable
	cancel  widget.Clickable

	cornerRadius int
	gridSpacing  int
}

// padButton is one key of the pad.
type padButton struct {
	action  calc.Action
	text    string
	color   color.NRGBA
	clicker widget.Clickable
}

func newCalcPad(theme *material.Theme, session *calc.Session, title string) *calcPad {
	p := &calcPad{
		session: session,
		theme:   theme,
		title:   title,
		tape:    layout.List{Axis: layout.Vertical, ScrollToEnd: true},
	}
	equals := p.special("=", calc.Action{Kind: calc.ActionEquals})
	equals.color = opColor
	p.buttons = [7][4]*padButton{
		{
			p.special("AC", calc.Action{Kind: calc.ActionClear}),
			p.special("(", calc.Action{Kind: calc.ActionOpenParen}),
			p.special(")", calc.Action{Kind: calc.ActionCloseParen}),
			p.special("⌫", calc.Action{Kind: calc.ActionBackspace}),
		},
		{
			p.special("MC", calc.Action{Kind: calc.ActionMemoryClear}),
			p.special("MR", calc.Action{Kind: calc.ActionMemoryRecall}),
			p.special("M+", calc.Action{Kind: calc.ActionMemoryAdd}),
			p.special("M-", calc.Action{Kind: calc.ActionMemorySubtract}),
		},
		{
			p.special("±", calc.Action{Kind: calc.ActionToggleSign}),
			p.special("%", calc.Action{Kind: calc.ActionPercent}),
			p.op(calc.OpDiv),
			p.op(calc.OpMul),
		},
		{p.digit('7'), p.digit('8'), p.digit('9'), p.op(calc.OpSub)},
		{p.digit('4'), p.digit('5'), p.digit('6'), p.op(calc.OpAdd)},
		{p.digit('1'), p.digit('2'), p.digit('3'), equals},
		{p.digit('0'), nil, p.special(".", calc.Action{Kind: calc.ActionPoint}), nil},
	}
	return p
}

// digit creates a digit key.
func (p *calcPad) digit(d byte) *padButton {
	return &padButton{
		action: calc.Action{Kind: calc.ActionDigit, Digit: d},
		text:   string(d),
		color:  digitColor,
	}
}

// op creates an operator key.
func (p *calcPad) op(op calc.Op) *padButton {
	return &padButton{
		action: calc.Action{Kind: calc.ActionOperator, Op: op},
		text:   op.String(),
		color:  opColor,
	}
}

// special creates any other key.
func (p *calcPad) special(name string, a calc.Action) *padButton {
	return &padButton{action: a, text: name, color: specialColor}
}

// Layout draws the pad.
func (p *calcPad) Layout(gtx C) D {
	// Adapt design for screen size.
	scaleFactor := float32(gtx.Constraints.Max.X) / float32(gtx.Dp(designWidth))
	p.cornerRadius = gtx.Dp(cornerRadius * unit.Dp(scaleFactor))
	p.gridSpacing = gtx.Dp(controlInset * unit.Dp(scaleFactor))

	// Handle key events.
	p.layoutInput(gtx)

	inset := layout.UniformInset(controlInset)
	return inset.Layout(gtx, func(gtx C) D {
		flex := layout.Flex{Axis: layout.Vertical}
		return flex.Layout(gtx,
			layout.Rigid(p.layoutTitleBar),
			layout.Flexed(20, func(gtx C) D {
				return inset.Layout(gtx, p.layoutTape)
			}),
			layout.Flexed(14, func(gtx C) D {
				return inset.Layout(gtx, p.layoutDisplay)
			}),
			layout.Flexed(56, func(gtx C) D {
				return inset.Layout(gtx, p.layoutButtons)
			}),
		)
	})
}

// layoutTitleBar draws the field name between the Cancel and Done buttons.
func (p *calcPad) layoutTitleBar(gtx C) D {
	inset := layout.UniformInset(controlInset)
	return inset.Layout(gtx, func(gtx C) D {
		flex := layout.Flex{Spacing: layout.SpaceBetween, Alignment: layout.Middle}
		return flex.Layout(gtx,
			layout.Rigid(func(gtx C) D {
				btn := material.Button(p.theme, &p.cancel, "Cancel")
				btn.Background = specialColor
				btn.TextSize = unit.Sp(14)
				return btn.Layout(gtx)
			}),
			layout.Rigid(func(gtx C) D {
				l := material.Label(p.theme, unit.Sp(14), p.title)
				l.Color = mutedColor
				return l.Layout(gtx)
			}),
			layout.Rigid(func(gtx C) D {
				btn := material.Button(p.theme, &p.done, "Done")
				btn.Background = accentColor
				btn.TextSize = unit.Sp(14)
				return btn.Layout(gtx)
			}),
		)
	})
}

// layoutTape draws the calculation history, oldest first, scrolled to the
// newest entry.
func (p *calcPad) layoutTape(gtx C) D {
	rect := image.Rectangle{Max: gtx.Constraints.Max}
	rr := clip.UniformRRect(rect, p.cornerRadius)
	paint.FillShape(gtx.Ops, tapeBg, rr.Op(gtx.Ops))

	inset := layout.UniformInset(controlInset)
	return inset.Layout(gtx, func(gtx C) D {
		steps := p.session.Tape().Steps()
		return p.tape.Layout(gtx, len(steps), func(gtx C, i int) D {
			st := steps[i]
			l := material.Label(p.theme, unit.Sp(13), fmt.Sprintf("%s = %s", st.Expr, formatResult(st.Result)))
			l.Color = tapeColor
			l.Alignment = text.End
			l.MaxLines = 1
			dim := l.Layout(gtx)
			dim.Size.X = gtx.Constraints.Max.X
			return dim
		})
	})
}

// layoutDisplay draws the expression under construction.
func (p *calcPad) layoutDisplay(gtx C) D {
	rect := image.Rectangle{Max: gtx.Constraints.Max}
	rr := clip.UniformRRect(rect, p.cornerRadius)
	paint.FillShape(gtx.Ops, displayBg, rr.Op(gtx.Ops))

	inset := layout.UniformInset(controlInset)
	return inset.Layout(gtx, func(gtx C) D {
		flex := layout.Flex{Axis: layout.Vertical}
		return flex.Layout(gtx,
			layout.Rigid(p.layoutMemory),
			layout.Flexed(1, p.layoutDisplayText),
		)
	})
}

// layoutMemory shows the memory accumulator while it is non-zero.
func (p *calcPad) layoutMemory(gtx C) D {
	v := p.session.MemoryValue()
	if v == 0 {
		return D{}
	}
	l := material.Label(p.theme, unit.Sp(12), "M "+formatResult(v))
	l.Color = tapeColor
	return l.Layout(gtx)
}

func (p *calcPad) layoutDisplayText(gtx C) D {
	// Scale font based on height.
	fontSizePx := float32(gtx.Constraints.Max.Y) / 1.2
	fontSizeSp := unit.Sp(fontSizePx / gtx.Metric.PxPerSp)

	l := material.Label(p.theme, fontSizeSp, p.session.Display())
	l.Color = displayColor
	if p.session.Errored() {
		l.Color = errorColor
	}
	l.Alignment = text.End
	return shrinkToFit(gtx, l.Layout)
}

func (p *calcPad) layoutButtons(gtx C) D {
	g := grid{
		rows:    len(p.buttons),
		cols:    len(p.buttons[0]),
		spacing: p.gridSpacing,
	}
	return g.layout(gtx, func(row, col int, gtx C) D {
		if b := p.buttons[row][col]; b != nil {
			return p.layoutButton(gtx, b)
		}
		return D{}
	})
}

func (p *calcPad) layoutButton(gtx C, b *padButton) D {
	if b.clicker.Clicked() {
		p.session.Do(b.action)
	}

	return b.clicker.Layout(gtx, func(gtx C) D {
		textSizePx := float32(gtx.Constraints.Max.Y) / 2.2
		textSizeSp := unit.Sp(textSizePx / gtx.Metric.PxPerSp)

		style := material.Button(p.theme, &b.clicker, b.text)
		style.Background = b.color
		style.Inset = layout.Inset{}
		style.TextSize = textSizeSp
		style.CornerRadius = unit.Dp(float32(p.cornerRadius) / gtx.Metric.PxPerDp)
		if op, ok := p.session.PendingOp(); ok && b.action.Kind == calc.ActionOperator && b.action.Op == op {
			style.Background = activeOpColor
		}
		return style.Layout(gtx)
	})
}

// layoutInput registers the global key handler.
func (p *calcPad) layoutInput(gtx C) {
	input := key.InputOp{
		Tag:  p,
		Hint: key.HintNumeric,
		Keys: "(Shift)-[0,1,2,3,4,5,6,7,8,9,.,+,*,/,%,(,),=,⌤,⏎,⌫,⌦,⎋]|(Alt)-(Shift)-[-]",
	}
	input.Add(gtx.Ops)

	// Request keyboard focus. This is required to make the Return key work.
	key.FocusOp{Tag: p}.Add(gtx.Ops)

	for _, ev := range gtx.Queue.Events(p) {
		if e, ok := ev.(key.Event); ok {
			p.handleKey(e)
		}
	}
}

// handleKey handles a key event.
func (p *calcPad) handleKey(e key.Event) {
	if e.State == key.Release {
		return
	}

	switch e.Name {
	case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9":
		p.session.Do(calc.Action{Kind: calc.ActionDigit, Digit: e.Name[0]})
	case ".":
		p.session.Do(calc.Action{Kind: calc.ActionPoint})
	case "+":
		p.session.Do(calc.Action{Kind: calc.ActionOperator, Op: calc.OpAdd})
	case "-":
		if e.Modifiers.Contain(key.ModAlt) {
			p.session.Do(calc.Action{Kind: calc.ActionToggleSign})
		} else {
			p.session.Do(calc.Action{Kind: calc.ActionOperator, Op: calc.OpSub})
		}
	case "*":
		p.session.Do(calc.Action{Kind: calc.ActionOperator, Op: calc.OpMul})
	case "/":
		p.session.Do(calc.Action{Kind: calc.ActionOperator, Op: calc.OpDiv})
	case "%":
		p.session.Do(calc.Action{Kind: calc.ActionPercent})
	case "(":
		p.session.Do(calc.Action{Kind: calc.ActionOpenParen})
	case ")":
		p.session.Do(calc.Action{Kind: calc.ActionCloseParen})
	case "=", key.NameEnter, key.NameReturn:
		p.session.Do(calc.Action{Kind: calc.ActionEquals})
	case key.NameDeleteBackward, key.NameDeleteForward:
		p.session.Do(calc.Action{Kind: calc.ActionBackspace})
	case key.NameEscape:
		p.session.Do(calc.Action{Kind: calc.ActionClear})
	}
}

// formatResult renders a tape or memory value.
func formatResult(v float64) string {
	return strconv.FormatFloat(v, 'g', 12, 64)
}
