// Package dialogs provides modal message boxes.
package dialogs

import (
	"github.com/dshills/cellkit/internal/app"
	"github.com/dshills/cellkit/internal/controls"
	"github.com/dshills/cellkit/internal/logging"
)

// Result is the button that closed a message box.
type Result int

// Message box results. Escape and the close button give ResultCancel.
const (
	ResultNone   Result = controls.ResultNone
	ResultOk     Result = controls.ResultOk
	ResultCancel Result = controls.ResultCancel
	ResultYes    Result = controls.ResultYes
	ResultNo     Result = controls.ResultNo
)

var resultNames = map[Result]string{
	ResultNone:   "None",
	ResultOk:     "Ok",
	ResultCancel: "Cancel",
	ResultYes:    "Yes",
	ResultNo:     "No",
}

func (r Result) String() string {
	if s, ok := resultNames[r]; ok {
		return s
	}
	return "Unknown"
}

type button struct {
	format string
	text   string
	result Result
}

var (
	okButtons = []button{
		{"x:23,y:6,w:15,h:1", "&Ok", ResultOk},
	}
	okCancelButtons = []button{
		{"x:15,y:6,w:15,h:1", "&Ok", ResultOk},
		{"x:31,y:6,w:15,h:1", "&Cancel", ResultCancel},
	}
	yesNoCancelButtons = []button{
		{"x:7,y:6,w:15,h:1", "&Yes", ResultYes},
		{"x:23,y:6,w:15,h:1", "&No", ResultNo},
		{"x:39,y:6,w:15,h:1", "&Cancel", ResultCancel},
	}
)

// build creates the message box window. The first button takes the
// focus when the window is added.
func build(title, msg string, flags controls.WindowFlags, buttons []button) (*controls.Window, error) {
	w, err := controls.NewWindow(title, "d:c,w:60,h:10", flags)
	if err != nil {
		return nil, err
	}
	if _, err := controls.NewLabel(w, "x:1,y:1,w:56,h:3", msg); err != nil {
		return nil, err
	}
	for _, b := range buttons {
		if _, err := controls.NewButton(w, b.format, b.text, int(b.result)); err != nil {
			return nil, err
		}
	}
	w.Base().Handlers().OnEvent = func(ev controls.Event) bool {
		switch ev.Type {
		case controls.EventWindowClose:
			w.Exit(controls.ResultCancel)
			return true
		case controls.EventCommand:
			w.Exit(ev.ID)
			return true
		}
		return false
	}
	return w, nil
}

func show(a *app.Application, title, msg string, flags controls.WindowFlags, buttons []button) Result {
	w, err := build(title, msg, flags, buttons)
	if err != nil {
		logging.Component("dialogs").WithField("title", title).Error("message box: %v", err)
		return ResultNone
	}
	return Result(a.RunModal(w))
}

// ShowError shows msg in an error colored box with an Ok button.
func ShowError(a *app.Application, title, msg string) Result {
	return show(a, title, msg, controls.WindowError, okButtons)
}

// ShowNotification shows msg with an Ok button.
func ShowNotification(a *app.Application, title, msg string) Result {
	return show(a, title, msg, controls.WindowNotify, okButtons)
}

// ShowWarning shows msg in a warning colored box with an Ok button.
func ShowWarning(a *app.Application, title, msg string) Result {
	return show(a, title, msg, controls.WindowWarning, okButtons)
}

// ShowOkCancel asks for confirmation; it returns ResultOk or
// ResultCancel.
func ShowOkCancel(a *app.Application, title, msg string) Result {
	return show(a, title, msg, controls.WindowNone, okCancelButtons)
}

// ShowYesNoCancel returns ResultYes, ResultNo or ResultCancel.
func ShowYesNoCancel(a *app.Application, title, msg string) Result {
	return show(a, title, msg, controls.WindowNone, yesNoCancelButtons)
}
