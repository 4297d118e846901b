package main

import "github.com/gdamore/tcell/v2"

type action int

const (
	actNone action = iota
	actUp
	actDown
	actLeft
	actRight
	actPause
	actReset
	actConfirm
	actBack
	actQuit
)

func keyAction(e *tcell.EventKey) action {
	switch e.Key() {
	case tcell.KeyUp:
		return actUp
	case tcell.KeyDown:
		return actDown
	case tcell.KeyLeft:
		return actLeft
	case tcell.KeyRight:
		return actRight
	case tcell.KeyEnter:
		return actConfirm
	case tcell.KeyEscape, tcell.KeyBackspace, tcell.KeyBackspace2:
		return actBack
	case tcell.KeyCtrlC:
		return actQuit
	case tcell.KeyRune:
	default:
		return actNone
	}
	switch e.Rune() {
	case 'w', 'W', 'k':
		return actUp
	case 's', 'S', 'j':
		return actDown
	case 'a', 'A', 'h':
		return actLeft
	case 'd', 'D', 'l':
		return actRight
	case ' ', 'p', 'P':
		return actPause
	case 'r', 'R':
		return actReset
	case 'q', 'Q':
		return actQuit
	}
	return actNone
}
