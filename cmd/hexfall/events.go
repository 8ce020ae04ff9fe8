package main

import "github.com/gdamore/tcell/v2"

// eventSource is the polling half of tcell.Screen
type eventSource interface {
	PollEvent() tcell.Event
}

// pollEvents forwards events until the source is finalized or done closes
func pollEvents(src eventSource, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := src.PollEvent()
		// nil after Fini
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}
