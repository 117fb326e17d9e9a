// Package tui provides the Bubble Tea integration for the runner.
// The simulation runs on its own goroutine; the UI forwards key presses as
// intents and redraws whenever a new frame is published.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/loop"
	"github.com/vovakirdan/tui-runner/internal/registry"
)

// holdWindow is how long a movement key counts as held after its last
// press or auto-repeat. Terminals do not report key releases.
const holdWindow = 200 * time.Millisecond

// frameMsg carries a frame published by the loop.
type frameMsg struct {
	frame registry.Frame
}

// loopDoneMsg is sent when the loop goroutine returns.
type loopDoneMsg struct {
	err error
}

// releaseMsg ends a movement hold unless the key was pressed again since.
type releaseMsg struct {
	action core.Action
	seq    uint64
}

// runLoop returns a command that runs l until ctx is cancelled or the game quits.
func runLoop(ctx context.Context, l *loop.Loop) tea.Cmd {
	return func() tea.Msg {
		return loopDoneMsg{err: l.Run(ctx)}
	}
}

// waitFrame returns a command that delivers the next published frame.
// It yields nil once the channel is closed.
func waitFrame(frames <-chan registry.Frame) tea.Cmd {
	return func() tea.Msg {
		f, ok := <-frames
		if !ok {
			return nil
		}
		return frameMsg{frame: f}
	}
}

// releaseAfter schedules the end of a movement hold.
func releaseAfter(a core.Action, seq uint64) tea.Cmd {
	return tea.Tick(holdWindow, func(time.Time) tea.Msg {
		return releaseMsg{action: a, seq: seq}
	})
}
