package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

type alertLevel int

const (
	alertInfo alertLevel = iota
	alertSuccess
	alertError
)

// alert is a transient notification. Each alert carries its own id so the
// expiry tick scheduled at creation dismisses exactly this one.
type alert struct {
	id    uuid.UUID
	level alertLevel
	text  string
}

type alertList struct {
	ttl    time.Duration
	active []alert
}

func newAlertList(ttl time.Duration) *alertList {
	return &alertList{ttl: ttl}
}

// push appends an alert and returns the command that expires it.
func (l *alertList) push(level alertLevel, text string) tea.Cmd {
	a := alert{id: uuid.New(), level: level, text: text}
	l.active = append(l.active, a)

	id := a.id
	return tea.Tick(l.ttl, func(time.Time) tea.Msg {
		return AlertExpiredMsg{ID: id}
	})
}

func (l *alertList) dismiss(id uuid.UUID) {
	kept := l.active[:0]
	for _, a := range l.active {
		if a.id != id {
			kept = append(kept, a)
		}
	}
	l.active = kept
}

func (l *alertList) dismissAll() {
	l.active = nil
}
