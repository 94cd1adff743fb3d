// Package events shows the normalized timeline of a single transcript,
// useful for checking what a session contains before reviewing it.
package events

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dnorman/learnchain/internal/logsrc"
	"github.com/dnorman/learnchain/internal/router"
	"github.com/dnorman/learnchain/internal/screen"
	"github.com/dnorman/learnchain/internal/session"
	"github.com/dnorman/learnchain/internal/ui/layout"
	"github.com/dnorman/learnchain/internal/ui/theme"
)

// EventsScreen renders one session's events in timeline order.
type EventsScreen struct {
	sess     *session.Session
	selected int
}

var _ screen.Screen = (*EventsScreen)(nil)
var _ screen.KeyHintProvider = (*EventsScreen)(nil)

// New creates the timeline view for a normalized session.
func New(sess *session.Session) *EventsScreen {
	return &EventsScreen{sess: sess}
}

func (s *EventsScreen) Init() tea.Cmd { return nil }

func (s *EventsScreen) Title() string {
	return "Session events"
}

func (s *EventsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *EventsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch key.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.sess.Events)-1 {
			s.selected++
		}
	}

	return s, nil
}

func (s *EventsScreen) View(width, height int) string {
	var b strings.Builder

	counts := map[logsrc.Kind]int{}
	for _, e := range s.sess.Events {
		counts[e.Kind]++
	}
	header := fmt.Sprintf("%s  %d events · %d prompts · %d responses · %d edits",
		string(s.sess.Tool),
		len(s.sess.Events),
		counts[logsrc.KindPrompt],
		counts[logsrc.KindResponse],
		counts[logsrc.KindFileEdit])
	b.WriteString("  " + theme.Subtitle.Render(header) + "\n\n")

	visible := height - 4
	if visible < 1 {
		visible = 1
	}
	start := 0
	if s.selected >= visible {
		start = s.selected - visible + 1
	}

	for i := start; i < len(s.sess.Events) && i < start+visible; i++ {
		b.WriteString(s.renderRow(i, width))
		b.WriteString("\n")
	}

	return b.String()
}

func (s *EventsScreen) renderRow(i, width int) string {
	e := s.sess.Events[i]

	when := "        "
	if !e.OccurredAt.IsZero() {
		when = e.OccurredAt.Format("15:04:05")
	}

	kind := lipgloss.NewStyle().Foreground(kindColor(e.Kind)).Render(fmt.Sprintf("%-9s", string(e.Kind)))

	payload := e.Payload
	if nl := strings.IndexByte(payload, '\n'); nl >= 0 {
		payload = payload[:nl]
	}
	maxPayload := width - 30
	if maxPayload < 10 {
		maxPayload = 10
	}
	payload = logsrc.Truncate(strings.TrimSpace(payload), maxPayload)

	line := fmt.Sprintf("%s  %s  %s",
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(when), kind, payload)
	if i == s.selected {
		return theme.Selected.Render("  ▸ ") + line
	}
	return "    " + line
}

func kindColor(k logsrc.Kind) color.Color {
	switch k {
	case logsrc.KindPrompt:
		return theme.Primary
	case logsrc.KindResponse:
		return theme.Text
	case logsrc.KindFileEdit:
		return theme.Accent
	default:
		return theme.TextDim
	}
}
