package concept

import (
	"strings"

	"github.com/dnorman/learnchain/internal/logsrc"
	"github.com/dnorman/learnchain/internal/session"
)

// Extract walks the session once and groups causally adjacent events into
// concepts. A prompt opens a unit; the responses that follow it join the
// unit; a file edit joins the unit whose exchange precedes it within the
// look-back window, or stands alone when no exchange is near enough.
// Units below the minimum content size are dropped, and units that hash
// to the same fingerprint are merged. Deterministic and pure.
func Extract(s *session.Session, cfg Config) []Concept {
	cfg = cfg.withDefaults()

	var units []unit
	var open *unit

	for _, e := range s.Events {
		switch e.Kind {
		case logsrc.KindPrompt:
			if open != nil {
				units = append(units, *open)
			}
			open = &unit{events: []session.Event{e}, hasPrompt: true}

		case logsrc.KindResponse:
			if open != nil && e.Seq-open.last().Seq <= cfg.LookBack {
				open.events = append(open.events, e)
				continue
			}
			if open != nil {
				units = append(units, *open)
			}
			// A response with no nearby prompt still teaches something
			// on its own.
			open = &unit{events: []session.Event{e}}

		case logsrc.KindFileEdit:
			if open != nil && e.Seq-open.last().Seq <= cfg.LookBack {
				open.events = append(open.events, e)
				open.hasEdit = true
				continue
			}
			if open != nil {
				units = append(units, *open)
			}
			open = &unit{events: []session.Event{e}, hasEdit: true}

		case logsrc.KindToolCall:
			// Tool invocations carry commands, not concepts. They never
			// seed or extend a unit.
		}
	}
	if open != nil {
		units = append(units, *open)
	}

	return dedupe(units, cfg)
}

// unit is a candidate teaching group before thresholding and merging.
type unit struct {
	events    []session.Event
	hasPrompt bool
	hasEdit   bool
}

func (u *unit) last() session.Event {
	return u.events[len(u.events)-1]
}

func (u *unit) text() string {
	parts := make([]string, len(u.events))
	for i, e := range u.events {
		parts[i] = e.Payload
	}
	return strings.Join(parts, "\n\n")
}

func (u *unit) title() string {
	head := u.events[0].Payload
	if u.hasEdit && !u.hasPrompt {
		if file, ok := editFile(u.events); ok {
			return "Code change: " + file
		}
		return "Code change"
	}
	return logsrc.Truncate(firstLine(head), 80)
}

func (u *unit) difficulty() Difficulty {
	size := len(normalize(u.text()))
	switch {
	case u.hasEdit && size > 1200:
		return DifficultyHard
	case u.hasEdit || size > 600:
		return DifficultyMedium
	default:
		return DifficultyEasy
	}
}

// dedupe applies the size threshold, merges duplicate fingerprints, and
// enforces the concept cap, preserving first-seen order.
func dedupe(units []unit, cfg Config) []Concept {
	byFP := make(map[string]int)
	var out []Concept

	for _, u := range units {
		text := normalize(u.text())
		if len(text) < cfg.MinContentSize {
			continue
		}

		fp := fingerprint(u.text())
		if idx, seen := byFP[fp]; seen {
			// Keep the first occurrence's title; union the events.
			out[idx].Events = unionEvents(out[idx].Events, u.events)
			continue
		}

		byFP[fp] = len(out)
		out = append(out, Concept{
			Fingerprint:    fp,
			Title:          u.title(),
			Events:         append([]session.Event(nil), u.events...),
			DifficultyHint: u.difficulty(),
		})

		if cfg.MaxConcepts > 0 && len(out) >= cfg.MaxConcepts {
			break
		}
	}
	return out
}

// unionEvents merges two ordered event slices by sequence index without
// duplicates.
func unionEvents(a, b []session.Event) []session.Event {
	seen := make(map[int]bool, len(a))
	for _, e := range a {
		seen[e.Seq] = true
	}
	for _, e := range b {
		if !seen[e.Seq] {
			a = append(a, e)
			seen[e.Seq] = true
		}
	}
	for i := 1; i < len(a); i++ {
		for j := i; j > 0 && a[j].Seq < a[j-1].Seq; j-- {
			a[j], a[j-1] = a[j-1], a[j]
		}
	}
	return a
}

func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s[:idx]
	}
	return s
}

// editFile pulls the edited file name from event metadata or an
// apply_patch payload header.
func editFile(events []session.Event) (string, bool) {
	for _, e := range events {
		if e.Kind != logsrc.KindFileEdit {
			continue
		}
		for _, line := range strings.SplitN(e.Payload, "\n", 4) {
			for _, prefix := range []string{"File: ", "*** Update File: ", "*** Add File: "} {
				if rest, ok := strings.CutPrefix(line, prefix); ok {
					return strings.TrimSpace(rest), true
				}
			}
		}
	}
	return "", false
}
