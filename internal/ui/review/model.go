// Package review is the terminal UI for browsing a generated dataset.
//
// It shows stored pairs as a filterable list, highlights where the bad
// sentence diverges from the good one, and can generate fresh pairs in
// place ("live mode") at a readable cadence.
package review

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/time/rate"

	"github.com/linglab/minpair/internal/batch"
	"github.com/linglab/minpair/internal/logging"
	"github.com/linglab/minpair/internal/store"
)

// Source produces one fresh pair for live mode. Implementations are
// not safe for concurrent calls; the Update loop issues at most one
// generation command at a time.
type Source func() (batch.Result, error)

// Model is the review view.
type Model struct {
	list     list.Model
	st       *store.Store
	source   Source        // nil disables live mode
	limiter  *rate.Limiter // paces live generation
	live     bool          // auto-generate continuously
	pending  bool          // a generation command is in flight
	showSeqs bool
	lastErr  string
	width    int
	height   int
}

type pairItem struct {
	pair     store.Pair
	showSeqs bool
}

func (i pairItem) Title() string {
	return goodMark + " " + i.pair.Good
}

func (i pairItem) Description() string {
	if i.showSeqs {
		return fmt.Sprintf("%s %s\n  %s ⇒ %s",
			badMark, highlightDiff(i.pair.Good, i.pair.Bad),
			i.pair.GoodSeq, i.pair.BadSeq)
	}
	return badMark + " " + highlightDiff(i.pair.Good, i.pair.Bad)
}

func (i pairItem) FilterValue() string { return i.pair.Good + " " + i.pair.Bad }

// highlightDiff renders the bad sentence with the tokens that differ
// from the good sentence emphasized. Token-aligned by position; both
// sentences have equal word counts by construction.
func highlightDiff(good, bad string) string {
	goodWords := strings.Fields(good)
	badWords := strings.Fields(bad)

	out := make([]string, len(badWords))
	for i, w := range badWords {
		if i < len(goodWords) && goodWords[i] != w {
			out[i] = diffStyle.Render(w)
		} else {
			out[i] = w
		}
	}
	return strings.Join(out, " ")
}

// pairMsg carries one live-generated pair back into the Update loop.
type pairMsg struct {
	result batch.Result
	err    error
}

// New creates a review model over stored pairs. source may be nil, in
// which case live generation is unavailable.
func New(st *store.Store, pairs []store.Pair, source Source) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(lipgloss.Color("#58a6ff"))

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Generated pairs"
	l.SetShowHelp(false)
	l.SetFilteringEnabled(true)

	m := Model{
		list:   l,
		st:     st,
		source: source,
		// Two pairs per second reads comfortably in live mode.
		limiter: rate.NewLimiter(rate.Every(500*time.Millisecond), 1),
	}
	m.setPairs(pairs)
	return m
}

func (m *Model) setPairs(pairs []store.Pair) {
	items := make([]list.Item, len(pairs))
	for i, p := range pairs {
		items[i] = pairItem{pair: p, showSeqs: m.showSeqs}
	}
	m.list.SetItems(items)
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// generateCmd produces one pair after the limiter admits it. Runs in a
// command goroutine; the model guards against overlapping commands via
// the pending flag, so the generator is never called concurrently.
func (m Model) generateCmd() tea.Cmd {
	source := m.source
	limiter := m.limiter
	return func() tea.Msg {
		if err := limiter.Wait(context.Background()); err != nil {
			return pairMsg{err: err}
		}
		result, err := source()
		return pairMsg{result: result, err: err}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.list.SetSize(msg.Width-4, msg.Height-4)

	case pairMsg:
		m.pending = false
		if msg.err != nil {
			m.lastErr = msg.err.Error()
			logging.Debug("live generation failed", "error", msg.err)
			// Recoverable generation errors keep live mode running.
			if m.live {
				m.pending = true
				return m, m.generateCmd()
			}
			return m, nil
		}
		m.lastErr = ""
		p := store.Pair{
			Good:    msg.result.Good,
			Bad:     msg.result.Bad,
			GoodSeq: msg.result.GoodSeq,
			BadSeq:  msg.result.BadSeq,
		}
		if m.st != nil {
			if _, err := m.st.SavePairs([]store.Pair{p}); err != nil {
				m.lastErr = err.Error()
			}
		}
		items := append([]list.Item{pairItem{pair: p, showSeqs: m.showSeqs}}, m.list.Items()...)
		m.list.SetItems(items)
		if m.live {
			m.pending = true
			return m, m.generateCmd()
		}
		return m, nil

	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "s":
			m.showSeqs = !m.showSeqs
			items := m.list.Items()
			for i, it := range items {
				pi := it.(pairItem)
				pi.showSeqs = m.showSeqs
				items[i] = pi
			}
			m.list.SetItems(items)
		case "g":
			if m.source != nil && !m.pending {
				m.pending = true
				return m, m.generateCmd()
			}
		case "l":
			if m.source == nil {
				break
			}
			m.live = !m.live
			if m.live && !m.pending {
				m.pending = true
				return m, m.generateCmd()
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	status := fmt.Sprintf("  %d pairs", len(m.list.Items()))
	if m.live {
		status += "  ● live"
	}
	header := headerStyle.Render(status)

	help := "  [s]equences  [/]search  [q]uit"
	if m.source != nil {
		help = "  [g]enerate  [l]ive  " + strings.TrimPrefix(help, "  ")
	}
	footer := helpStyle.Render(help)
	if m.lastErr != "" {
		footer = errorStyle.Render("  "+m.lastErr) + "\n" + footer
	}

	return strings.Join([]string{header, "", m.list.View(), footer}, "\n")
}
