// Package tui provides the interactive definition picker.
//
// The picker pairs a text input with a list: every keystroke re-ranks
// the candidate key set through the configured search engine and the
// list shows the ranked matches with their definition paths. Enter
// returns the selected match.
package tui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/guu8hc/ecuckit/internal/search"
)

// PickerOptions configures the Pick prompt.
type PickerOptions struct {
	// Title is displayed above the match list.
	Title string
	// Keys is the candidate key set to rank.
	Keys []string
	// Engine ranks keys against the typed query.
	Engine search.Engine
	// Resolve maps a key to its definition path (optional).
	Resolve func(key string) (string, bool)
}

// IsInteractive reports whether stdin and stdout are attached to a
// terminal. Callers fall back to plain ranked output when they are not.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// Width returns the terminal width, or 80 when it cannot be probed.
func Width() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

// matchItem implements list.Item for the bubbles list component.
type matchItem struct {
	match search.Match
}

func (i matchItem) Title() string { return i.match.Key }

func (i matchItem) Description() string {
	if i.match.Path == "" {
		return ""
	}
	return fmt.Sprintf("%s  (%.2f)", i.match.Path, i.match.Score)
}

func (i matchItem) FilterValue() string { return i.match.Key }

// pickerModel is the bubbletea model behind Pick.
type pickerModel struct {
	input     textinput.Model
	list      list.Model
	engine    search.Engine
	keys      []string
	resolve   func(string) (string, bool)
	choice    *search.Match
	quitting  bool
	cancelled bool
}

func newPickerModel(opts PickerOptions) pickerModel {
	input := textinput.New()
	input.Placeholder = "Type a keyword"
	input.Prompt = "> "
	input.Focus()

	m := pickerModel{
		input:   input,
		engine:  opts.Engine,
		keys:    opts.Keys,
		resolve: opts.Resolve,
	}

	delegate := list.NewDefaultDelegate()
	l := list.New(m.rankItems(""), delegate, 60, 14)
	l.Title = opts.Title
	if l.Title == "" {
		l.Title = "Select a definition"
	}
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	m.list = l

	return m
}

// rankItems ranks the key set for query. An empty query lists every key
// unranked; paths are resolved only for ranked matches to keep typing
// responsive on large corpora.
func (m pickerModel) rankItems(query string) []list.Item {
	if query == "" {
		items := make([]list.Item, len(m.keys))
		for i, key := range m.keys {
			items[i] = matchItem{match: search.Match{Key: key}}
		}
		return items
	}

	matches := m.engine.Rank(query, m.keys)
	items := make([]list.Item, 0, len(matches))
	for _, match := range matches {
		if m.resolve != nil {
			if path, ok := m.resolve(match.Key); ok {
				match.Path = path
			}
		}
		items = append(items, matchItem{match: match})
	}
	return items
}

func (m pickerModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			m.cancelled = true
			return m, tea.Quit

		case "enter":
			if item, ok := m.list.SelectedItem().(matchItem); ok {
				match := item.match
				if match.Path == "" && m.resolve != nil {
					if path, resolved := m.resolve(match.Key); resolved {
						match.Path = path
					}
				}
				m.choice = &match
			}
			m.quitting = true
			return m, tea.Quit

		case "up", "down", "pgup", "pgdown", "home", "end":
			var cmd tea.Cmd
			m.list, cmd = m.list.Update(msg)
			return m, cmd

		default:
			before := m.input.Value()
			var inputCmd tea.Cmd
			m.input, inputCmd = m.input.Update(msg)
			if m.input.Value() == before {
				return m, inputCmd
			}
			listCmd := m.list.SetItems(m.rankItems(m.input.Value()))
			m.list.Select(0)
			return m, tea.Batch(inputCmd, listCmd)
		}

	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height-3)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m pickerModel) View() string {
	if m.quitting {
		return ""
	}
	return m.input.View() + "\n\n" + m.list.View()
}

// Pick prompts the user to pick one definition from keys. ok is false
// when the prompt was cancelled or nothing matched.
func Pick(opts PickerOptions) (match search.Match, ok bool, err error) {
	if len(opts.Keys) == 0 {
		return search.Match{}, false, nil
	}

	p := tea.NewProgram(newPickerModel(opts))
	final, err := p.Run()
	if err != nil {
		return search.Match{}, false, err
	}

	fm := final.(pickerModel)
	if fm.cancelled || fm.choice == nil {
		return search.Match{}, false, nil
	}
	return *fm.choice, true, nil
}
