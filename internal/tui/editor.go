// ABOUTME: Interactive free-writing editor over a journaling session.
// ABOUTME: Fullscreen bubbletea textarea with debounced autosave and live word count.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/harper/murmure/internal/models"
	"github.com/harper/murmure/internal/session"
)

var (
	editorHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	editorMetaStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	editorHintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
)

// EditorModel is the bubbletea model for a free-writing session.
type EditorModel struct {
	sess     *session.Session
	entry    *models.Entry
	textarea textarea.Model
	quitting bool
	saveErr  error
}

// NewEditorModel creates an editor over the session's current entry.
func NewEditorModel(sess *session.Session) EditorModel {
	ta := textarea.New()
	ta.Placeholder = "Start writing..."
	ta.ShowLineNumbers = false
	ta.SetWidth(72)
	ta.SetHeight(16)

	entry := sess.Current()
	if entry != nil {
		ta.SetValue(entry.Content)
		ta.CursorEnd()
	}
	ta.Focus()

	return EditorModel{
		sess:     sess,
		entry:    entry,
		textarea: ta,
	}
}

// Init implements tea.Model.
func (m EditorModel) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model.
func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			m.saveErr = m.sess.Flush()
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.textarea.SetWidth(msg.Width - 4)
		if msg.Height > 6 {
			m.textarea.SetHeight(msg.Height - 5)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	m.sess.SetContent(m.textarea.Value())
	return m, cmd
}

// View implements tea.Model.
func (m EditorModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(editorHeaderStyle.Render("MURMURE"))
	if m.entry != nil {
		b.WriteString(editorMetaStyle.Render(fmt.Sprintf("  %s", m.entry.Date)))
	}
	b.WriteString("\n\n")
	b.WriteString(m.textarea.View())
	b.WriteString("\n")

	words := 0
	if current := m.sess.Current(); current != nil {
		words = current.WordCount
	}
	b.WriteString(editorMetaStyle.Render(fmt.Sprintf("%d words", words)))
	b.WriteString(editorHintStyle.Render("  ·  esc to save and quit"))
	b.WriteString("\n")

	return b.String()
}

// SaveErr returns the error from the final flush, if any.
func (m EditorModel) SaveErr() error {
	return m.saveErr
}
