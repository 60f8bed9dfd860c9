package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// field is one labeled text input. key matches the service input field names
// so validation errors can be shown next to the right input.
type field struct {
	key   string
	label string
	input textinput.Model
}

func newField(key, label, placeholder string) field {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 32
	ti.Width = 20
	ti.Prompt = ""
	return field{key: key, label: label, input: ti}
}

// form is a vertical list of fields. While editing, keys go to the focused input.
type form struct {
	fields  []field
	focus   int
	editing bool
}

func newForm(fields ...field) form {
	return form{fields: fields}
}

// start begins editing at the focused field, or the first visible one
func (f *form) start(visible []string) tea.Cmd {
	idx := f.visibleIndexes(visible)
	if len(idx) == 0 {
		return nil
	}
	if !contains(visible, f.fields[f.focus].key) && len(visible) > 0 {
		f.focus = idx[0]
	}
	f.editing = true
	return f.fields[f.focus].input.Focus()
}

// stop ends editing
func (f *form) stop() {
	f.editing = false
	for i := range f.fields {
		f.fields[i].input.Blur()
	}
}

// move shifts focus by delta among the visible keys, wrapping around
func (f *form) move(delta int, visible []string) tea.Cmd {
	idx := f.visibleIndexes(visible)
	if len(idx) == 0 {
		return nil
	}
	pos := 0
	for i, fi := range idx {
		if fi == f.focus {
			pos = i
		}
	}
	pos = (pos + delta + len(idx)) % len(idx)

	f.fields[f.focus].input.Blur()
	f.focus = idx[pos]
	return f.fields[f.focus].input.Focus()
}

// focusKey moves focus to the field with key
func (f *form) focusKey(key string) {
	for i, fl := range f.fields {
		if fl.key == key {
			f.fields[f.focus].input.Blur()
			f.focus = i
			if f.editing {
				f.fields[i].input.Focus()
			}
			return
		}
	}
}

func (f form) visibleIndexes(visible []string) []int {
	var idx []int
	for i, fl := range f.fields {
		if len(visible) == 0 || contains(visible, fl.key) {
			idx = append(idx, i)
		}
	}
	return idx
}

// value returns a field's trimmed text
func (f form) value(key string) string {
	for _, fl := range f.fields {
		if fl.key == key {
			return strings.TrimSpace(fl.input.Value())
		}
	}
	return ""
}

// setValue replaces a field's text
func (f *form) setValue(key, value string) {
	for i := range f.fields {
		if f.fields[i].key == key {
			f.fields[i].input.SetValue(value)
		}
	}
}

// update routes a key to the form. changed reports whether any value changed.
func (f form) update(msg tea.KeyMsg, visible []string) (form, tea.Cmd, bool) {
	switch msg.String() {
	case "tab", "down":
		cmd := f.move(1, visible)
		return f, cmd, false
	case "shift+tab", "up":
		cmd := f.move(-1, visible)
		return f, cmd, false
	case "esc", "enter":
		f.stop()
		return f, nil, false
	}

	before := f.fields[f.focus].input.Value()
	var cmd tea.Cmd
	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	return f, cmd, f.fields[f.focus].input.Value() != before
}

// view renders the visible fields with any error under its input
func (f form) view(visible []string, errs map[string]string) string {
	var lines []string
	for _, i := range f.visibleIndexes(visible) {
		fl := f.fields[i]
		label := fieldLabelStyle.Render("  " + fl.label)
		if f.editing && i == f.focus {
			label = fieldFocusStyle.Render("> " + fl.label)
		}
		lines = append(lines, label+fl.input.View())
		if msg, ok := errs[fl.key]; ok {
			lines = append(lines, errorStyle.Render("    "+msg))
		}
	}
	return strings.Join(lines, "\n")
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
