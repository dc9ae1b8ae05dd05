package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

type loadTypeModel struct {
	input   textinput.Model
	loading bool
	err     string
}

func newLoadTypeModel() loadTypeModel {
	in := textinput.New()
	in.Placeholder = "projectStatus, currency"
	in.CharLimit = 512
	in.Width = 40
	in.Focus()
	return loadTypeModel{input: in}
}

// types splits the input on commas and whitespace.
func (m loadTypeModel) types() []string {
	return strings.FieldsFunc(m.input.Value(), func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
}

func (m loadTypeModel) View() string {
	out := "Тип        │ [" + m.input.View() + "]\n"
	if m.loading {
		out += "Действие   │ [Загрузка...]\n"
	} else {
		out += "Действие   │ [Загрузить]\n"
	}
	if m.err != "" {
		out += "Ошибка     │ " + m.err + "\n"
	}
	return renderPage("ЗАГРУЗКА СПРАВОЧНИКА", strings.TrimRight(out, "\n"), "enter: загрузить │ esc: назад")
}
