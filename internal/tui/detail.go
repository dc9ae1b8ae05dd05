package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-dict-keeper/models"
)

type entriesModel struct {
	dictType models.DictType
	entries  []models.DictEntry
	idx      int
	status   string
}

func (m *entriesModel) reload(reader Reader) {
	m.entries = reader.Get(m.dictType)
	m.idx = clampIndex(m.idx, len(m.entries))
}

func (m entriesModel) current() (models.DictEntry, bool) {
	if len(m.entries) == 0 || m.idx < 0 || m.idx >= len(m.entries) {
		return models.DictEntry{}, false
	}
	return m.entries[m.idx], true
}

func (m entriesModel) View() string {
	out := ""
	if m.status != "" {
		out += "Статус: " + m.status + "\n\n"
	}

	if len(m.entries) == 0 {
		out += "Записей нет\n"
	} else {
		out += "Код              │ Наименование                   │ Порядок\n"
		out += "─────────────────┼────────────────────────────────┼────────\n"
		for i, e := range m.entries {
			out += fmt.Sprintf("%s %-16s│ %-30s │ %d\n",
				cursor(i == m.idx),
				fitText(e.Code, 15),
				fitText(e.Label, 30),
				e.SortOrder,
			)
		}
	}

	return renderPage("СПРАВОЧНИК "+string(m.dictType), strings.TrimRight(out, "\n"),
		"enter: открыть │ c: копир. код │ esc: назад │ ↑/↓: нав.")
}

type entryModel struct {
	dictType models.DictType
	entry    models.DictEntry
	status   string
}

func (m entryModel) View() string {
	out := ""
	out += fmt.Sprintf("Справочник │ %s\n", m.dictType)
	out += fmt.Sprintf("Код        │ %s\n", m.entry.Code)
	out += fmt.Sprintf("Значение   │ %s\n", valueOrDash(m.entry.Label))
	out += fmt.Sprintf("Порядок    │ %d\n", m.entry.SortOrder)
	out += fmt.Sprintf("Атрибуты   │ %s\n", formatExtra(m.entry.Extra))
	if m.status != "" {
		out += "\nСтатус: " + m.status + "\n"
	}

	return renderPage("ПРОСМОТР ЗАПИСИ", strings.TrimRight(out, "\n"),
		"c: копир. код │ u: копир. значение │ esc: назад")
}
