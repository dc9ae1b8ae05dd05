package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-dict-keeper/models"
	"github.com/charmbracelet/bubbles/spinner"
)

type typeRow struct {
	dictType models.DictType
	count    int
	synced   string
}

type typesModel struct {
	rows    []typeRow
	idx     int
	syncing bool
	spinner spinner.Model
	status  string
}

func newTypesModel() typesModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return typesModel{spinner: s}
}

func (m *typesModel) reload(reader Reader) {
	types := reader.Types()
	rows := make([]typeRow, 0, len(types))
	for _, t := range types {
		rec, _ := reader.Record(t)
		rows = append(rows, typeRow{
			dictType: t,
			count:    len(rec.Entries),
			synced:   formatSyncedAt(rec.LastSyncedAt),
		})
	}
	m.rows = rows
	m.idx = clampIndex(m.idx, len(rows))
}

func (m typesModel) current() (models.DictType, bool) {
	if len(m.rows) == 0 || m.idx < 0 || m.idx >= len(m.rows) {
		return "", false
	}
	return m.rows[m.idx].dictType, true
}

func (m typesModel) View() string {
	title := "СПРАВОЧНИКИ"
	if m.syncing {
		title += "  " + m.spinner.View()
	}

	out := ""
	if m.status != "" {
		out += "Статус: " + m.status + "\n\n"
	}

	if len(m.rows) == 0 {
		out += "Справочники не загружены\n"
	} else {
		out += "Тип                          │ Записей │ Синхронизирован\n"
		out += "─────────────────────────────┼─────────┼────────────────────\n"
		for i, row := range m.rows {
			out += fmt.Sprintf("%s %-28s│ %7d │ %s\n",
				cursor(i == m.idx),
				fitText(string(row.dictType), 27),
				row.count,
				row.synced,
			)
		}
	}

	return renderPage(title, strings.TrimRight(out, "\n"),
		"enter: открыть │ a: загрузить тип │ s: синхр. │ ↑/↓: нав.")
}

func clampIndex(idx, n int) int {
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}
