// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-dict-keeper/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo, status string) string {
	var b strings.Builder

	b.WriteString("Название приложения: GoDictKeeper\n")
	b.WriteString("Версия: ")
	b.WriteString(info.BuildVersion())
	b.WriteString("\n")
	b.WriteString("Дата: ")
	b.WriteString(info.BuildDate())
	b.WriteString("\n")
	b.WriteString("Коммит: ")
	b.WriteString(info.BuildCommit())
	b.WriteString("\n")
	b.WriteString("Состояние кэша: ")
	b.WriteString(valueOrDash(status))

	return renderPage("ИНФОРМАЦИЯ О ПРОГРАММЕ", b.String(), "esc: назад")
}
