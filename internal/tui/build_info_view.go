package tui

import (
	"strings"

	"github.com/MKhiriev/go-pass-vault/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo, identity string) string {
	info = info.Display()

	var b strings.Builder
	b.WriteString("Название приложения: go-pass-vault\n")
	b.WriteString("Версия: " + info.BuildVersion() + "\n")
	b.WriteString("Дата: " + info.BuildDate() + "\n")
	b.WriteString("Коммит: " + info.BuildCommit() + "\n\n")
	b.WriteString("Хранилище: " + fitText(identity, 48))

	return renderPage("ИНФОРМАЦИЯ О ПРОГРАММЕ", b.String(), "f1/esc: назад")
}
