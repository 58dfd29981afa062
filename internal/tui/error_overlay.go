package tui

import (
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/vault"
)

// brokenRecordsView lists records that could not be decrypted on the last
// load. They can still be deleted.
func brokenRecordsView(errs []vault.RecordError, idx int) string {
	var b strings.Builder
	b.WriteString("Не удалось расшифровать\n\n")
	for i, e := range errs {
		line := valueOrDash(e.Title) + "  (" + e.RecordID + ")"
		if i == idx {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\nd удалить    esc закрыть")
	return overlayBoxStyle.Render(b.String())
}
