package tui

// confirmDelete asks before a record is removed.
type confirmDelete struct {
	id       string
	title    string
	returnTo screen
}

func (c confirmDelete) View() string {
	content := "Удалить \"" + c.title + "\"?\n\n"
	content += "y да    n нет"
	return overlayBoxStyle.Render(content)
}
