package tui

import "strings"

const uiDivider = "──────────────────────────────────────────────────────"

const (
	minInputWidth = 20
	pageChrome    = 8
)

// inputWidth fits an input into a terminal of the given width.
func inputWidth(terminalWidth int) int {
	return max(minInputWidth, terminalWidth-pageChrome)
}

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(helpStyle.Render("ctrl+c: quit"))

	return b.String()
}

// renderStatus renders the one-line feedback area shared by the pages. An
// error message wins over a status message.
func renderStatus(status, errMsg string) string {
	switch {
	case errMsg != "":
		return errorStyle.Render("! " + errMsg)
	case status != "":
		return "OK: " + status
	}
	return ""
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}
