package navigate

import (
	"fmt"
	"strings"

	"w3u-navigator/internal/model"
	"w3u-navigator/internal/ui"
)

// render draws the current document and returns its option list. Every
// printed entry gets the next sequential 0-based index regardless of depth;
// the returned indices are valid only for the immediately following read.
func (n *Navigator) render(doc *model.Document) []Option {
	if n.ClearScreen {
		fmt.Fprint(n.Out, ui.ClearScreen())
	}
	if n.status != "" {
		fmt.Fprintf(n.Out, "%s\n\n", n.status)
		n.status = ""
	}
	fmt.Fprintf(n.Out, "%s%s%s\n", ui.ColorBold, docName(doc), ui.ColorReset)

	opts := Flatten(doc)
	for i, opt := range opts {
		indent := strings.Repeat("  ", opt.Depth)
		name := entryName(opt)
		if opt.IsGroup {
			name = ui.ColorCyan + name + ui.ColorReset
		}
		fmt.Fprintf(n.Out, "%s[%d] %s - %s\n", indent, i, name, ui.FormatURL(opt.URL))
	}
	fmt.Fprintln(n.Out, "[B] Back")
	fmt.Fprintln(n.Out, "[Q] Quit")
	fmt.Fprint(n.Out, "Choose an option: ")
	return opts
}

func docName(doc *model.Document) string {
	if doc.Name == "" {
		return "Unknown"
	}
	return doc.Name
}

func entryName(opt Option) string {
	if opt.Name != "" {
		return opt.Name
	}
	if opt.IsGroup {
		return "Unnamed Group"
	}
	return "Unnamed Station"
}
