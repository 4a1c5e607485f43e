package app

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"github.com/rojanmagar2001/linkverify/internal/domain"
)

type palette struct {
	title, ok, bad, hint text.Colors
}

func newPalette(color bool) palette {
	if !color {
		return palette{}
	}
	return palette{
		title: text.Colors{text.Bold},
		ok:    text.Colors{text.FgGreen},
		bad:   text.Colors{text.FgRed},
		hint:  text.Colors{text.FgYellow},
	}
}

func paint(c text.Colors, s string) string {
	if len(c) == 0 {
		return s
	}
	return c.Sprint(s)
}

// RenderText writes the four result sections followed by a summary line.
func RenderText(w io.Writer, r domain.Report, color bool) error {
	p := newPalette(color)
	var b strings.Builder

	section(&b, p, "Ok file links", []string{"Path"}, rows(r.Files.OK, p.ok))

	broken := make([][]string, 0, len(r.Files.Broken))
	for _, bl := range r.Files.Broken {
		hint := ""
		if len(bl.Suggestions) > 0 {
			hint = paint(p.hint, strings.Join(bl.Suggestions, ", "))
		}
		broken = append(broken, []string{paint(p.bad, bl.Path), hint})
	}
	section(&b, p, "Broken file links", []string{"Path", "Maybe you can try"}, broken)

	section(&b, p, "Ok url links", []string{"URL"}, rows(r.URLs.Valid, p.ok))
	section(&b, p, "Broken url links", []string{"URL"}, rows(r.URLs.Invalid, p.bad))

	fmt.Fprintf(&b, "Checked %d links (%d files, %d urls). Broken: %d. Took %s\n",
		r.Total(), r.Files.Len(), r.URLs.Len(), r.BrokenCount(), r.Elapsed.Round(time.Millisecond))

	_, err := io.WriteString(w, b.String())
	return err
}

func rows(values []string, c text.Colors) [][]string {
	out := make([][]string, 0, len(values))
	for _, v := range values {
		out = append(out, []string{paint(c, v)})
	}
	return out
}

func section(b *strings.Builder, p palette, title string, headers []string, body [][]string) {
	b.WriteString(paint(p.title, title+":"))
	b.WriteString("\n")
	if len(body) == 0 {
		b.WriteString("  (none)\n\n")
		return
	}
	b.WriteString(renderTable(headers, body))
	b.WriteString("\n\n")
}

func renderTable(headers []string, body [][]string) string {
	tw := table.NewWriter()
	style := table.StyleRounded
	style.Format.Header = text.FormatDefault
	tw.SetStyle(style)

	header := make(table.Row, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	tw.AppendHeader(header)

	for _, row := range body {
		r := make(table.Row, len(headers))
		for i := range headers {
			if i < len(row) {
				r[i] = row[i]
			}
		}
		tw.AppendRow(r)
	}
	return tw.Render()
}

// RenderJSON writes the report as one indented JSON document.
func RenderJSON(w io.Writer, r domain.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func shouldColorize(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
