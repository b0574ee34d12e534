package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
)

// MarkdownWriter outputs a presentation tree as a markdown document, for
// sharing an analysis outside the terminal.
type MarkdownWriter struct {
	output io.Writer
}

// NewMarkdownWriter creates a MarkdownWriter that writes to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{output: output}
}

// Write renders the full tree and flushes it to the underlying writer.
func (w *MarkdownWriter) Write(tree *Tree) error {
	md := markdown.NewMarkdown(w.output)

	if tree.Empty() {
		return md.Build()
	}

	md.H1(strings.TrimSpace(tree.Icon + " " + tree.Title))
	md.PlainText("")

	for _, section := range tree.Sections {
		if section.Title != "" {
			md.H2(strings.TrimSpace(section.Icon + " " + section.Title))
		}
		for _, item := range section.Items {
			writeMarkdownPrimitive(md, item)
		}
		md.PlainText("")
	}

	return md.Build()
}

func writeMarkdownPrimitive(md *markdown.Markdown, item Primitive) {
	switch v := item.(type) {
	case ScoreIndicator:
		md.PlainTextf("**%.0f%%** %s", v.Value, v.Label)
		if v.OutOfRange {
			md.Note("Score is outside the expected 0-100 range.")
		}
	case TextPanel:
		md.PlainTextf("**%s**: %s", v.Label, v.Text)
	case BadgeList:
		badges := make([]string, 0, len(v.Badges))
		for _, badge := range v.Badges {
			badges = append(badges, "`"+badge+"`")
		}
		md.PlainText(strings.Join(badges, " "))
	case AnnotatedList:
		md.BulletList(v.Items...)
	case NumberedList:
		md.OrderedList(v.Items...)
	case KeyValueGrid:
		rows := make([][]string, 0, len(v.Entries))
		for _, entry := range v.Entries {
			rows = append(rows, []string{entry.Label, strconv.FormatFloat(entry.Value, 'f', 0, 64) + "%"})
		}
		md.Table(markdown.TableSet{
			Header: []string{"Category", "Score"},
			Rows:   rows,
		})
	case FactorRow:
		line := "**" + v.Name + "**"
		if v.Badge != nil {
			line += " `" + v.Badge.Text + "`"
		}
		if v.Description != "" {
			line += " " + v.Description
		}
		md.BulletList(line)
	case Alert:
		md.Warning(v.Message)
	case Skeleton:
		md.PlainText("*loading*")
	case RawDump:
		data, err := json.MarshalIndent(v.Fields, "", "  ")
		if err != nil {
			md.PlainText(fmt.Sprintf("%v", v.Fields))
			return
		}
		md.CodeBlocks(markdown.SyntaxHighlightJSON, string(data))
	}
}
