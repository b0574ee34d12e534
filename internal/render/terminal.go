package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// WriteText prints a plain-text rendition of the tree to the given writer.
// It consumes the tree only; reports and raw payloads never reach it.
func WriteText(w io.Writer, tree *Tree) error {
	p := &printer{w: w}

	if tree.Empty() {
		return nil
	}

	p.linef("%s %s", tree.Icon, tree.Title)
	p.linef("%s", strings.Repeat("=", len(tree.Title)+4))

	for _, section := range tree.Sections {
		p.linef("")
		if section.Title != "" {
			if section.Icon != "" {
				p.linef("%s %s", section.Icon, section.Title)
			} else {
				p.linef("%s", section.Title)
			}
		}
		for _, item := range section.Items {
			p.printPrimitive(item)
		}
	}

	return p.err
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) linef(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *printer) printPrimitive(item Primitive) {
	switch v := item.(type) {
	case ScoreIndicator:
		p.linef("  %s: %.0f%%", v.Label, v.Value)
		if v.OutOfRange {
			p.linef("  (warning: score outside the expected 0-100 range)")
		}
	case TextPanel:
		p.linef("  %s: %s", v.Label, v.Text)
	case BadgeList:
		badges := make([]string, 0, len(v.Badges))
		for _, badge := range v.Badges {
			badges = append(badges, "["+badge+"]")
		}
		p.linef("  %s", strings.Join(badges, " "))
	case AnnotatedList:
		for _, entry := range v.Items {
			p.linef("  %s %s", listMarker(v.Variant), entry)
		}
	case NumberedList:
		for i, entry := range v.Items {
			p.linef("  %d. %s", i+1, entry)
		}
	case KeyValueGrid:
		for _, entry := range v.Entries {
			p.linef("  %s: %.0f%%", entry.Label, entry.Value)
		}
	case FactorRow:
		line := "  - " + v.Name
		if v.Badge != nil {
			line += " (" + v.Badge.Text + ")"
		}
		p.linef("%s", line)
		if v.Description != "" {
			p.linef("      %s", v.Description)
		}
	case Alert:
		p.linef("  ✖ %s", v.Message)
	case Skeleton:
		p.linef("  ░░░░░░░░░░")
	case RawDump:
		data, err := json.MarshalIndent(v.Fields, "  ", "  ")
		if err != nil {
			p.linef("  %v", v.Fields)
			return
		}
		p.linef("  %s", data)
	}
}

func listMarker(variant Variant) string {
	switch variant {
	case VariantSuccess:
		return "✔"
	case VariantWarning:
		return "!"
	case VariantError:
		return "✖"
	default:
		return "-"
	}
}
