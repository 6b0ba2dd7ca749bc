package document

import (
	"fmt"
	"strings"

	"github.com/mbarbosa/cvgen/internal/styles"
)

// RenderHTML converts a document into a standalone HTML page. Paragraph
// styles become CSS classes; blocks become <p> and spacer <div> elements in
// order. The markup inside paragraphs is trusted: it was escaped upstream
// and only carries the supported formatting tags.
func RenderHTML(doc *Document) (string, error) {
	var sb strings.Builder

	sb.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<style>\n")
	// Page margins are applied by the print command, not here, so the HTML
	// preview and the printed layout agree on block positions.
	sb.WriteString("@page { size: A4; }\nbody { margin: 0; }\np { margin: 0; }\n")

	for _, name := range doc.Styles.Names() {
		style, ok := doc.Styles.Get(name)
		if !ok {
			continue
		}
		sb.WriteString(styleRule(style))
	}
	sb.WriteString("</style>\n</head>\n<body>\n")

	for _, block := range doc.Blocks {
		switch b := block.(type) {
		case Paragraph:
			if _, ok := doc.Styles.Get(b.Style); !ok {
				return "", fmt.Errorf("paragraph references unknown style %q", b.Style)
			}
			fmt.Fprintf(&sb, "<p class=%q>%s</p>\n", b.Style, b.Markup)
		case Spacer:
			fmt.Fprintf(&sb, "<div class=\"spacer\" style=\"height:%smm\"></div>\n", formatNumber(b.Height))
		default:
			return "", fmt.Errorf("unsupported block type %T", block)
		}
	}

	sb.WriteString("</body>\n</html>\n")
	return sb.String(), nil
}

// styleRule renders one paragraph style as a CSS class. PDF-style font names
// such as "Helvetica-Bold" split into family plus weight/style.
func styleRule(style *styles.ParagraphStyle) string {
	family, weight, fontStyle := splitFontName(style.FontName)

	var sb strings.Builder
	fmt.Fprintf(&sb, ".%s { font-family: %q; font-size: %spt;", style.Name, family, formatNumber(style.FontSize))
	if weight != "" {
		fmt.Fprintf(&sb, " font-weight: %s;", weight)
	}
	if fontStyle != "" {
		fmt.Fprintf(&sb, " font-style: %s;", fontStyle)
	}
	fmt.Fprintf(&sb, " color: %s;", styles.CSSColor(style.TextColor))
	fmt.Fprintf(&sb, " text-align: %s;", style.Alignment.CSSValue())
	if style.SpaceBefore != 0 {
		fmt.Fprintf(&sb, " margin-top: %spt;", formatNumber(style.SpaceBefore))
	}
	if style.SpaceAfter != 0 {
		fmt.Fprintf(&sb, " margin-bottom: %spt;", formatNumber(style.SpaceAfter))
	}
	if style.LeftIndent != 0 {
		fmt.Fprintf(&sb, " margin-left: %spt;", formatNumber(style.LeftIndent))
	}
	if style.KeepWithNext {
		sb.WriteString(" break-after: avoid;")
	}
	sb.WriteString(" }\n")
	return sb.String()
}

func splitFontName(fontName string) (family, weight, fontStyle string) {
	family = fontName
	if family == "" {
		family = "Helvetica"
	}

	for {
		switch {
		case strings.HasSuffix(family, "-Bold"):
			family = strings.TrimSuffix(family, "-Bold")
			weight = "bold"
		case strings.HasSuffix(family, "-Oblique"):
			family = strings.TrimSuffix(family, "-Oblique")
			fontStyle = "italic"
		case strings.HasSuffix(family, "-Italic"):
			family = strings.TrimSuffix(family, "-Italic")
			fontStyle = "italic"
		default:
			return family, weight, fontStyle
		}
	}
}

// formatNumber renders a float without a trailing ".0" so the CSS stays
// readable and stable for assertions.
func formatNumber(v float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.3f", v), "0"), ".")
}
