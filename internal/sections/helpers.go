// Package sections maps declarative section types to formatter
// implementations that turn one data item into styled blocks.
package sections

import (
	"strings"

	"github.com/mbarbosa/cvgen/internal/document"
	"github.com/mbarbosa/cvgen/internal/localization"
	"github.com/mbarbosa/cvgen/internal/styles"
)

// Style names the formatters emit blocks with. These are the required names
// the style engine validates.
const (
	ItemTitleStyle    = "ItemTitleStyle"
	ItemSubtitleStyle = "ItemSubtitleStyle"
	BodyStyle         = "BodyStyle"
	DateStyle         = "DateStyle"
)

// formatterContext carries the per-generation inputs every formatter needs.
type formatterContext struct {
	language     string
	translations map[string]any
	engine       *styles.Engine
}

func (c *formatterContext) field(item map[string]any, name string) string {
	return localization.ResolveField(item, name, c.language, "")
}

func (c *formatterContext) list(item map[string]any, name string) []string {
	return localization.ResolveList(item, name, c.language)
}

// appendBold emits a bold-styled block when text is non-empty.
func appendBold(out *document.BlockList, style, text string) {
	if text == "" {
		return
	}
	out.Add(document.Paragraph{Style: style, Markup: "<b>" + localization.EscapePreservingTags(text) + "</b>"})
}

// appendItalic emits an italic-styled block when text is non-empty.
func appendItalic(out *document.BlockList, style, text string) {
	if text == "" {
		return
	}
	out.Add(document.Paragraph{Style: style, Markup: "<i>" + localization.EscapePreservingTags(text) + "</i>"})
}

// appendPlain emits an escaped block with no tag wrapping.
func appendPlain(out *document.BlockList, style, text string) {
	if text == "" {
		return
	}
	out.Add(document.Paragraph{Style: style, Markup: localization.EscapePreservingTags(text)})
}

// appendComposite emits a "main - detail" line. Bold applies to the main
// slot only when both parts are present; a lone part is emitted plain, and
// no dangling separator is ever produced.
func appendComposite(out *document.BlockList, style, main, detail string) {
	switch {
	case main != "" && detail != "":
		out.Add(document.Paragraph{
			Style:  style,
			Markup: "<b>" + localization.EscapePreservingTags(main) + "</b> - " + localization.EscapePreservingTags(detail),
		})
	case main != "":
		appendPlain(out, style, main)
	case detail != "":
		appendPlain(out, style, detail)
	}
}

// appendBullets emits one bulleted block per description entry, with
// rich-text processing so inline tags and newlines survive.
func appendBullets(out *document.BlockList, style string, descriptions []string) {
	for _, description := range descriptions {
		out.Add(document.Paragraph{Style: style, Markup: "• " + localization.ProcessRichText(description)})
	}
}

// appendCommaJoined emits one block with the values joined by ", ".
func appendCommaJoined(out *document.BlockList, style string, values []string) {
	if len(values) == 0 {
		return
	}
	escaped := make([]string, len(values))
	for i, value := range values {
		escaped[i] = localization.EscapePreservingTags(value)
	}
	out.Add(document.Paragraph{Style: style, Markup: strings.Join(escaped, ", ")})
}

// appendSpacing emits a vertical gap sized by a named spacing key.
func appendSpacing(out *document.BlockList, engine *styles.Engine, key string) error {
	height, err := engine.Spacing(key)
	if err != nil {
		return err
	}
	out.Add(document.Spacer{Height: height})
	return nil
}
