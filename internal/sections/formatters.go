package sections

import (
	"strings"

	"github.com/mbarbosa/cvgen/internal/document"
	"github.com/mbarbosa/cvgen/internal/localization"
)

// Formatter turns one section data item into zero or more styled blocks,
// appending them to out.
type Formatter interface {
	FormatItem(out *document.BlockList, item map[string]any) error
}

// experienceFormatter renders a work experience entry: bold position, bold
// company, italic period, bulleted descriptions, small spacing.
type experienceFormatter struct {
	ctx *formatterContext
}

func (f *experienceFormatter) FormatItem(out *document.BlockList, item map[string]any) error {
	appendBold(out, ItemTitleStyle, f.ctx.field(item, "position"))
	appendBold(out, ItemSubtitleStyle, f.ctx.field(item, "company"))
	appendItalic(out, DateStyle, f.period(item))
	appendBullets(out, BodyStyle, f.ctx.list(item, "description"))
	return appendSpacing(out, f.ctx.engine, "small_bottom")
}

func (f *experienceFormatter) period(item map[string]any) string {
	return localization.FormatPeriod(
		item["start_month"], item["start_year"],
		item["end_month"], item["end_year"],
		f.ctx.translations, f.ctx.language,
	)
}

// educationFormatter follows the experience pattern with degree and
// institution.
type educationFormatter struct {
	ctx *formatterContext
}

func (f *educationFormatter) FormatItem(out *document.BlockList, item map[string]any) error {
	appendBold(out, ItemTitleStyle, f.ctx.field(item, "degree"))
	appendBold(out, ItemSubtitleStyle, f.ctx.field(item, "institution"))
	appendItalic(out, DateStyle, localization.FormatPeriod(
		item["start_month"], item["start_year"],
		item["end_month"], item["end_year"],
		f.ctx.translations, f.ctx.language,
	))
	appendBullets(out, BodyStyle, f.ctx.list(item, "description"))
	return appendSpacing(out, f.ctx.engine, "small_bottom")
}

// coreSkillsFormatter renders a category title plus bulleted descriptions.
type coreSkillsFormatter struct {
	ctx *formatterContext
}

func (f *coreSkillsFormatter) FormatItem(out *document.BlockList, item map[string]any) error {
	appendPlain(out, ItemTitleStyle, f.ctx.field(item, "category"))
	appendBullets(out, BodyStyle, f.ctx.list(item, "description"))
	return appendSpacing(out, f.ctx.engine, "minimal_bottom")
}

// skillsFormatter renders a category title plus a comma-joined flat item
// list. The "item" list is plain strings, not localized.
type skillsFormatter struct {
	ctx *formatterContext
}

func (f *skillsFormatter) FormatItem(out *document.BlockList, item map[string]any) error {
	appendPlain(out, ItemTitleStyle, f.ctx.field(item, "category"))

	if values, ok := item["item"].([]any); ok && len(values) > 0 {
		flattened := make([]string, 0, len(values))
		for _, value := range values {
			flattened = append(flattened, localization.Stringify(value))
		}
		appendCommaJoined(out, BodyStyle, flattened)
	}
	return appendSpacing(out, f.ctx.engine, "item_bottom")
}

// languagesFormatter renders a single "language - proficiency" composite
// line with no trailing spacing block.
type languagesFormatter struct {
	ctx *formatterContext
}

func (f *languagesFormatter) FormatItem(out *document.BlockList, item map[string]any) error {
	appendComposite(out, BodyStyle, f.ctx.field(item, "language"), f.ctx.field(item, "proficiency"))
	return nil
}

// awardsFormatter renders a single "title - description" composite line.
type awardsFormatter struct {
	ctx *formatterContext
}

func (f *awardsFormatter) FormatItem(out *document.BlockList, item map[string]any) error {
	appendComposite(out, BodyStyle, f.ctx.field(item, "title"), f.ctx.field(item, "description"))
	return nil
}

// certificationsFormatter renders "name - issuer (year)" when all three are
// present, "name - issuer" otherwise, degrading to whichever part exists.
type certificationsFormatter struct {
	ctx *formatterContext
}

func (f *certificationsFormatter) FormatItem(out *document.BlockList, item map[string]any) error {
	name := f.ctx.field(item, "name")
	issuer := f.ctx.field(item, "issuer")
	year := strings.TrimSpace(localization.Stringify(item["year"]))

	detail := issuer
	if name != "" && issuer != "" && year != "" {
		detail = issuer + " (" + year + ")"
	}
	appendComposite(out, BodyStyle, name, detail)
	return nil
}
