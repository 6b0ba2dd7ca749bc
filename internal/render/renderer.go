// Package render orchestrates CV rendering: header, summary and dynamic
// sections assembled into a flat block sequence handed to the PDF builder.
package render

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/mbarbosa/cvgen/internal/document"
	"github.com/mbarbosa/cvgen/internal/localization"
	"github.com/mbarbosa/cvgen/internal/sections"
	"github.com/mbarbosa/cvgen/internal/styles"
)

// Renderer drives one generation run. Instances are scoped to a single
// document and language; the logger carries the run's context fields.
type Renderer struct {
	language     string
	translations map[string]any
	engine       *styles.Engine
	registry     *sections.Registry
	logger       *slog.Logger
}

// New builds a renderer for one document + language.
func New(language string, translations map[string]any, engine *styles.Engine, logger *slog.Logger) *Renderer {
	return &Renderer{
		language:     language,
		translations: translations,
		engine:       engine,
		registry:     sections.NewRegistry(language, translations, engine),
		logger:       logger,
	}
}

// RenderCV assembles the block sequence for cvData and hands it to the
// builder. Builder failures are wrapped with the intended output path.
func (r *Renderer) RenderCV(ctx context.Context, cvData map[string]any, outputPath string, builder document.Builder) error {
	var blocks document.BlockList

	if err := r.addHeader(&blocks, cvData); err != nil {
		return err
	}
	if err := r.addSummary(&blocks, cvData); err != nil {
		return err
	}
	if err := r.addDynamicSections(&blocks, cvData); err != nil {
		return err
	}

	margins, err := r.resolveMargins()
	if err != nil {
		return err
	}

	sheet, err := r.engine.BuildStylesheet()
	if err != nil {
		return err
	}

	doc := &document.Document{
		Blocks:  blocks,
		Margins: margins,
		Styles:  sheet,
	}

	r.logger.Info("building PDF document", "event", "pdf_build_started", "step", "render")
	if err := builder.Build(ctx, doc, outputPath); err != nil {
		if _, alreadyWrapped := err.(*document.BuildError); alreadyWrapped {
			return err
		}
		return &document.BuildError{OutputPath: outputPath, Cause: err}
	}
	r.logger.Info("PDF document built successfully", "event", "pdf_build_finished", "step", "render")
	return nil
}

func (r *Renderer) resolveMargins() (document.Margins, error) {
	var margins document.Margins
	var err error

	if margins.Top, err = r.engine.Margin("top"); err != nil {
		return margins, err
	}
	if margins.Bottom, err = r.engine.Margin("bottom"); err != nil {
		return margins, err
	}
	if margins.Left, err = r.engine.Margin("left"); err != nil {
		return margins, err
	}
	margins.Right, err = r.engine.Margin("right")
	return margins, err
}

func (r *Renderer) addHeader(blocks *document.BlockList, cvData map[string]any) error {
	personalInfo, _ := cvData["personal_info"].(map[string]any)

	if name := strings.TrimSpace(localization.Stringify(personalInfo["name"])); name != "" {
		blocks.Add(document.Paragraph{Style: "NameStyle", Markup: localization.EscapePreservingTags(name)})
	}

	desiredRole, _ := cvData["desired_role"].(map[string]any)
	if role := localization.ResolveField(desiredRole, "desired_role", r.language, ""); role != "" {
		blocks.Add(document.Paragraph{Style: "TitleStyle", Markup: localization.EscapePreservingTags(role)})
	}

	var contactItems []string
	phone := strings.TrimSpace(localization.Stringify(personalInfo["phone"]))
	if phone != "" {
		// Brazilian country code assumption carried over from the original
		// data set; flagged for product review rather than generalized.
		if r.language == "en" && !strings.HasPrefix(phone, "+55") {
			phone = "+55 " + phone
		}
		contactItems = append(contactItems, phone)
	}
	if email := strings.TrimSpace(localization.Stringify(personalInfo["email"])); email != "" {
		contactItems = append(contactItems, email)
	}
	if location := strings.TrimSpace(localization.Stringify(personalInfo["location"])); location != "" {
		contactItems = append(contactItems, location)
	}
	if len(contactItems) > 0 {
		blocks.Add(document.Paragraph{
			Style:  "ContactStyle",
			Markup: localization.EscapePreservingTags(strings.Join(contactItems, " | ")),
		})
	}

	if links := r.socialLinks(personalInfo); len(links) > 0 {
		blocks.Add(document.Paragraph{Style: "ContactStyle", Markup: strings.Join(links, " | ")})
	}

	height, err := r.engine.Spacing("header_bottom")
	if err != nil {
		return err
	}
	blocks.Add(document.Spacer{Height: height})
	return nil
}

// socialLinks builds inline hyperlink markup for each social entry with a
// non-empty URL, using the label (or the URL itself) as link text.
func (r *Renderer) socialLinks(personalInfo map[string]any) []string {
	socialItems, ok := personalInfo["social"].([]any)
	if !ok {
		return nil
	}

	linkColor := localization.EscapeAttribute(r.engine.SocialLinkColor())

	var links []string
	for _, raw := range socialItems {
		item, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		url := strings.TrimSpace(localization.Stringify(item["url"]))
		if url == "" {
			continue
		}
		label := strings.TrimSpace(localization.Stringify(item["label"]))
		if label == "" {
			label = url
		}
		links = append(links,
			`<a href="`+localization.EscapeAttribute(url)+`" style="color:`+linkColor+`">`+
				localization.EscapePreservingTags(label)+`</a>`)
	}
	return links
}

// addSummary renders the summary section, or nothing at all when the
// localized description is empty: no heading without a body.
func (r *Renderer) addSummary(blocks *document.BlockList, cvData map[string]any) error {
	summaryData, _ := cvData["summary"].(map[string]any)
	summary := localization.ResolveField(summaryData, "description", r.language, "")
	if summary == "" {
		return nil
	}

	title := localization.ResolveTranslation(r.translations, r.language, "sections", "summary", "Summary")
	blocks.Add(document.Paragraph{Style: "SectionTitleStyle", Markup: localization.EscapePreservingTags(title)})
	blocks.Add(document.Paragraph{Style: "BodyStyle", Markup: localization.ProcessRichText(summary)})

	height, err := r.engine.Spacing("section_bottom")
	if err != nil {
		return err
	}
	blocks.Add(document.Spacer{Height: height})
	return nil
}

func (r *Renderer) addDynamicSections(blocks *document.BlockList, cvData map[string]any) error {
	for _, sectionType := range r.resolveSectionsToRender(cvData) {
		rawItems, present := cvData[sectionType]
		if !present || rawItems == nil {
			continue
		}

		items, ok := rawItems.([]any)
		if !ok {
			r.logger.Warn("section data is not a list; skipping section",
				"event", "section_render_skipped", "step", sectionType)
			continue
		}
		if len(items) == 0 {
			continue
		}

		formatter := r.registry.Get(sectionType)
		if formatter == nil {
			r.logger.Warn("unknown section type; skipping section",
				"event", "section_render_skipped", "step", sectionType)
			continue
		}

		started := time.Now()
		r.logger.Info("rendering section", "event", "section_render_started", "step", sectionType)

		r.addSectionTitle(blocks, sectionType)
		for _, raw := range items {
			item, _ := raw.(map[string]any)
			if err := formatter.FormatItem(blocks, item); err != nil {
				return err
			}
		}

		height, err := r.engine.Spacing("item_bottom")
		if err != nil {
			return err
		}
		blocks.Add(document.Spacer{Height: height})

		r.logger.Info("finished rendering section",
			"event", "section_render_finished", "step", sectionType,
			"duration_ms", time.Since(started).Milliseconds())
	}
	return nil
}

// addSectionTitle emits the translated section heading, falling back to the
// raw type string when no translation exists.
func (r *Renderer) addSectionTitle(blocks *document.BlockList, sectionType string) {
	title := localization.ResolveTranslation(r.translations, r.language, "sections", sectionType, sectionType)
	blocks.Add(document.Paragraph{Style: "SectionTitleStyle", Markup: localization.EscapePreservingTags(title)})
}

// resolveSectionsToRender turns the declarative sections list into an
// ordered, de-duplicated slice of type names: disabled entries drop out,
// entries sort by order (default 999), duplicates collapse to the first
// occurrence. A missing or malformed list falls back to the fixed default
// order.
func (r *Renderer) resolveSectionsToRender(cvData map[string]any) []string {
	rawSections, ok := cvData["sections"].([]any)
	if !ok {
		return sections.DefaultOrder
	}

	type sectionEntry struct {
		order       float64
		sectionType string
	}

	var enabled []sectionEntry
	for _, raw := range rawSections {
		entry, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		if isEnabled, ok := entry["enabled"].(bool); ok && !isEnabled {
			continue
		}
		order := 999.0
		if v, ok := entry["order"].(float64); ok {
			order = v
		}
		enabled = append(enabled, sectionEntry{order: order, sectionType: strings.TrimSpace(localization.Stringify(entry["type"]))})
	}

	sort.SliceStable(enabled, func(i, j int) bool {
		return enabled[i].order < enabled[j].order
	})

	seen := map[string]bool{}
	var resolved []string
	for _, entry := range enabled {
		if entry.sectionType == "" || seen[entry.sectionType] {
			continue
		}
		seen[entry.sectionType] = true
		resolved = append(resolved, entry.sectionType)
	}
	return resolved
}
