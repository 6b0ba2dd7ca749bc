package styles

import (
	"fmt"
	"image/color"
	"sort"
	"strings"
)

// Alignment is the paragraph alignment enum.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
	AlignJustify
)

var alignmentByName = map[string]Alignment{
	"left":    AlignLeft,
	"center":  AlignCenter,
	"right":   AlignRight,
	"justify": AlignJustify,
}

// CSSValue returns the text-align value for an alignment.
func (a Alignment) CSSValue() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	case AlignJustify:
		return "justify"
	default:
		return "left"
	}
}

// ParagraphStyle is a renderable paragraph style definition.
type ParagraphStyle struct {
	Name         string
	Parent       string
	FontName     string
	FontSize     float64 // points
	TextColor    color.RGBA
	SpaceBefore  float64 // points
	SpaceAfter   float64 // points
	LeftIndent   float64 // points
	Alignment    Alignment
	KeepWithNext bool
}

// Stylesheet holds paragraph styles by name, preserving a deterministic
// ordering for rendering.
type Stylesheet struct {
	byName map[string]*ParagraphStyle
	names  []string
}

// baseStylesheet seeds the defaults every configuration inherits from,
// mirroring the handful of stock styles the document builder knows about.
func baseStylesheet() *Stylesheet {
	sheet := &Stylesheet{byName: map[string]*ParagraphStyle{}}
	normal := &ParagraphStyle{Name: "Normal", FontName: "Helvetica", FontSize: 10, TextColor: color.RGBA{A: 0xff}}

	sheet.add(normal)
	sheet.add(&ParagraphStyle{Name: "BodyText", Parent: "Normal", FontName: "Helvetica", FontSize: 10, TextColor: normal.TextColor, SpaceAfter: 6})
	sheet.add(&ParagraphStyle{Name: "Title", Parent: "Normal", FontName: "Helvetica-Bold", FontSize: 18, TextColor: normal.TextColor, Alignment: AlignCenter, SpaceAfter: 6})
	sheet.add(&ParagraphStyle{Name: "Heading1", Parent: "Normal", FontName: "Helvetica-Bold", FontSize: 18, TextColor: normal.TextColor, SpaceBefore: 12, SpaceAfter: 6, KeepWithNext: true})
	sheet.add(&ParagraphStyle{Name: "Heading2", Parent: "Normal", FontName: "Helvetica-Bold", FontSize: 14, TextColor: normal.TextColor, SpaceBefore: 12, SpaceAfter: 6, KeepWithNext: true})
	return sheet
}

func (s *Stylesheet) add(style *ParagraphStyle) {
	if _, exists := s.byName[style.Name]; exists {
		return
	}
	s.byName[style.Name] = style
	s.names = append(s.names, style.Name)
}

// Get returns a style by name.
func (s *Stylesheet) Get(name string) (*ParagraphStyle, bool) {
	style, ok := s.byName[name]
	return style, ok
}

// Names returns the style names in definition order.
func (s *Stylesheet) Names() []string {
	return append([]string(nil), s.names...)
}

// BuildStylesheet maps declarative paragraph style definitions onto
// renderable styles. Each definition inherits from its named parent (the
// "Normal" base style when absent or unknown) and overrides the mapped
// fields. Definitions that collide with a stock style name are skipped; an
// invalid text color is fatal.
func BuildStylesheet(configuration map[string]any) (*Stylesheet, error) {
	rawStyles, ok := configuration["paragraph_styles"].(map[string]any)
	if !ok {
		return nil, &Error{Message: "style configuration missing 'paragraph_styles' dictionary in styles.json"}
	}

	sheet := baseStylesheet()

	pending := map[string]map[string]any{}
	for name, raw := range rawStyles {
		definition, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		if _, exists := sheet.byName[name]; exists {
			continue
		}
		pending[name] = definition
	}

	// JSON decoding loses definition order, so parents defined in the same
	// configuration are resolved by repeated passes until a fixpoint.
	for len(pending) > 0 {
		progressed := false
		for _, name := range sortedPendingNames(pending) {
			definition := pending[name]
			parentName, _ := definition["parent"].(string)
			if parentName == "" {
				parentName = "Normal"
			}
			parent, known := sheet.byName[parentName]
			if !known {
				if _, definedLater := pending[parentName]; definedLater {
					continue
				}
				parent = sheet.byName["Normal"]
			}

			style, err := buildParagraphStyle(name, parentName, parent, definition)
			if err != nil {
				return nil, err
			}
			sheet.add(style)
			delete(pending, name)
			progressed = true
		}
		if !progressed {
			// Parent cycle; fall back to Normal for whatever remains.
			for _, name := range sortedPendingNames(pending) {
				style, err := buildParagraphStyle(name, "Normal", sheet.byName["Normal"], pending[name])
				if err != nil {
					return nil, err
				}
				sheet.add(style)
				delete(pending, name)
			}
		}
	}

	return sheet, nil
}

func buildParagraphStyle(name, parentName string, parent *ParagraphStyle, definition map[string]any) (*ParagraphStyle, error) {
	style := *parent
	style.Name = name
	style.Parent = parentName

	if v, ok := definition["font_name"].(string); ok {
		style.FontName = v
	}
	if v, ok := toFloat(definition["font_size"]); ok {
		style.FontSize = v
	}
	if raw, present := definition["text_color"]; present {
		value, ok := raw.(string)
		if !ok || strings.TrimSpace(value) == "" {
			return nil, &Error{Message: fmt.Sprintf("paragraph style %q 'text_color' must be a non-empty string", name)}
		}
		parsed, err := ParseColor(value)
		if err != nil {
			return nil, &Error{Message: fmt.Sprintf("invalid paragraph style color for %q: %s", name, value)}
		}
		style.TextColor = parsed
	}
	if v, ok := toFloat(definition["space_before"]); ok {
		style.SpaceBefore = v
	}
	if v, ok := toFloat(definition["space_after"]); ok {
		style.SpaceAfter = v
	}
	if v, ok := toFloat(definition["left_indent"]); ok {
		style.LeftIndent = v
	}
	if raw, present := definition["alignment"]; present {
		style.Alignment = resolveAlignment(raw)
	}
	if v, ok := definition["keep_with_next"].(bool); ok {
		style.KeepWithNext = v
	}
	// JSON configs written by hand sometimes use 0/1 for keep_with_next.
	if v, ok := toFloat(definition["keep_with_next"]); ok {
		style.KeepWithNext = v != 0
	}

	return &style, nil
}

// resolveAlignment maps the alignment enum case-insensitively; anything
// unrecognized defaults to left.
func resolveAlignment(value any) Alignment {
	name, ok := value.(string)
	if !ok {
		return AlignLeft
	}
	alignment, ok := alignmentByName[strings.ToLower(name)]
	if !ok {
		return AlignLeft
	}
	return alignment
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}

func sortedPendingNames(pending map[string]map[string]any) []string {
	names := make([]string, 0, len(pending))
	for name := range pending {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
