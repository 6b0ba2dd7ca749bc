// Package styles validates the visual style configuration and exposes typed
// access to margins, spacing and paragraph styles.
package styles

import (
	"fmt"
	"strings"
)

// Required configuration contents. Missing any of these is a fatal
// configuration error; there are no implicit defaults.
var (
	RequiredParagraphStyleNames = []string{
		"NameStyle",
		"TitleStyle",
		"SectionTitleStyle",
		"ItemTitleStyle",
		"ItemSubtitleStyle",
		"BodyStyle",
		"ContactStyle",
		"DateStyle",
	}
	RequiredMarginKeys  = []string{"top", "bottom", "left", "right"}
	RequiredSpacingKeys = []string{"header_bottom", "section_bottom", "item_bottom", "small_bottom", "minimal_bottom"}
)

// Engine provides semantic access to a validated style configuration.
type Engine struct {
	configuration map[string]any
}

// NewEngine validates the configuration eagerly and returns an engine bound
// to it. Any missing required key aborts before rendering work begins.
func NewEngine(configuration map[string]any) (*Engine, error) {
	if configuration == nil {
		configuration = map[string]any{}
	}
	if err := Validate(configuration); err != nil {
		return nil, err
	}
	return &Engine{configuration: configuration}, nil
}

// Validate checks the visual settings document against the required schema:
// the eight paragraph style names, the margin and spacing keys, and the
// social link color.
func Validate(configuration map[string]any) error {
	paragraphStyles, ok := configuration["paragraph_styles"].(map[string]any)
	if !ok {
		return &Error{Message: "style configuration missing 'paragraph_styles' dictionary in styles.json"}
	}

	var missingStyles []string
	for _, name := range RequiredParagraphStyleNames {
		if _, present := paragraphStyles[name]; !present {
			missingStyles = append(missingStyles, name)
		}
	}
	if len(missingStyles) > 0 {
		return &Error{Message: "style configuration missing required paragraph styles: " + strings.Join(missingStyles, ", ")}
	}

	if err := requireSectionKeys(configuration, "margins", RequiredMarginKeys); err != nil {
		return err
	}
	if err := requireSectionKeys(configuration, "spacing", RequiredSpacingKeys); err != nil {
		return err
	}

	_, err := resolveSocialLinkColor(configuration)
	return err
}

// BuildStylesheet constructs the renderable stylesheet from this engine's
// configuration.
func (e *Engine) BuildStylesheet() (*Stylesheet, error) {
	return BuildStylesheet(e.configuration)
}

// Margin resolves a required page margin in millimeters.
func (e *Engine) Margin(key string) (float64, error) {
	return e.requireNumeric("margins", key)
}

// Spacing resolves a required vertical spacing value in millimeters.
func (e *Engine) Spacing(key string) (float64, error) {
	return e.requireNumeric("spacing", key)
}

// SocialLinkColor returns the configured hyperlink color.
func (e *Engine) SocialLinkColor() string {
	// Validated at construction; the fallback covers direct misuse only.
	value, err := resolveSocialLinkColor(e.configuration)
	if err != nil {
		return "blue"
	}
	return value
}

func (e *Engine) requireNumeric(sectionKey, key string) (float64, error) {
	section, ok := e.configuration[sectionKey].(map[string]any)
	if !ok {
		return 0, &Error{Message: fmt.Sprintf("style configuration missing '%s' dictionary in styles.json", sectionKey)}
	}
	value, ok := toFloat(section[key])
	if !ok {
		return 0, &Error{Message: fmt.Sprintf("style configuration missing '%s.%s' in styles.json", sectionKey, key)}
	}
	return value, nil
}

func requireSectionKeys(configuration map[string]any, sectionKey string, requiredKeys []string) error {
	section, ok := configuration[sectionKey].(map[string]any)
	if !ok {
		return &Error{Message: fmt.Sprintf("style configuration missing '%s' dictionary in styles.json", sectionKey)}
	}
	for _, key := range requiredKeys {
		if _, ok := toFloat(section[key]); !ok {
			return &Error{Message: fmt.Sprintf("style configuration missing '%s.%s' in styles.json", sectionKey, key)}
		}
	}
	return nil
}

func resolveSocialLinkColor(configuration map[string]any) (string, error) {
	links, ok := configuration["links"].(map[string]any)
	if !ok {
		return "", &Error{Message: "style configuration missing 'links' dictionary in styles.json"}
	}
	value, ok := links["social_link_color"].(string)
	if !ok || strings.TrimSpace(value) == "" {
		return "", &Error{Message: "style configuration missing 'links.social_link_color' in styles.json"}
	}
	if _, err := ParseColor(value); err != nil {
		return "", &Error{Message: fmt.Sprintf("invalid 'links.social_link_color': %s", value)}
	}
	return value, nil
}
