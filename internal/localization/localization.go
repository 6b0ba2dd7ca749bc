// Package localization resolves multilingual CV fields and formats
// locale-aware text for the PDF markup dialect.
package localization

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// monthsByLanguage holds 3-letter month abbreviations per language code.
// Unknown languages fall back to Portuguese.
var monthsByLanguage = map[string][]string{
	"pt": {"Jan", "Fev", "Mar", "Abr", "Mai", "Jun", "Jul", "Ago", "Set", "Out", "Nov", "Dez"},
	"en": {"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
}

// preservedTags are the only formatting tags the document builder understands.
// Everything else angle-bracketed in user content gets escaped.
var preservedTags = []string{"<b>", "</b>", "<i>", "</i>", "<u>", "</u>"}

// tagMarker returns a placeholder that survives entity escaping. The NUL
// delimiters cannot appear in decoded JSON text, so round-tripping is safe.
func tagMarker(index int) string {
	return "\x00TAG" + strconv.Itoa(index) + "\x00"
}

var entityEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"'", "&apos;",
	`"`, "&quot;",
)

var filenameSanitizer = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// ResolveField resolves a localizable field to a display string.
//
// Two shapes are supported. The unified shape nests language variants under
// the field itself ({field: {pt: ..., en: ..., default: ...}}). The legacy
// shape uses sibling suffixed keys ({field}_pt, {field}_en) next to a bare
// {field} fallback. Resolution order for the legacy shape is
// requested-language key, Portuguese key (when the requested language is not
// Portuguese), bare key, then def.
func ResolveField(data any, fieldName, language, def string) string {
	item, ok := data.(map[string]any)
	if !ok {
		return def
	}

	fieldValue := item[fieldName]
	if variants, ok := fieldValue.(map[string]any); ok && containsLanguageVariants(variants) {
		return normalizeString(selectLanguageVariant(variants, language), def)
	}

	resolved := item[fieldName+"_"+language]
	if !truthy(resolved) && language != "pt" {
		resolved = item[fieldName+"_pt"]
	}
	if !truthy(resolved) {
		resolved = fieldValue
	}
	return normalizeString(resolved, def)
}

// ResolveList resolves a localizable list field. A resolved value that is not
// a list yields an empty slice; the malformed value is discarded rather than
// reported. Elements are stringified.
func ResolveList(data any, fieldName, language string) []string {
	item, ok := data.(map[string]any)
	if !ok {
		return []string{}
	}

	fieldValue := item[fieldName]
	if variants, ok := fieldValue.(map[string]any); ok && containsLanguageVariants(variants) {
		if selected, ok := selectLanguageVariant(variants, language).([]any); ok {
			return stringifyAll(selected)
		}
	}

	resolved := item[fieldName+"_"+language]
	if !truthy(resolved) && language != "pt" {
		resolved = item[fieldName+"_pt"]
	}
	if !truthy(resolved) {
		resolved = fieldValue
	}

	values, ok := resolved.([]any)
	if !ok {
		return []string{}
	}
	return stringifyAll(values)
}

// ResolveTranslation looks up a translated label from the catalog.
//
// The legacy catalog shape keys by language at the top level
// ({pt: {section: {key: text}}}); the unified shape keys by section and key
// with per-key language maps ({section: {key: {pt: ..., en: ...}}}).
func ResolveTranslation(catalog map[string]any, language, section, key, def string) string {
	if languageScope, ok := catalog[language].(map[string]any); ok {
		sectionScope, _ := languageScope[section].(map[string]any)
		// A present key wins verbatim, even when its value is blank.
		if value, present := sectionScope[key]; present {
			return Stringify(value)
		}
		return def
	}

	sectionScope, ok := catalog[section].(map[string]any)
	if !ok {
		return def
	}

	translated := sectionScope[key]
	if variants, ok := translated.(map[string]any); ok && containsLanguageVariants(variants) {
		return normalizeString(selectLanguageVariant(variants, language), def)
	}
	return normalizeString(translated, def)
}

// FormatMonth converts a 1-12 month value into a locale-aware abbreviation.
// Unparseable or out-of-range input is returned unchanged; callers rely on
// this never failing.
func FormatMonth(rawMonth any, language string) string {
	monthNumber, ok := toInt(rawMonth)
	if !ok || monthNumber < 1 || monthNumber > 12 {
		return Stringify(rawMonth)
	}

	months, ok := monthsByLanguage[language]
	if !ok {
		months = monthsByLanguage["pt"]
	}
	return months[monthNumber-1]
}

// FormatPeriod formats a work or education period. Open-ended periods use the
// translated labels/current label, defaulting to "Present".
func FormatPeriod(startMonth, startYear, endMonth, endYear any, catalog map[string]any, language string) string {
	startPeriod := strings.TrimSpace(FormatMonth(startMonth, language) + " " + Stringify(startYear))

	if truthy(endMonth) && truthy(endYear) {
		return strings.TrimSpace(startPeriod + " - " + FormatMonth(endMonth, language) + " " + Stringify(endYear))
	}

	currentLabel := ResolveTranslation(catalog, language, "labels", "current", "Present")
	return strings.TrimSpace(startPeriod + " - " + currentLabel)
}

// EscapePreservingTags escapes markup entities while keeping the supported
// formatting tags (<b>, <i>, <u> and their closers) intact. Any other
// angle-bracketed content in user data is escaped, never interpreted.
func EscapePreservingTags(text string) string {
	protected := text
	for i, tag := range preservedTags {
		protected = strings.ReplaceAll(protected, tag, tagMarker(i))
	}

	escaped := entityEscaper.Replace(protected)

	for i, tag := range preservedTags {
		escaped = strings.ReplaceAll(escaped, tagMarker(i), tag)
	}
	return escaped
}

// EscapeAttribute escapes text for use inside a quoted attribute value.
// No formatting tags survive.
func EscapeAttribute(text string) string {
	return entityEscaper.Replace(text)
}

// ProcessRichText escapes body text and maps newlines to the document
// builder's line-break tag.
func ProcessRichText(text string) string {
	return strings.ReplaceAll(EscapePreservingTags(text), "\n", "<br/>")
}

// SanitizeFilenameComponent collapses every run of unsafe characters to a
// single underscore and trims leading/trailing dots, dashes and underscores.
// The result never contains path separators and cannot start a traversal.
// Empty results return fallback.
func SanitizeFilenameComponent(value, fallback string) string {
	sanitized := filenameSanitizer.ReplaceAllString(strings.TrimSpace(value), "_")
	sanitized = strings.Trim(sanitized, "._-")
	if sanitized == "" {
		return fallback
	}
	return sanitized
}

// Stringify renders a decoded JSON value the way it appeared in source:
// whole-number floats drop the fractional part, nil becomes empty.
func Stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	default:
		return ""
	}
}

func stringifyAll(values []any) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, Stringify(v))
	}
	return out
}

// containsLanguageVariants reports whether a map looks like a language
// variant map rather than plain nested data.
func containsLanguageVariants(value map[string]any) bool {
	for _, key := range []string{"pt", "en", "default"} {
		if _, ok := value[key]; ok {
			return true
		}
	}
	return false
}

// selectLanguageVariant picks the best variant: requested language first,
// then Portuguese, then English, then the explicit default. When nothing is
// non-empty it falls back to any present key in that order, then to any
// remaining value, then nil.
func selectLanguageVariant(variants map[string]any, language string) any {
	lookupOrder := []string{language}
	if language != "pt" {
		lookupOrder = append(lookupOrder, "pt")
	}
	if language != "en" {
		lookupOrder = append(lookupOrder, "en")
	}
	lookupOrder = append(lookupOrder, "default")

	for _, key := range lookupOrder {
		if value, ok := variants[key]; ok && isNonEmpty(value) {
			return value
		}
	}

	for _, key := range lookupOrder {
		if value, ok := variants[key]; ok {
			return value
		}
	}

	for _, key := range sortedKeys(variants) {
		return variants[key]
	}
	return nil
}

// isNonEmpty reports whether a value counts as present: non-nil, non-blank
// for strings, non-empty for lists and maps.
func isNonEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(v) != ""
	case []any:
		return len(v) > 0
	case map[string]any:
		return len(v) > 0
	default:
		return true
	}
}

// truthy mirrors the looser presence rule used by the legacy fallback chain:
// blank-after-trim strings still count, zero numbers do not.
func truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		return v != ""
	case float64:
		return v != 0
	case int:
		return v != 0
	case bool:
		return v
	case []any:
		return len(v) > 0
	case map[string]any:
		return len(v) > 0
	default:
		return true
	}
}

func normalizeString(value any, def string) string {
	if value == nil {
		return def
	}
	s, ok := value.(string)
	if !ok {
		s = Stringify(value)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	return s
}

// toInt accepts the month encodings that appear in real CV data: JSON
// numbers and numeric strings.
func toInt(value any) (int, bool) {
	switch v := value.(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	// Insertion order is lost after JSON decoding; sort for determinism.
	sort.Strings(keys)
	return keys
}
