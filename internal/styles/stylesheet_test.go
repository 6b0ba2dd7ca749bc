package styles

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildStylesheet_AppliesDefinitionFields(t *testing.T) {
	sheet, err := BuildStylesheet(map[string]any{
		"paragraph_styles": map[string]any{
			"NameStyle": map[string]any{
				"font_name":      "Helvetica-Bold",
				"font_size":      float64(22),
				"text_color":     "#1f3850",
				"space_after":    float64(4),
				"alignment":      "CENTER",
				"keep_with_next": true,
			},
		},
	})
	require.NoError(t, err)

	style, ok := sheet.Get("NameStyle")
	require.True(t, ok)
	assert.Equal(t, "Helvetica-Bold", style.FontName)
	assert.Equal(t, 22.0, style.FontSize)
	assert.Equal(t, color.RGBA{R: 0x1f, G: 0x38, B: 0x50, A: 0xff}, style.TextColor)
	assert.Equal(t, 4.0, style.SpaceAfter)
	assert.Equal(t, AlignCenter, style.Alignment)
	assert.True(t, style.KeepWithNext)
	assert.Equal(t, "Normal", style.Parent)
}

func TestBuildStylesheet_InheritsFromParentDefinedInSameConfiguration(t *testing.T) {
	sheet, err := BuildStylesheet(map[string]any{
		"paragraph_styles": map[string]any{
			"ZBase": map[string]any{
				"font_name": "Georgia",
				"font_size": float64(11),
			},
			"ADerived": map[string]any{
				"parent":      "ZBase",
				"space_after": float64(2),
			},
		},
	})
	require.NoError(t, err)

	derived, ok := sheet.Get("ADerived")
	require.True(t, ok)
	assert.Equal(t, "Georgia", derived.FontName)
	assert.Equal(t, 11.0, derived.FontSize)
	assert.Equal(t, 2.0, derived.SpaceAfter)
	assert.Equal(t, "ZBase", derived.Parent)
}

func TestBuildStylesheet_UnknownParentFallsBackToNormal(t *testing.T) {
	sheet, err := BuildStylesheet(map[string]any{
		"paragraph_styles": map[string]any{
			"BodyStyle": map[string]any{"parent": "NoSuchStyle"},
		},
	})
	require.NoError(t, err)

	style, ok := sheet.Get("BodyStyle")
	require.True(t, ok)
	assert.Equal(t, "Helvetica", style.FontName)
}

func TestBuildStylesheet_ParentCycleResolves(t *testing.T) {
	sheet, err := BuildStylesheet(map[string]any{
		"paragraph_styles": map[string]any{
			"StyleA": map[string]any{"parent": "StyleB"},
			"StyleB": map[string]any{"parent": "StyleA"},
		},
	})
	require.NoError(t, err)

	_, okA := sheet.Get("StyleA")
	_, okB := sheet.Get("StyleB")
	assert.True(t, okA)
	assert.True(t, okB)
}

func TestBuildStylesheet_InvalidTextColorFatal(t *testing.T) {
	_, err := BuildStylesheet(map[string]any{
		"paragraph_styles": map[string]any{
			"BodyStyle": map[string]any{"text_color": "##bogus"},
		},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BodyStyle")
}

func TestBuildStylesheet_StockStyleNamesNotOverridden(t *testing.T) {
	sheet, err := BuildStylesheet(map[string]any{
		"paragraph_styles": map[string]any{
			"Normal": map[string]any{"font_size": float64(99)},
		},
	})
	require.NoError(t, err)

	normal, ok := sheet.Get("Normal")
	require.True(t, ok)
	assert.Equal(t, 10.0, normal.FontSize)
}

func TestResolveAlignment_Unrecognized(t *testing.T) {
	assert.Equal(t, AlignLeft, resolveAlignment("diagonal"))
	assert.Equal(t, AlignLeft, resolveAlignment(float64(2)))
	assert.Equal(t, AlignJustify, resolveAlignment("Justify"))
}

func TestParseColor_Formats(t *testing.T) {
	parsed, err := ParseColor("#1f3850")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0x1f, G: 0x38, B: 0x50, A: 0xff}, parsed)

	short, err := ParseColor("#abc")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0xaa, G: 0xbb, B: 0xcc, A: 0xff}, short)

	named, err := ParseColor("blue")
	require.NoError(t, err)
	assert.Equal(t, uint8(0xff), named.B)

	_, err = ParseColor("chrome-yellow-ish")
	assert.Error(t, err)
}
