package fluentexcel

import "testing"

func TestExcelizeStyleTranslation(t *testing.T) {
	locked := true
	tmpl := &StyleTemplate{
		Font:         &FontTemplate{Bold: true, Color: "#FF0000"},
		Fill:         &FillTemplate{Color: "E0E0E0"},
		Alignment:    &AlignmentTemplate{Horizontal: "center", Vertical: "top"},
		Locked:       &locked,
		NumberFormat: "0.00",
	}

	style := tmpl.ExcelizeStyle()
	if style.Font == nil || !style.Font.Bold || style.Font.Color != "FF0000" {
		t.Errorf("unexpected font: %+v", style.Font)
	}
	if len(style.Fill.Color) != 1 || style.Fill.Color[0] != "E0E0E0" || style.Fill.Pattern != 1 {
		t.Errorf("unexpected fill: %+v", style.Fill)
	}
	if style.Alignment == nil || style.Alignment.Horizontal != "center" {
		t.Errorf("unexpected alignment: %+v", style.Alignment)
	}
	if style.Protection == nil || !style.Protection.Locked {
		t.Errorf("unexpected protection: %+v", style.Protection)
	}
	if style.CustomNumFmt == nil || *style.CustomNumFmt != "0.00" {
		t.Errorf("unexpected number format: %+v", style.CustomNumFmt)
	}

	var nilTmpl *StyleTemplate
	if nilTmpl.ExcelizeStyle() != nil {
		t.Error("expected nil style for nil template")
	}
}

func TestStyleMergeDefaults(t *testing.T) {
	defaults := &StyleTemplate{
		Font:      &FontTemplate{Bold: true},
		Alignment: &AlignmentTemplate{Horizontal: "center"},
	}

	merged := (&StyleTemplate{Fill: &FillTemplate{Color: "FFFF00"}}).Merge(defaults)
	if merged.Font == nil || !merged.Font.Bold {
		t.Errorf("expected default font applied, got %+v", merged.Font)
	}
	if merged.Fill == nil || merged.Fill.Color != "FFFF00" {
		t.Errorf("expected own fill kept, got %+v", merged.Fill)
	}
	if merged.Alignment == nil || merged.Alignment.Horizontal != "center" {
		t.Errorf("expected default alignment applied, got %+v", merged.Alignment)
	}

	var nilTmpl *StyleTemplate
	merged = nilTmpl.Merge(defaults)
	if merged.Font == nil || !merged.Font.Bold {
		t.Errorf("expected copy of defaults, got %+v", merged)
	}
}

func TestStyleMergeAutoGraysLockedCells(t *testing.T) {
	locked := true
	merged := (&StyleTemplate{Locked: &locked}).Merge(nil)
	if merged.Fill == nil || merged.Fill.Color != DefaultLockedColor {
		t.Errorf("expected locked gray fill, got %+v", merged.Fill)
	}

	// Explicit fill is not overridden.
	merged = (&StyleTemplate{Locked: &locked, Fill: &FillTemplate{Color: "00FF00"}}).Merge(nil)
	if merged.Fill.Color != "00FF00" {
		t.Errorf("expected explicit fill kept, got %+v", merged.Fill)
	}
}

func TestStyleCacheReusesTranslations(t *testing.T) {
	cache := NewStyleCache()
	a := &StyleTemplate{Font: &FontTemplate{Bold: true}}
	b := &StyleTemplate{Font: &FontTemplate{Bold: true}}

	first := cache.Style(a)
	second := cache.Style(b)
	if first != second {
		t.Error("expected equivalent templates to share one translation")
	}

	other := cache.Style(&StyleTemplate{Font: &FontTemplate{Bold: false}})
	if other == first {
		t.Error("expected distinct templates to translate separately")
	}

	if cache.Style(nil) != nil {
		t.Error("expected nil style for nil template")
	}
}
