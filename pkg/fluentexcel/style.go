package fluentexcel

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Light Gray fill for locked cells.
const DefaultLockedColor = "E0E0E0"

// StyleTemplate defines presentation metadata for write operations. It is
// translated into the engine's native style descriptor; applying styles to
// cells belongs to the consuming engine.
type StyleTemplate struct {
	Font         *FontTemplate      `yaml:"font"`
	Fill         *FillTemplate      `yaml:"fill"`
	Alignment    *AlignmentTemplate `yaml:"alignment"`
	Locked       *bool              `yaml:"locked"`
	NumberFormat string             `yaml:"number_format"`
}

type FontTemplate struct {
	Bold  bool   `yaml:"bold"`
	Color string `yaml:"color"` // Hex color
}

type FillTemplate struct {
	Color string `yaml:"color"` // Hex color
}

type AlignmentTemplate struct {
	Horizontal string `yaml:"horizontal"` // center, left, right
	Vertical   string `yaml:"vertical"`   // top, center, bottom
}

// Merge fills gaps in t from defaults and returns the merged template.
// t itself is not modified; a nil t yields a copy of defaults.
func (t *StyleTemplate) Merge(defaults *StyleTemplate) *StyleTemplate {
	s := &StyleTemplate{}
	if t == nil {
		if defaults != nil {
			*s = *defaults
		}
		return s
	}
	*s = *t
	if defaults != nil {
		if s.Font == nil {
			s.Font = defaults.Font
		}
		if s.Fill == nil {
			s.Fill = defaults.Fill
		}
		if s.Alignment == nil {
			s.Alignment = defaults.Alignment
		}
		if s.Locked == nil {
			s.Locked = defaults.Locked
		}
		if s.NumberFormat == "" {
			s.NumberFormat = defaults.NumberFormat
		}
	}
	// Auto-gray locked cells if no fill is explicitly set
	if s.Locked != nil && *s.Locked && s.Fill == nil {
		s.Fill = &FillTemplate{Color: DefaultLockedColor}
	}
	return s
}

// ExcelizeStyle translates the template into the excelize descriptor the
// consuming engine registers with the workbook.
func (t *StyleTemplate) ExcelizeStyle() *excelize.Style {
	if t == nil {
		return nil
	}
	style := &excelize.Style{}
	if t.Font != nil {
		style.Font = &excelize.Font{
			Bold:  t.Font.Bold,
			Color: strings.TrimPrefix(t.Font.Color, "#"),
		}
	}
	if t.Fill != nil {
		style.Fill = excelize.Fill{
			Type:    "pattern",
			Color:   []string{strings.TrimPrefix(t.Fill.Color, "#")},
			Pattern: 1,
		}
	}
	if t.Alignment != nil {
		style.Alignment = &excelize.Alignment{
			Horizontal: t.Alignment.Horizontal,
			Vertical:   t.Alignment.Vertical,
		}
	}
	if t.Locked != nil {
		style.Protection = &excelize.Protection{
			Locked: *t.Locked,
		}
	}
	if t.NumberFormat != "" {
		style.CustomNumFmt = &t.NumberFormat
	}
	return style
}

// key returns a stable identity for caching equivalent templates.
func (t *StyleTemplate) key() string {
	if t == nil {
		return ""
	}
	var sb strings.Builder
	if t.Font != nil {
		fmt.Fprintf(&sb, "f:%v:%s|", t.Font.Bold, t.Font.Color)
	}
	if t.Fill != nil {
		fmt.Fprintf(&sb, "i:%s|", t.Fill.Color)
	}
	if t.Alignment != nil {
		fmt.Fprintf(&sb, "a:%s:%s|", t.Alignment.Horizontal, t.Alignment.Vertical)
	}
	if t.Locked != nil {
		fmt.Fprintf(&sb, "l:%v|", *t.Locked)
	}
	if t.NumberFormat != "" {
		fmt.Fprintf(&sb, "n:%s|", t.NumberFormat)
	}
	return sb.String()
}

// StyleCache deduplicates translated styles by template identity so the
// engine registers each distinct style once per workbook.
type StyleCache struct {
	styles map[string]*excelize.Style
}

func NewStyleCache() *StyleCache {
	return &StyleCache{styles: make(map[string]*excelize.Style)}
}

// Style returns the translated descriptor for tmpl, reusing a previous
// translation when an equivalent template was seen before.
func (c *StyleCache) Style(tmpl *StyleTemplate) *excelize.Style {
	if tmpl == nil {
		return nil
	}
	k := tmpl.key()
	if s, ok := c.styles[k]; ok {
		return s
	}
	s := tmpl.ExcelizeStyle()
	c.styles[k] = s
	return s
}
