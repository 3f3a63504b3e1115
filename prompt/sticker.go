package prompt

import (
	"strings"

	ai "github.com/spetersoncode/nanobanana"
)

// Sticker preset names.
const (
	PresetKawaii       = "kawaii"
	PresetMinimalist   = "minimalist"
	PresetVintage      = "vintage"
	PresetProfessional = "professional"
	PresetPlayful      = "playful"
)

// StickerPreset is the set of fields a sticker preset overwrites.
type StickerPreset struct {
	Style        string
	Background   string
	Outline      string
	Shading      string
	ColorPalette string
	Mood         string
}

var stickerPresetOrder = []string{PresetKawaii, PresetMinimalist, PresetVintage, PresetProfessional, PresetPlayful}

var stickerPresets = map[string]StickerPreset{
	PresetKawaii:       {Style: "kawaii", Background: "transparent", Outline: "bold", Shading: "cel-shading", ColorPalette: "vibrant", Mood: "cute"},
	PresetMinimalist:   {Style: "minimalist", Background: "transparent", Outline: "thin", Shading: "flat", ColorPalette: "monochrome", Mood: "serious"},
	PresetVintage:      {Style: "vintage", Background: "transparent", Outline: "medium", Shading: "soft", ColorPalette: "earth-tone", Mood: "serious"},
	PresetProfessional: {Style: "minimalist", Background: "transparent", Outline: "medium", Shading: "flat", ColorPalette: "monochrome", Mood: "serious"},
	PresetPlayful:      {Style: "cartoon", Background: "transparent", Outline: "bold", Shading: "cel-shading", ColorPalette: "vibrant", Mood: "playful"},
}

// StickerPresets returns the sticker preset names.
func StickerPresets() []string {
	return append([]string(nil), stickerPresetOrder...)
}

// LookupStickerPreset returns the fields of the named preset.
func LookupStickerPreset(name string) (StickerPreset, bool) {
	p, ok := stickerPresets[name]
	return p, ok
}

// OutlineNone disables outlines.
const OutlineNone = "none"

var stickerStyleLines = map[string]string{
	"kawaii":     "The design features cute, rounded features with big expressive eyes.",
	"minimalist": "The design features clean, simple lines with minimal details.",
	"vintage":    "The design features retro styling with classic color schemes.",
	"cartoon":    "The design features cartoon-style with simplified but expressive design.",
	"anime":      "The design features anime/manga art style with detailed character design.",
}

var stickerBackgroundLines = map[string]string{
	"transparent": "The background must be transparent.",
	"white":       "The background should be white.",
	"color":       "The background should be a solid color that complements the subject.",
	"gradient":    "The background should be a subtle gradient.",
}

// StickerSettings is the field state of a Sticker builder.
type StickerSettings struct {
	Subject      string   `json:"subject" yaml:"subject"`
	Style        string   `json:"style" yaml:"style"`
	Background   string   `json:"background" yaml:"background"`
	Outline      string   `json:"outline" yaml:"outline"`
	Shading      string   `json:"shading" yaml:"shading"`
	ColorPalette string   `json:"color_palette" yaml:"color_palette"`
	Size         string   `json:"size" yaml:"size"`
	Mood         string   `json:"mood" yaml:"mood"`
	Details      []string `json:"details" yaml:"details"`
}

func defaultStickerSettings() StickerSettings {
	return StickerSettings{
		Style:        "kawaii",
		Background:   "transparent",
		Outline:      "bold",
		Shading:      "cel-shading",
		ColorPalette: "vibrant",
		Size:         "medium",
		Mood:         "cheerful",
	}
}

// stickerSentences are emitted in this order; an empty sentence is skipped.
var stickerSentences = []func(*StickerSettings) string{
	func(s *StickerSettings) string { return "A " + s.Style + "-style sticker of " + s.Subject + "." },
	func(s *StickerSettings) string { return stickerStyleLines[s.Style] },
	func(s *StickerSettings) string { return "The overall mood should be " + s.Mood + "." },
	func(s *StickerSettings) string {
		if s.Outline == OutlineNone {
			return "It has " + s.Shading + " without outlines."
		}
		return "It has " + s.Outline + ", clean outlines and " + s.Shading + "."
	},
	func(s *StickerSettings) string { return "Use a " + s.ColorPalette + " color palette." },
	func(s *StickerSettings) string { return stickerBackgroundLines[s.Background] },
	func(s *StickerSettings) string {
		return "The sticker should be " + s.Size + " size and suitable for use as a digital sticker, icon, or asset."
	},
	func(s *StickerSettings) string {
		if len(s.Details) == 0 {
			return ""
		}
		return "Additional details: " + strings.Join(s.Details, ", ") + "."
	},
}

// Sticker builds sticker and icon prompts. Build requires a subject.
type Sticker struct {
	s StickerSettings
}

// NewSticker creates a sticker builder with the kawaii defaults.
func NewSticker() *Sticker {
	return &Sticker{s: defaultStickerSettings()}
}

func (b *Sticker) SetSubject(v string) *Sticker      { b.s.Subject = v; return b }
func (b *Sticker) SetStyle(v string) *Sticker        { b.s.Style = v; return b }
func (b *Sticker) SetBackground(v string) *Sticker   { b.s.Background = v; return b }
func (b *Sticker) SetOutline(v string) *Sticker      { b.s.Outline = v; return b }
func (b *Sticker) SetShading(v string) *Sticker      { b.s.Shading = v; return b }
func (b *Sticker) SetColorPalette(v string) *Sticker { b.s.ColorPalette = v; return b }
func (b *Sticker) SetSize(v string) *Sticker         { b.s.Size = v; return b }
func (b *Sticker) SetMood(v string) *Sticker         { b.s.Mood = v; return b }

// AddDetail appends a free-form detail.
func (b *Sticker) AddDetail(detail string) *Sticker {
	b.s.Details = append(b.s.Details, detail)
	return b
}

// SetDetails replaces all details.
func (b *Sticker) SetDetails(details []string) *Sticker {
	b.s.Details = append([]string(nil), details...)
	return b
}

// ApplyPreset overwrites style, background, outline, shading, palette and
// mood with the named preset. Unknown names are ignored.
func (b *Sticker) ApplyPreset(name string) *Sticker {
	p, ok := stickerPresets[name]
	if !ok {
		return b
	}
	b.s.Style = p.Style
	b.s.Background = p.Background
	b.s.Outline = p.Outline
	b.s.Shading = p.Shading
	b.s.ColorPalette = p.ColorPalette
	b.s.Mood = p.Mood
	return b
}

// Reset restores the defaults and clears subject and details.
func (b *Sticker) Reset() *Sticker {
	b.s = defaultStickerSettings()
	return b
}

// Settings returns a copy of the current fields.
func (b *Sticker) Settings() StickerSettings {
	s := b.s
	s.Details = append([]string(nil), b.s.Details...)
	return s
}

// Build composes the prompt. It returns *ai.MissingSubjectError when no
// subject is set.
func (b *Sticker) Build() (string, error) {
	if b.s.Subject == "" {
		return "", &ai.MissingSubjectError{Builder: "sticker"}
	}
	parts := make([]string, 0, len(stickerSentences))
	for _, sentence := range stickerSentences {
		if v := sentence(&b.s); v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " "), nil
}

// StickerParams are optional overrides for a sticker prompt.
// Empty fields are left alone; Preset is applied last.
type StickerParams struct {
	Style        string   `json:"style,omitempty" yaml:"style,omitempty"`
	Background   string   `json:"background,omitempty" yaml:"background,omitempty"`
	Outline      string   `json:"outline,omitempty" yaml:"outline,omitempty"`
	Shading      string   `json:"shading,omitempty" yaml:"shading,omitempty"`
	ColorPalette string   `json:"color_palette,omitempty" yaml:"color_palette,omitempty"`
	Size         string   `json:"size,omitempty" yaml:"size,omitempty"`
	Mood         string   `json:"mood,omitempty" yaml:"mood,omitempty"`
	Details      []string `json:"details,omitempty" yaml:"details,omitempty"`
	Preset       string   `json:"preset,omitempty" yaml:"preset,omitempty"`
}

// Apply sets the non-empty params on b, then applies the preset.
func (p StickerParams) Apply(b *Sticker) *Sticker {
	setIf(p.Style, func(v string) { b.SetStyle(v) })
	setIf(p.Background, func(v string) { b.SetBackground(v) })
	setIf(p.Outline, func(v string) { b.SetOutline(v) })
	setIf(p.Shading, func(v string) { b.SetShading(v) })
	setIf(p.ColorPalette, func(v string) { b.SetColorPalette(v) })
	setIf(p.Size, func(v string) { b.SetSize(v) })
	setIf(p.Mood, func(v string) { b.SetMood(v) })
	for _, d := range p.Details {
		b.AddDetail(d)
	}
	setIf(p.Preset, func(v string) { b.ApplyPreset(v) })
	return b
}

// StickerPrompt builds a sticker prompt for subject with params applied.
func StickerPrompt(subject string, params StickerParams) (string, error) {
	return params.Apply(NewSticker().SetSubject(subject)).Build()
}
