package prompt

import (
	"fmt"
	"strings"
)

// Photography preset names.
const (
	PresetPortrait  = "portrait"
	PresetLandscape = "landscape"
	PresetMacro     = "macro"
	PresetStreet    = "street"
	PresetStudio    = "studio"
)

// PhotoPreset is the set of fields a photography preset overwrites.
type PhotoPreset struct {
	CameraAngle string
	LensType    string
	Lighting    string
	Mood        string
	Quality     string
}

var photoPresetOrder = []string{PresetPortrait, PresetLandscape, PresetMacro, PresetStreet, PresetStudio}

var photoPresets = map[string]PhotoPreset{
	PresetPortrait: {
		CameraAngle: "close-up portrait",
		LensType:    "85mm portrait lens",
		Lighting:    "soft, golden hour light",
		Mood:        "serene and masterful",
		Quality:     "high resolution, professional photography",
	},
	PresetLandscape: {
		CameraAngle: "wide-angle landscape shot",
		LensType:    "24-70mm wide-angle lens",
		Lighting:    "natural daylight",
		Mood:        "dramatic and breathtaking",
		Quality:     "ultra-high resolution, National Geographic style",
	},
	PresetMacro: {
		CameraAngle: "extreme close-up macro shot",
		LensType:    "100mm macro lens",
		Lighting:    "soft, diffused lighting",
		Mood:        "intimate and detailed",
		Quality:     "crystal clear, macro photography",
	},
	PresetStreet: {
		CameraAngle: "candid street photography",
		LensType:    "35mm prime lens",
		Lighting:    "natural urban lighting",
		Mood:        "authentic and raw",
		Quality:     "documentary style, black and white or color",
	},
	PresetStudio: {
		CameraAngle: "professional studio shot",
		LensType:    "50mm prime lens",
		Lighting:    "controlled studio lighting with softbox",
		Mood:        "clean and professional",
		Quality:     "commercial photography quality",
	},
}

// PhotographyPresets returns the photography preset names.
func PhotographyPresets() []string {
	return append([]string(nil), photoPresetOrder...)
}

// LookupPhotographyPreset returns the fields of the named preset.
func LookupPhotographyPreset(name string) (PhotoPreset, bool) {
	p, ok := photoPresets[name]
	return p, ok
}

// PhotoSettings is the field state of a Photography builder.
type PhotoSettings struct {
	Subject     string   `json:"subject" yaml:"subject"`
	CameraAngle string   `json:"camera_angle" yaml:"camera_angle"`
	LensType    string   `json:"lens_type" yaml:"lens_type"`
	Lighting    string   `json:"lighting" yaml:"lighting"`
	Mood        string   `json:"mood" yaml:"mood"`
	Background  string   `json:"background" yaml:"background"`
	Style       string   `json:"style" yaml:"style"`
	Quality     string   `json:"quality" yaml:"quality"`
	Details     []string `json:"details" yaml:"details"`
}

// photoFragments are emitted in this order; a fragment whose value is
// empty is skipped.
var photoFragments = []struct {
	value  func(*PhotoSettings) string
	format string
}{
	{func(s *PhotoSettings) string { return s.Subject }, "A photorealistic %s"},
	{func(s *PhotoSettings) string { return s.CameraAngle }, "shot with a %s"},
	{func(s *PhotoSettings) string { return s.LensType }, "using a %s"},
	{func(s *PhotoSettings) string { return s.Lighting }, "illuminated by %s"},
	{func(s *PhotoSettings) string { return s.Background }, "with %s in the background"},
	{func(s *PhotoSettings) string { return strings.Join(s.Details, ". ") }, "%s"},
	{func(s *PhotoSettings) string { return s.Mood }, "The overall mood is %s"},
	{func(s *PhotoSettings) string { return s.Style }, "Style: %s"},
	{func(s *PhotoSettings) string { return s.Quality }, "Quality: %s"},
}

// Photography builds photorealistic prompts in photographic vocabulary.
// All fields start empty; an empty subject is not an error.
type Photography struct {
	s PhotoSettings
}

// NewPhotography creates an empty photography builder.
func NewPhotography() *Photography {
	return &Photography{}
}

func (b *Photography) SetSubject(v string) *Photography     { b.s.Subject = v; return b }
func (b *Photography) SetCameraAngle(v string) *Photography { b.s.CameraAngle = v; return b }
func (b *Photography) SetLensType(v string) *Photography    { b.s.LensType = v; return b }
func (b *Photography) SetLighting(v string) *Photography    { b.s.Lighting = v; return b }
func (b *Photography) SetMood(v string) *Photography        { b.s.Mood = v; return b }
func (b *Photography) SetBackground(v string) *Photography  { b.s.Background = v; return b }
func (b *Photography) SetStyle(v string) *Photography       { b.s.Style = v; return b }
func (b *Photography) SetQuality(v string) *Photography     { b.s.Quality = v; return b }

// AddDetail appends a free-form detail. Details are never deduplicated.
func (b *Photography) AddDetail(detail string) *Photography {
	b.s.Details = append(b.s.Details, detail)
	return b
}

// ApplyPreset overwrites camera angle, lens, lighting, mood and quality
// with the named preset. Unknown names are ignored.
func (b *Photography) ApplyPreset(name string) *Photography {
	p, ok := photoPresets[name]
	if !ok {
		return b
	}
	b.s.CameraAngle = p.CameraAngle
	b.s.LensType = p.LensType
	b.s.Lighting = p.Lighting
	b.s.Mood = p.Mood
	b.s.Quality = p.Quality
	return b
}

// Reset clears every field.
func (b *Photography) Reset() *Photography {
	b.s = PhotoSettings{}
	return b
}

// Settings returns a copy of the current fields.
func (b *Photography) Settings() PhotoSettings {
	s := b.s
	s.Details = append([]string(nil), b.s.Details...)
	return s
}

// Build joins the non-empty fragments with ". " and ends the prompt with a period.
func (b *Photography) Build() string {
	parts := make([]string, 0, len(photoFragments))
	for _, f := range photoFragments {
		if v := f.value(&b.s); v != "" {
			parts = append(parts, fmt.Sprintf(f.format, v))
		}
	}
	return strings.Join(parts, ". ") + "."
}

// PhotoParams are optional overrides for a photography prompt.
// Empty fields are left alone; Preset is applied last.
type PhotoParams struct {
	CameraAngle string   `json:"camera_angle,omitempty" yaml:"camera_angle,omitempty"`
	LensType    string   `json:"lens_type,omitempty" yaml:"lens_type,omitempty"`
	Lighting    string   `json:"lighting,omitempty" yaml:"lighting,omitempty"`
	Mood        string   `json:"mood,omitempty" yaml:"mood,omitempty"`
	Background  string   `json:"background,omitempty" yaml:"background,omitempty"`
	Style       string   `json:"style,omitempty" yaml:"style,omitempty"`
	Quality     string   `json:"quality,omitempty" yaml:"quality,omitempty"`
	Details     []string `json:"details,omitempty" yaml:"details,omitempty"`
	Preset      string   `json:"preset,omitempty" yaml:"preset,omitempty"`
}

// Apply sets the non-empty params on b, then applies the preset.
func (p PhotoParams) Apply(b *Photography) *Photography {
	setIf(p.CameraAngle, func(v string) { b.SetCameraAngle(v) })
	setIf(p.LensType, func(v string) { b.SetLensType(v) })
	setIf(p.Lighting, func(v string) { b.SetLighting(v) })
	setIf(p.Mood, func(v string) { b.SetMood(v) })
	setIf(p.Background, func(v string) { b.SetBackground(v) })
	setIf(p.Style, func(v string) { b.SetStyle(v) })
	for _, d := range p.Details {
		b.AddDetail(d)
	}
	setIf(p.Quality, func(v string) { b.SetQuality(v) })
	setIf(p.Preset, func(v string) { b.ApplyPreset(v) })
	return b
}

// Photo builds a photography prompt for subject with params applied.
func Photo(subject string, params PhotoParams) string {
	return params.Apply(NewPhotography().SetSubject(subject)).Build()
}

func setIf(v string, set func(string)) {
	if v != "" {
		set(v)
	}
}
