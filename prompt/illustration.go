package prompt

import "strings"

// IllustrationParams select the illustration style. Empty fields take the
// defaults: style anime, background detailed, quality high, mood cheerful,
// composition balanced.
type IllustrationParams struct {
	Style       string `json:"style,omitempty" yaml:"style,omitempty"`
	Background  string `json:"background,omitempty" yaml:"background,omitempty"`
	Quality     string `json:"quality,omitempty" yaml:"quality,omitempty"`
	Mood        string `json:"mood,omitempty" yaml:"mood,omitempty"`
	Composition string `json:"composition,omitempty" yaml:"composition,omitempty"`
}

// WithDefaults returns p with empty fields filled in.
func (p IllustrationParams) WithDefaults() IllustrationParams {
	if p.Style == "" {
		p.Style = "anime"
	}
	if p.Background == "" {
		p.Background = "detailed"
	}
	if p.Quality == "" {
		p.Quality = "high"
	}
	if p.Mood == "" {
		p.Mood = "cheerful"
	}
	if p.Composition == "" {
		p.Composition = "balanced"
	}
	return p
}

var illustrationStyleLines = map[string]string{
	"anime":      "The illustration features anime/manga art style with detailed character design.",
	"realistic":  "The illustration features realistic art style with detailed textures and lighting.",
	"cartoon":    "The illustration features cartoon art style with simplified but expressive design.",
	"watercolor": "The illustration features watercolor art style with soft, flowing colors.",
}

// Illustration composes an illustration prompt for subject.
func Illustration(subject string, params IllustrationParams) string {
	p := params.WithDefaults()

	parts := []string{"A " + p.Quality + " quality " + p.Style + "-style illustration of " + subject + "."}
	if line, ok := illustrationStyleLines[p.Style]; ok {
		parts = append(parts, line)
	}
	parts = append(parts, "The overall mood should be "+p.Mood+".")

	switch p.Background {
	case "transparent":
		parts = append(parts, "The background must be transparent.")
	case "detailed":
		parts = append(parts, "Include a detailed, atmospheric background that complements the subject.")
	default:
		parts = append(parts, "The background should be "+p.Background+".")
	}

	parts = append(parts, "Use a "+p.Composition+" composition with good visual balance.")
	if p.Quality == "high" {
		parts = append(parts, "The illustration should be highly detailed with professional quality rendering.")
	}
	parts = append(parts, "This should be suitable for use as a digital illustration, artwork, or visual asset.")

	return strings.Join(parts, " ")
}
