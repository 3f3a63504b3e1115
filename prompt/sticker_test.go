package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ai "github.com/spetersoncode/nanobanana"
)

func TestStickerRequiresSubject(t *testing.T) {
	_, err := NewSticker().Build()
	var ms *ai.MissingSubjectError
	require.ErrorAs(t, err, &ms)
	assert.Equal(t, "sticker", ms.Builder)
	assert.ErrorIs(t, err, ai.ErrMissingSubject)

	for _, preset := range StickerPresets() {
		_, err := NewSticker().ApplyPreset(preset).Build()
		assert.ErrorIs(t, err, ai.ErrMissingSubject, preset)

		_, err = NewSticker().ApplyPreset(preset).SetSubject("a cat").Build()
		assert.NoError(t, err, preset)
	}
}

func TestStickerDefaults(t *testing.T) {
	out, err := NewSticker().SetSubject("a cat").Build()
	require.NoError(t, err)

	assert.Equal(t,
		"A kawaii-style sticker of a cat. "+
			"The design features cute, rounded features with big expressive eyes. "+
			"The overall mood should be cheerful. "+
			"It has bold, clean outlines and cel-shading. "+
			"Use a vibrant color palette. "+
			"The background must be transparent. "+
			"The sticker should be medium size and suitable for use as a digital sticker, icon, or asset.",
		out)
}

func TestStickerVariants(t *testing.T) {
	tests := []struct {
		name     string
		build    func(*Sticker) *Sticker
		contains []string
		excludes []string
	}{
		{
			name:     "no outline",
			build:    func(b *Sticker) *Sticker { return b.SetOutline(OutlineNone).SetShading("flat") },
			contains: []string{"It has flat without outlines."},
			excludes: []string{"clean outlines"},
		},
		{
			name:     "white background",
			build:    func(b *Sticker) *Sticker { return b.SetBackground("white") },
			contains: []string{"The background should be white."},
		},
		{
			name:     "gradient background",
			build:    func(b *Sticker) *Sticker { return b.SetBackground("gradient") },
			contains: []string{"The background should be a subtle gradient."},
		},
		{
			name:     "unknown background adds nothing",
			build:    func(b *Sticker) *Sticker { return b.SetBackground("plaid") },
			excludes: []string{"The background"},
		},
		{
			name:     "anime style line",
			build:    func(b *Sticker) *Sticker { return b.SetStyle("anime") },
			contains: []string{"A anime-style sticker of", "anime/manga art style"},
		},
		{
			name:     "unknown style has no style line",
			build:    func(b *Sticker) *Sticker { return b.SetStyle("pixel") },
			contains: []string{"A pixel-style sticker of a cat. The overall mood"},
		},
		{
			name:     "details joined with commas",
			build:    func(b *Sticker) *Sticker { return b.AddDetail("a hat").AddDetail("a bow") },
			contains: []string{"Additional details: a hat, a bow."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := tt.build(NewSticker().SetSubject("a cat")).Build()
			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, out, s)
			}
			assert.Equal(t, '.', rune(out[len(out)-1]))
		})
	}
}

func TestStickerPresets(t *testing.T) {
	t.Run("idempotent and keeps untouched fields", func(t *testing.T) {
		for _, name := range StickerPresets() {
			b := NewSticker().SetSubject("dog").SetSize("large").AddDetail("smile")
			once := b.ApplyPreset(name).Settings()
			twice := b.ApplyPreset(name).Settings()
			assert.Equal(t, once, twice, name)
			assert.Equal(t, "large", once.Size)
			assert.Equal(t, []string{"smile"}, once.Details)
		}
	})

	t.Run("professional maps to minimalist style", func(t *testing.T) {
		s := NewSticker().ApplyPreset(PresetProfessional).Settings()
		p, _ := LookupStickerPreset(PresetProfessional)
		assert.Equal(t, "minimalist", s.Style)
		assert.Equal(t, p.Outline, s.Outline)
		assert.Equal(t, "serious", s.Mood)
	})

	t.Run("unknown preset is ignored", func(t *testing.T) {
		b := NewSticker().SetStyle("anime")
		b.ApplyPreset("retro-wave")
		assert.Equal(t, "anime", b.Settings().Style)
	})
}

func TestStickerResetAndSetDetails(t *testing.T) {
	b := NewSticker().SetSubject("x").ApplyPreset(PresetVintage).SetDetails([]string{"a", "b"})
	assert.Equal(t, []string{"a", "b"}, b.Settings().Details)

	b.SetDetails(nil)
	assert.Empty(t, b.Settings().Details)

	b.Reset()
	assert.Equal(t, NewSticker().Settings(), b.Settings())
	assert.Equal(t, "cheerful", b.Settings().Mood)
	assert.Equal(t, "", b.Settings().Subject)
}

func TestStickerParams(t *testing.T) {
	out, err := StickerPrompt("a robot", StickerParams{
		Style:   "anime",
		Size:    "small",
		Details: []string{"antenna"},
		Preset:  PresetPlayful,
	})
	require.NoError(t, err)
	assert.Contains(t, out, "A cartoon-style sticker of a robot.")
	assert.Contains(t, out, "The sticker should be small size")
	assert.Contains(t, out, "The overall mood should be playful.")
	assert.Contains(t, out, "Additional details: antenna.")

	_, err = StickerPrompt("", StickerParams{Preset: PresetKawaii})
	assert.ErrorIs(t, err, ai.ErrMissingSubject)
}
