// Package prompt composes natural-language image prompts from semantic fields.
//
// Photography and Sticker are fluent builders with named presets.
// Illustration is a single function over IllustrationParams.
//
//	p := prompt.NewPhotography().
//	    SetSubject("a red fox").
//	    ApplyPreset(prompt.PresetPortrait).
//	    Build()
//	// A photorealistic a red fox. shot with a close-up portrait. using a 85mm portrait lens. ...
//
// Presets overwrite only the fields they define, so fields set before or
// after ApplyPreset that a preset does not touch survive. Unknown preset
// names are ignored.
//
// Builders are not safe for concurrent use.
package prompt
