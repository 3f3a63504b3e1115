// Package template renders prompts from templates with {{key}} placeholders.
//
// A Registry maps keys to template factories. Registries are plain values
// created with NewRegistry or NewDefaultRegistry and passed where needed:
//
//	reg := template.NewDefaultRegistry()
//	gen, err := reg.NewGenerator(template.SalesPromotionKey)
//	if err != nil {
//	    return err // *nanobanana.UnknownTemplateError
//	}
//	prompt, err := gen.
//	    SetVariable("main_headline", "Sale").
//	    SetVariable("brand_name", "Acme").
//	    Generate()
//
// Generate fails with *nanobanana.MissingVariablesError while any required
// variable is unset or empty.
package template
