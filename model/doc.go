// Package model is the catalogue of Gemini image models and their endpoints.
//
// Models are typed values with unexported identifiers, so only catalogued
// models (or ones created explicitly with New) reach the client:
//
//	c, err := client.New(client.Config{
//	    APIKey: os.Getenv("GEMINI_API_KEY"),
//	    Model:  model.Gemini3ProImagePreview,
//	})
//
// # Endpoints
//
// Each model maps to a REST endpoint per operation:
//
//	model.Gemini25FlashImage.URL(model.OpGenerateContent)
//	// https://generativelanguage.googleapis.com/v1beta/models/gemini-2.5-flash-image:generateContent
//
// Endpoint takes an alternative base URL, for proxies and tests.
//
// # Lookup
//
// Lookup resolves ids from configuration. Besides full ids it accepts the
// short names gemini-2.5, gemini-3, nano-banana and nano-banana-pro.
//
// # Pricing
//
// Cost estimates the price of a normalized response from its token counts:
//
//	usd := model.Gemini25FlashImage.Cost(resp)
package model
