package template

// Keys of the built-in templates registered by RegisterDefaults.
const (
	SalesPromotionKey = "sales_promotion"
	SimpleProductKey  = "simple_product"
)

const salesPromotionBody = `A vibrant summer sales promotional banner featuring fireworks in the background. 
The composition includes:

Main Elements:
- Spectacular fireworks display in the night sky with vivid colors ({{fireworks_colors}})
- {{product_name}} prominently displayed in the center-right area
- Energetic, festival-like atmosphere

Text Overlays (in Japanese style):
- Main campaign period: "{{campaign_date}}まで" in orange banner (top-left)
- Campaign tagline: "{{campaign_slogan}}" 
- Large bold headline: "{{main_headline}}" in white text
- Vertical text on the left: "{{vertical_text_1}}{{vertical_text_2}}{{vertical_text_3}}"
- Brand logo "{{brand_name}}" in red vertical banner (right edge)
- Product specifications: "{{product_specs}}"
- Secondary product mention: "{{secondary_product}}" in top-right
- Call-to-action: "今すぐ{{brand_name}}公式サイトへ" in red banner with arrows (bottom)

Visual Style:
- Photorealistic product rendering
- Festival/celebration atmosphere with bokeh effects
- Dark blue/purple gradient background
- High contrast between text and background
- Professional advertising photography style
- Dynamic composition with diagonal elements

Color Scheme:
- Deep blue/purple night sky
- Vibrant orange/yellow text boxes
- Bright red accent elements
- Colorful firework bursts`

const simpleProductBody = `A clean and professional product showcase image.

Main Elements:
- {{product_name}} as the central focus
- {{background_style}} background
- Professional studio lighting

Product Details:
- Product: {{product_name}}
- Key Feature: {{key_feature}}
- Brand: {{brand_name}}

Visual Style:
- {{visual_style}}
- High-resolution product photography
- Minimalist composition
- Professional color grading

Color Scheme:
- {{color_scheme}}`

// SalesPromotion is a summer sale banner with a fireworks background.
func SalesPromotion() PromptTemplate {
	return NewDefinition(
		"Sales Promotion Banner",
		"花火背景の販促バナー用テンプレート",
		salesPromotionBody,
		[]Variable{
			{"campaign_date", "8/28"},
			{"campaign_slogan", "この夏、決断を！"},
			{"main_headline", "買い替え応援サマーセール"},
			{"product_name", "ThinkPad X1 Carbon Gen 13"},
			{"product_specs", "インテル® Core™ Ultra 7プロセッサー"},
			{"brand_name", "Lenovo"},
			{"fireworks_colors", "pink, blue, orange, and golden"},
			{"secondary_product", "Lenovo IdeaCentre Mini Q WARRIOR"},
			{"vertical_text_1", "あなたに"},
			{"vertical_text_2", "3大特典を"},
			{"vertical_text_3", "お見逃しなく"},
		},
		"campaign_date", "main_headline", "product_name", "brand_name",
	)
}

// SimpleProduct is a studio-style product showcase.
func SimpleProduct() PromptTemplate {
	return NewDefinition(
		"Simple Product Showcase",
		"シンプルな商品紹介用テンプレート",
		simpleProductBody,
		[]Variable{
			{"product_name", "Product Name"},
			{"background_style", "Pure white"},
			{"key_feature", "Premium Quality"},
			{"brand_name", "Brand"},
			{"visual_style", "Modern and clean"},
			{"color_scheme", "Neutral tones with accent colors"},
		},
		"product_name", "brand_name",
	)
}

// RegisterDefaults registers the built-in templates on r.
func RegisterDefaults(r *Registry) {
	r.Register(SalesPromotionKey, SalesPromotion)
	r.Register(SimpleProductKey, SimpleProduct)
}

// NewDefaultRegistry returns a registry holding the built-in templates.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	RegisterDefaults(r)
	return r
}
