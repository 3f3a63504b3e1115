package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ai "github.com/spetersoncode/nanobanana"
)

func stub(name string) Factory {
	return func() PromptTemplate {
		return NewDefinition(name, "", "{{x}}", []Variable{{"x", "1"}})
	}
}

func TestRegistryCreate(t *testing.T) {
	r := NewRegistry()
	r.Register("a", stub("A"))

	tpl, err := r.Create("a")
	require.NoError(t, err)
	assert.Equal(t, "A", tpl.Name())

	_, err = r.Create("missing")
	var unknown *ai.UnknownTemplateError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "missing", unknown.Key)
	assert.Equal(t, []string{"a"}, unknown.Available)
	assert.ErrorIs(t, err, ai.ErrUnknownTemplate)
}

func TestRegistryKeysInRegistrationOrder(t *testing.T) {
	r := NewRegistry()
	r.Register("zeta", stub("Z"))
	r.Register("alpha", stub("A"))
	r.Register("mid", stub("M"))

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, r.Keys())
}

func TestRegistryLastRegistrationWins(t *testing.T) {
	r := NewRegistry()
	r.Register("a", stub("first"))
	r.Register("b", stub("B"))
	r.Register("a", stub("second"))

	tpl, err := r.Create("a")
	require.NoError(t, err)
	assert.Equal(t, "second", tpl.Name())
	assert.Equal(t, []string{"a", "b"}, r.Keys())
}

func TestRegistryClear(t *testing.T) {
	r := NewDefaultRegistry()
	require.True(t, r.Has(SalesPromotionKey))

	r.Clear()
	assert.Empty(t, r.Keys())
	assert.False(t, r.Has(SalesPromotionKey))

	_, err := r.Create(SalesPromotionKey)
	assert.EqualError(t, err, `template "sales_promotion" not found (no templates registered)`)
}

func TestRegistriesAreIndependent(t *testing.T) {
	a := NewDefaultRegistry()
	b := NewRegistry()
	b.Register("custom", stub("C"))

	assert.Equal(t, []string{SalesPromotionKey, SimpleProductKey}, a.Keys())
	assert.Equal(t, []string{"custom"}, b.Keys())
}

func TestRegistryCreateReturnsFreshInstances(t *testing.T) {
	r := NewDefaultRegistry()
	g1, err := r.NewGenerator(SimpleProductKey)
	require.NoError(t, err)
	g1.SetVariable("brand_name", "Changed")

	g2, err := r.NewGenerator(SimpleProductKey)
	require.NoError(t, err)
	v, _ := g2.Variable("brand_name")
	assert.Equal(t, "Brand", v)
}

func TestRegistryZeroValue(t *testing.T) {
	var r Registry
	assert.Empty(t, r.Keys())
	assert.False(t, r.Has("a"))

	_, err := r.Create("a")
	assert.ErrorIs(t, err, ai.ErrUnknownTemplate)

	r.Register("a", stub("A"))
	tmpl, err := r.Create("a")
	require.NoError(t, err)
	assert.Equal(t, "A", tmpl.Name())
	assert.Equal(t, []string{"a"}, r.Keys())
}

func TestRegistryRejectsNilFactory(t *testing.T) {
	r := NewRegistry()
	assert.Panics(t, func() { r.Register("broken", nil) })
	assert.False(t, r.Has("broken"))
}
