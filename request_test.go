package nanobanana

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequest(t *testing.T) {
	t.Run("text only", func(t *testing.T) {
		body, err := json.Marshal(NewRequest("a banana"))
		require.NoError(t, err)
		assert.JSONEq(t, `{"contents":[{"parts":[{"text":"a banana"}]}]}`, string(body))
	})

	t.Run("inline images are siblings of the text part", func(t *testing.T) {
		req := NewRequest("edit this",
			ImageInput{MimeType: "image/png", Data: []byte("abc")},
			ImageInput{MimeType: "image/jpeg", Data: []byte("xyz")},
		)
		body, err := json.Marshal(req)
		require.NoError(t, err)
		assert.JSONEq(t, `{"contents":[{"parts":[
			{"text":"edit this"},
			{"inline_data":{"mime_type":"image/png","data":"YWJj"}},
			{"inline_data":{"mime_type":"image/jpeg","data":"eHl6"}}
		]}]}`, string(body))

		assert.Equal(t, "edit this", req.Prompt())
		assert.Len(t, req.InlineImages(), 2)
	})
}

func TestRequestApply(t *testing.T) {
	t.Run("no options leaves config unset", func(t *testing.T) {
		req := NewRequest("x").Apply()
		assert.Nil(t, req.GenerationConfig)
	})

	t.Run("options populate generation config", func(t *testing.T) {
		req := NewRequest("x").Apply(WithAspectRatio("16:9"), WithResponseModalities("IMAGE"))
		require.NotNil(t, req.GenerationConfig)
		assert.Equal(t, []string{"IMAGE"}, req.GenerationConfig.ResponseModalities)
		require.NotNil(t, req.GenerationConfig.ImageConfig)
		assert.Equal(t, "16:9", req.GenerationConfig.ImageConfig.AspectRatio)
	})
}
