package shared

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Title string `json:"title"`
	}

	t.Run("decodes a valid body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title": "x"}`))
		var p payload
		require.NoError(t, DecodeJSON(req, &p))
		assert.Equal(t, "x", p.Title)
	})

	t.Run("fails on malformed JSON", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title": `))
		var p payload
		assert.Error(t, DecodeJSON(req, &p))
	})
}

func TestNotBlankValidation(t *testing.T) {
	type form struct {
		Title string `validate:"required,notblank"`
	}

	assert.NoError(t, Validate.Struct(form{Title: "ok"}))
	assert.Error(t, Validate.Struct(form{Title: ""}))
	assert.Error(t, Validate.Struct(form{Title: "   "}), "whitespace-only must be rejected")
}
