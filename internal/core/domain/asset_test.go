package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/weld/internal/core/domain"
)

func TestClassifyAsset(t *testing.T) {
	tests := []struct {
		entry    string
		expected domain.AssetKind
	}{
		{"modules/jquery/1.9.1/jquery.min.js", domain.AssetScript},
		{"modules/bootstrap/css/bootstrap.min.css", domain.AssetStylesheet},
		{"modules/app.JS", domain.AssetScript},
		{"modules/app.css?v=3", domain.AssetStylesheet},
		{"modules/app.js#main", domain.AssetScript},
		{"<!--[if lt IE 9]><script src=\"html5shiv.js\"></script><![endif]-->", domain.AssetInline},
		{"  <!-- comment -->", domain.AssetInline},
		{"modules/logo.png", domain.AssetOther},
		{"modules/README", domain.AssetOther},
		{"", domain.AssetOther},
	}

	for _, tt := range tests {
		t.Run(tt.entry, func(t *testing.T) {
			assert.Equal(t, tt.expected, domain.ClassifyAsset(tt.entry))
		})
	}
}

func TestAssetKind_Extension(t *testing.T) {
	assert.Equal(t, ".js", domain.AssetScript.Extension())
	assert.Equal(t, ".css", domain.AssetStylesheet.Extension())
	assert.Empty(t, domain.AssetInline.Extension())
	assert.Empty(t, domain.AssetOther.Extension())
	assert.Equal(t, "stylesheet", domain.AssetStylesheet.String())
}

func TestFilterBundleable(t *testing.T) {
	entries := []string{
		"a.js",
		"<!-- inline -->",
		"a.css",
		"logo.png",
		"b.js",
		"a.css",
	}

	t.Run("with scripts", func(t *testing.T) {
		assert.Equal(t, []string{"a.js", "a.css", "b.js", "a.css"}, domain.FilterBundleable(entries, true))
	})

	t.Run("without scripts", func(t *testing.T) {
		assert.Equal(t, []string{"a.css", "a.css"}, domain.FilterBundleable(entries, false))
	})
}

func TestLinks_All(t *testing.T) {
	links := domain.Links{Head: []string{"h1", "h2"}, Body: []string{"b1"}}
	links.Append(domain.Links{Head: []string{"h3"}, Body: []string{"b2"}})

	assert.Equal(t, []string{"h1", "h2", "h3", "b1", "b2"}, links.All())
}

func TestIsPattern(t *testing.T) {
	assert.True(t, domain.IsPattern("js/*.js"))
	assert.True(t, domain.IsPattern("js/{a,b}.js"))
	assert.True(t, domain.IsPattern("modules/**/?.css"))
	assert.False(t, domain.IsPattern("js/app.js"))
	assert.False(t, domain.IsPattern("<!--[if lt IE 9]><script src=\"*.js\"></script><![endif]-->"))
}
