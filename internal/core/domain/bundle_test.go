package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/weld/internal/core/domain"
)

func TestBundleOutput_PreservesInsertionOrder(t *testing.T) {
	out := domain.NewBundleOutput()
	out.Add("zeta.js", "z.js")
	out.Add("alpha.css", "a.css")
	out.Add("zeta.js", "z2.js")
	out.Add("empty.js")

	assert.Equal(t, []string{"zeta.js", "alpha.css"}, out.Keys())
	assert.Equal(t, []string{"z.js", "z2.js"}, out.Files("zeta.js"))
	assert.False(t, out.Has("empty.js"))
	assert.Equal(t, 2, out.Len())
}

func TestBundleOutput_Map(t *testing.T) {
	out := domain.NewBundleOutput()
	out.Add("common.css", "a.css", "b.css")

	mapped := out.Map(strings.ToUpper)

	assert.Equal(t, []string{"A.CSS", "B.CSS"}, mapped.Files("common.css"))
	assert.Equal(t, []string{"a.css", "b.css"}, out.Files("common.css"), "source must be untouched")
}

func TestSettings_UseBundles(t *testing.T) {
	settings := &domain.Settings{
		TemplateUse: []domain.UseEntry{{Name: "jquery"}, {Name: "bootstrap"}},
	}

	assert.Equal(t, domain.BundleConfig{
		{Name: "jquery", Refs: []string{"jquery"}},
		{Name: "bootstrap", Refs: []string{"bootstrap"}},
	}, settings.UseBundles())
	assert.Equal(t, []string{"jquery", "bootstrap"}, settings.UseNames())

	entry, ok := settings.Use("bootstrap")
	assert.True(t, ok)
	assert.Equal(t, "bootstrap", entry.Name)

	_, ok = settings.Use("missing")
	assert.False(t, ok)
}

func TestProject_SearchDirs(t *testing.T) {
	project := domain.Project{
		AppsDir:    "/p/apps",
		Apps:       []string{"base", "site"},
		StaticDirs: []string{"/p/static"},
	}

	assert.Equal(t, []string{
		"/p/static",
		"/p/apps/site/static",
		"/p/apps/base/static",
	}, project.SearchDirs())
}
