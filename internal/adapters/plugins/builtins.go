package plugins

import "go.trai.ch/weld/internal/core/domain"

// Built-in plugin names.
const (
	JQuery   = "jquery"
	UIJQuery = "ui_jquery"
)

// Builtins returns the built-in plugins keyed by name.
func Builtins() map[string]Plugin {
	return map[string]Plugin{
		JQuery:   jquery,
		UIJQuery: uiJQuery,
	}
}

// jquery loads the configured jQuery version into the head and the
// bootstrap script, if any, at the end of the body.
func jquery(settings *domain.Settings) (domain.Links, error) {
	var links domain.Links

	if version := settings.UIVersion[JQuery]; version != "" {
		scripts, err := domain.LoadLibrary(domain.LibraryRequest{Name: JQuery, Version: version})
		if err != nil {
			return domain.Links{}, err
		}
		links.Head = scripts
	}

	if bootstrap := settings.UIConfig.JQueryBootstrap; bootstrap != "" {
		links.Body = []string{bootstrap}
	}

	return links, nil
}

// uiJQuery loads the jQuery version pinned for UI widgets.
func uiJQuery(settings *domain.Settings) (domain.Links, error) {
	version := settings.UIVersion[UIJQuery]
	if version == "" {
		return domain.Links{}, nil
	}

	scripts, err := domain.LoadLibrary(domain.LibraryRequest{Name: JQuery, Version: version})
	if err != nil {
		return domain.Links{}, err
	}
	return domain.Links{Head: scripts}, nil
}
