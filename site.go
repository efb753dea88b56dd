package uidoc

// ComponentLinkPrefix marks catalog anchors on the registry's index page.
// Only hrefs starting with this prefix become catalog entries.
const ComponentLinkPrefix = "/docs/components/"

// Site holds the three base endpoints a registry is reached through.
// All resource URLs are derived from these by fixed templates; the
// templates are part of the external contract and must stay stable for
// cache keys and the remote demo lookup to keep working.
type Site struct {
	// DocsBaseURL is the documentation site root, without trailing slash.
	DocsBaseURL string

	// RepoBaseURL is the source repository browse root.
	RepoBaseURL string

	// RawBaseURL is the source repository raw-content root.
	RawBaseURL string
}

// DefaultSite returns the shadcn/ui registry endpoints.
func DefaultSite() Site {
	return Site{
		DocsBaseURL: "https://ui.shadcn.com",
		RepoBaseURL: "https://github.com/shadcn-ui/ui",
		RawBaseURL:  "https://raw.githubusercontent.com/shadcn-ui/ui",
	}
}

// IndexURL returns the component catalog page.
func (s Site) IndexURL() string {
	return s.DocsBaseURL + "/docs/components"
}

// ComponentURL returns the documentation page for a component.
func (s Site) ComponentURL(name string) string {
	return s.DocsBaseURL + ComponentLinkPrefix + name
}

// SourceURL returns the browse URL of the component's implementation file.
// It is derived from the name alone and is never fetched.
func (s Site) SourceURL(name string) string {
	return s.RepoBaseURL + "/blob/main/apps/www/registry/default/ui/" + name + ".tsx"
}

// DemoURL returns the raw-content URL of the component's demo file.
func (s Site) DemoURL(name string) string {
	return s.RawBaseURL + "/main/apps/www/registry/default/example/" + name + "-demo.tsx"
}

// AbsoluteURL resolves a root-relative href against the documentation site.
func (s Site) AbsoluteURL(href string) string {
	return s.DocsBaseURL + href
}
