// Package navigation carries the breadcrumb trail of a dashboard page.
package navigation

// Crumb is one link of the breadcrumb trail. The active crumb is the
// page being viewed and renders without a link.
type Crumb struct {
	Title  string
	URL    string
	Active bool
}

// Context is the navigation state of one dashboard page.
type Context struct {
	PageTitle   string
	Section     string
	Breadcrumbs []Crumb
}

// NewContext creates the navigation context of a dashboard page.
func NewContext(pageTitle, section string) *Context {
	return &Context{
		PageTitle:   pageTitle,
		Section:     section,
		Breadcrumbs: make([]Crumb, 0),
	}
}

// AddBreadcrumb appends one crumb to the trail.
func (c *Context) AddBreadcrumb(title, url string, active bool) *Context {
	c.Breadcrumbs = append(c.Breadcrumbs, Crumb{
		Title:  title,
		URL:    url,
		Active: active,
	})

	return c
}

// IsSection reports whether the given dashboard section is the one being
// viewed, used to highlight the admin menu.
func (c *Context) IsSection(section string) bool {
	return c.Section == section
}
