package types

// DefaultVersion is reported when no AppContext is bound
const DefaultVersion = "dev"

// DefaultTitle is the header shown above the upload panel
const DefaultTitle = "Video Upload"

// AppContext holds application-wide values bound into every command
type AppContext struct {
	Title   string
	Version string
}

// Header returns the title and version for display
func (c *AppContext) Header() string {
	if c == nil {
		return DefaultTitle + " " + DefaultVersion
	}
	title, version := c.Title, c.Version
	if title == "" {
		title = DefaultTitle
	}
	if version == "" {
		version = DefaultVersion
	}
	return title + " " + version
}
