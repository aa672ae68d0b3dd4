package email

// Template names an embedded HTML template under templates/.
type Template string

const (
	TemplateWelcome Template = "welcome"
)
