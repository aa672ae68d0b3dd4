package email

// PreviewData holds sample values for every template variable, keyed by
// template, so templates can be rendered without a real recipient.
var PreviewData = map[Template]map[string]string{
	TemplateWelcome: {
		"UserName": "Eva Stanley",
	},
}

// Preview renders templateName with its sample data.
func Preview(templateName Template) (string, error) {
	return render(templateName, PreviewData[templateName])
}
