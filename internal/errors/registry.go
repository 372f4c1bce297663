package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category   Category
	Message    string
	Detail     string
	Suggestion string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Site configuration (E120-E149)
	// ============================================

	"E120": {
		Category:   CategoryConfig,
		Message:    "Invalid site configuration",
		Detail:     "The site configuration file could not be read or decoded.",
		Suggestion: "Check the file for syntax errors and unknown keys",
	},
	"E121": {
		Category:   CategoryConfig,
		Message:    "Missing site title",
		Detail:     "The title is used as the alt text of the footer logo and as the page title.",
		Suggestion: `Add "title": "My Project" to the site configuration`,
	},
	"E122": {
		Category:   CategoryConfig,
		Message:    "Missing footer background color",
		Detail:     "colors.secondaryColor sets the background of the footer and has no default.",
		Suggestion: `Add "colors": {"secondaryColor": "#222"} to the site configuration`,
	},
	"E123": {
		Category:   CategoryConfig,
		Message:    "Invalid baseUrl",
		Detail:     "baseUrl is prefixed to every internal link, so it must start and end with a slash.",
		Suggestion: `Use "/" for a site served at the domain root or "/project/" for a sub-path`,
	},
	"E124": {
		Category:   CategoryConfig,
		Message:    "Invalid external link",
		Detail:     "gitterUrl and repoUrl open in a new tab and must be absolute http(s) URLs.",
		Suggestion: `Use a full URL such as "https://github.com/org/repo"`,
	},
	"E125": {
		Category:   CategoryConfig,
		Message:    "Unsupported configuration format",
		Detail:     "Site configuration can be written as JSON, YAML or TOML.",
		Suggestion: "Rename the file to siteConfig.json, siteConfig.yaml or siteConfig.toml",
	},
	"E141": {
		Category:   CategoryConfig,
		Message:    "Site configuration not found",
		Suggestion: "Create siteConfig.json in the website directory or pass --config",
	},

	// ============================================
	// Render (E200-E219)
	// ============================================

	"E201": {
		Category: CategoryRender,
		Message:  "Render failed",
		Detail:   "The footer view tree could not be serialized to HTML.",
	},

	// ============================================
	// Publish (E300-E319)
	// ============================================

	"E301": {
		Category:   CategoryPublish,
		Message:    "Missing publish target",
		Suggestion: "Pass --bucket and optionally --key",
	},
	"E302": {
		Category: CategoryPublish,
		Message:  "Upload failed",
		Detail:   "The rendered footer could not be stored in the bucket.",
	},

	// ============================================
	// CLI (E400-E419)
	// ============================================

	"E401": {
		Category: CategoryCLI,
		Message:  "Could not write output",
	},
}

// Lookup returns the template for a code.
func Lookup(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
