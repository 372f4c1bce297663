// Package errors provides structured, actionable error messages for docsite.
//
// Each error carries a registered code, a plain-language message, the
// configuration file and key it refers to, and a hint on how to fix it.
//
// # Error Categories
//
//   - config: the site configuration could not be loaded or is invalid
//   - render: a view tree could not be serialized
//   - publish: the rendered footer could not be uploaded
//   - cli: command line input or output failures
//
// # Usage
//
//	err := errors.New("E122").
//	    WithSource("website/siteConfig.json").
//	    WithField("colors.secondaryColor")
//
//	fmt.Print(err.Format())
//	// Output:
//	// ERROR E122: Missing footer background color
//	//
//	//   website/siteConfig.json: colors.secondaryColor
//	//
//	//   colors.secondaryColor sets the background of the footer and has no default.
//	//
//	//   Hint: Add "colors": {"secondaryColor": "#222"} to the site configuration
package errors
