// Package site loads and validates the documentation site configuration.
//
// The configuration lives next to the website sources as siteConfig.json,
// siteConfig.yaml (or .yml) or siteConfig.toml:
//
//	{
//	  "title": "Scalameta",
//	  "baseUrl": "/",
//	  "footerIcon": "img/scalameta.png",
//	  "copyright": "Copyright © 2024 Scalameta",
//	  "colors": {"primaryColor": "#3a5a8c", "secondaryColor": "#253c61"},
//	  "gitterUrl": "https://gitter.im/scalameta/scalameta",
//	  "repoUrl": "https://github.com/scalameta/scalameta"
//	}
//
// Loading applies defaults and validates the result, so a *Config returned
// by Load or LoadFile can be rendered without further checks.
package site
