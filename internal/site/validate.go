package site

import (
	"net/url"
	"strings"

	"github.com/scalameta/docsite/internal/errors"
)

// Validate checks that the configuration can be rendered. Errors are
// reported in field order, first failure only.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return errors.New("E121").WithField("title")
	}
	if strings.TrimSpace(c.Colors.SecondaryColor) == "" {
		return errors.New("E122").WithField("colors.secondaryColor")
	}
	if !strings.HasPrefix(c.BaseURL, "/") || !strings.HasSuffix(c.BaseURL, "/") {
		return errors.New("E123").
			WithField("baseUrl").
			WithDetail("baseUrl is " + quote(c.BaseURL) + "; it must start and end with a slash.")
	}
	if err := validateExternal("gitterUrl", c.GitterURL); err != nil {
		return err
	}
	if err := validateExternal("repoUrl", c.RepoURL); err != nil {
		return err
	}
	return nil
}

// validateExternal accepts empty values and absolute http(s) URLs.
func validateExternal(field, raw string) error {
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != "" {
		return nil
	}
	e := errors.New("E124").
		WithField(field).
		WithDetail(field + " is " + quote(raw) + "; external links must be absolute http(s) URLs.")
	if err != nil {
		e.Wrap(err)
	}
	return e
}

func quote(s string) string {
	return `"` + s + `"`
}
