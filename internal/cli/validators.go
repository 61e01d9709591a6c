package cli

import (
	"fmt"
	"strings"

	"github.com/borsuksoftware/conical-es/pkg/models"
)

// ValidateOutputFormat validates the output format flag
func ValidateOutputFormat(format string) error {
	validFormats := []string{"text", "json", "yaml"}
	for _, valid := range validFormats {
		if format == valid {
			return nil
		}
	}
	return fmt.Errorf("%w: invalid output format: %s (must be: text, json, or yaml)", models.ErrConfiguration, format)
}

// ParseLink parses a --link value of the form "name|url|description". The
// description may be omitted.
func ParseLink(s string) (models.ExternalLink, error) {
	parts := strings.SplitN(s, "|", 3)
	if len(parts) < 2 || strings.TrimSpace(parts[0]) == "" || strings.TrimSpace(parts[1]) == "" {
		return models.ExternalLink{}, fmt.Errorf("%w: link '%s' must look like name|url|description", models.ErrConfiguration, s)
	}
	link := models.ExternalLink{
		Name: strings.TrimSpace(parts[0]),
		URL:  strings.TrimSpace(parts[1]),
	}
	if len(parts) == 3 {
		link.Description = strings.TrimSpace(parts[2])
	}
	return link, nil
}

// ParseLinks parses every --link value.
func ParseLinks(values []string) ([]models.ExternalLink, error) {
	links := make([]models.ExternalLink, 0, len(values))
	for _, v := range values {
		link, err := ParseLink(v)
		if err != nil {
			return nil, err
		}
		links = append(links, link)
	}
	return links, nil
}
