// Package content is the static content source for the site: gallery
// images, the service price list, contact details and the about text.
package content

import (
	"bytes"
	"fmt"
	"html/template"
	"net/url"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/pacesnailbar/nailbar/internal/carousel"
)

// Load reads a YAML content file over the built-in defaults. A missing
// file yields the defaults.
func Load(path string) (*Content, error) {
	c := Default()
	if path == "" {
		return c, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading content %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parsing content %s: %w", path, err)
	}
	return c, nil
}

// Save writes the content as YAML, for use as a starter content file.
func (c *Content) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling content: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing content %s: %w", path, err)
	}
	return nil
}

// Validate checks the content is renderable.
func (c *Content) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if len(c.Gallery) == 0 {
		return fmt.Errorf("%w: gallery has no images", carousel.ErrInvalidConfiguration)
	}
	for i, s := range c.Services {
		if strings.TrimSpace(s.Title) == "" {
			return fmt.Errorf("services[%d]: title is required", i)
		}
		if len(s.SubServices) == 0 {
			return fmt.Errorf("service %q has no sub-services", s.Title)
		}
	}
	if c.Contact.Email == "" && c.Contact.WhatsApp == "" {
		return fmt.Errorf("contact needs an email or a whatsapp number")
	}
	return nil
}

// ActiveServices returns the services shown on the page.
func (c *Content) ActiveServices() []Service {
	var out []Service
	for _, s := range c.Services {
		if s.IsActive() {
			out = append(out, s)
		}
	}
	return out
}

// ServiceOptions returns the booking select entries for the active services.
func (c *Content) ServiceOptions() []ServiceOption {
	var opts []ServiceOption
	seen := make(map[string]bool)
	for _, s := range c.ActiveServices() {
		value := s.Category
		if value == "" {
			value = s.ID
		}
		if value == "" || seen[value] {
			continue
		}
		seen[value] = true

		label := s.Title
		if label == "" {
			label = Label(value)
		}
		opts = append(opts, ServiceOption{Value: value, Label: label})
	}
	return opts
}

// ServiceLabel returns the display label for a booking select value.
func (c *Content) ServiceLabel(value string) string {
	for _, o := range c.ServiceOptions() {
		if o.Value == value {
			return o.Label
		}
	}
	return Label(value)
}

// Label turns a slug such as "soak-off" into "Soak Off".
func Label(slug string) string {
	// Casers keep state; one per call.
	return cases.Title(language.English).String(strings.ReplaceAll(slug, "-", " "))
}

// DiscoverGallery lists images under root matching a doublestar pattern
// (e.g. "**/*.{png,jpg,jpeg,webp}") and returns them as URIs under urlPrefix,
// sorted by path. Each path segment is escaped, so file names may contain
// characters such as '#' or '?'.
func DiscoverGallery(root, pattern, urlPrefix string) ([]string, error) {
	matches, err := doublestar.Glob(os.DirFS(root), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("globbing %s in %s: %w", pattern, root, err)
	}
	sort.Strings(matches)

	prefix := "/" + strings.Trim(urlPrefix, "/")
	uris := make([]string, 0, len(matches))
	for _, m := range matches {
		segs := strings.Split(m, "/")
		for i, seg := range segs {
			segs[i] = url.PathEscape(seg)
		}
		uris = append(uris, path.Join(prefix, path.Join(segs...)))
	}
	return uris, nil
}

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
)

// RenderAbout converts the about markdown to HTML.
func (c *Content) RenderAbout() (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(c.About), &buf); err != nil {
		return "", fmt.Errorf("rendering about: %w", err)
	}
	return template.HTML(buf.String()), nil
}
