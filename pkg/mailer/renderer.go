package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"
	"sync"
	texttemplate "text/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"
)

// Renderer turns markdown templates with YAML frontmatter into a subject,
// a plain text body and an HTML body.
type Renderer struct {
	fs  fs.FS
	md  goldmark.Markdown
	dir string

	// Optional HTML layout wrapping the converted markdown.
	layout string

	templates map[string]*cachedTemplate
	layouts   map[string]*template.Template
	mu        sync.RWMutex
}

type cachedTemplate struct {
	metadata map[string]any
	body     *texttemplate.Template
	subject  *texttemplate.Template
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithTemplateDir sets the directory templates are read from. Default ".".
func WithTemplateDir(dir string) RendererOption {
	return func(r *Renderer) {
		if dir != "" {
			r.dir = dir
		}
	}
}

// WithLayout wraps rendered HTML in the named html/template layout. The
// layout receives .Content and .Metadata.
func WithLayout(name string) RendererOption {
	return func(r *Renderer) {
		r.layout = name
	}
}

// NewRenderer creates a renderer reading templates from filesystem.
func NewRenderer(filesystem fs.FS, opts ...RendererOption) *Renderer {
	r := &Renderer{
		fs:  filesystem,
		dir: ".",
		md: goldmark.New(
			goldmark.WithRendererOptions(html.WithHardWraps()),
		),
		templates: make(map[string]*cachedTemplate),
		layouts:   make(map[string]*template.Template),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RenderResult is the output of Render.
type RenderResult struct {
	Metadata map[string]any
	Subject  string // from the Subject frontmatter key, empty if absent
	Text     string // processed markdown
	HTML     string
}

// Render executes the named template with data.
func (r *Renderer) Render(name string, data any) (*RenderResult, error) {
	cached, err := r.template(name)
	if err != nil {
		return nil, err
	}

	var text bytes.Buffer
	if err := cached.body.Execute(&text, data); err != nil {
		return nil, fmt.Errorf("%w: failed to execute template: %v", ErrRenderFailed, err)
	}

	var subject bytes.Buffer
	if cached.subject != nil {
		if err := cached.subject.Execute(&subject, data); err != nil {
			return nil, fmt.Errorf("%w: failed to execute subject: %v", ErrRenderFailed, err)
		}
	}

	var content bytes.Buffer
	if err := r.md.Convert(text.Bytes(), &content); err != nil {
		return nil, fmt.Errorf("%w: failed to convert markdown: %v", ErrRenderFailed, err)
	}

	htmlBody := content.String()
	if r.layout != "" {
		layout, err := r.layoutTemplate(r.layout)
		if err != nil {
			return nil, err
		}
		var wrapped bytes.Buffer
		if err := layout.Execute(&wrapped, map[string]any{
			"Content":  template.HTML(htmlBody),
			"Metadata": cached.metadata,
		}); err != nil {
			return nil, fmt.Errorf("%w: failed to execute layout: %v", ErrRenderFailed, err)
		}
		htmlBody = wrapped.String()
	}

	return &RenderResult{
		Metadata: cached.metadata,
		Subject:  strings.TrimSpace(subject.String()),
		Text:     strings.TrimSpace(text.String()) + "\n",
		HTML:     htmlBody,
	}, nil
}

func (r *Renderer) template(name string) (*cachedTemplate, error) {
	r.mu.RLock()
	cached, ok := r.templates[name]
	r.mu.RUnlock()
	if ok {
		return cached, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if cached, ok := r.templates[name]; ok {
		return cached, nil
	}

	content, err := fs.ReadFile(r.fs, path.Join(r.dir, name))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplateNotFound, name, err)
	}

	parsed, err := ParseTemplate(content)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRenderFailed, name, err)
	}

	body, err := texttemplate.New(name).Parse(parsed.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse template body: %v", ErrRenderFailed, err)
	}
	cached = &cachedTemplate{metadata: parsed.Metadata, body: body}

	if s, ok := parsed.Metadata["Subject"].(string); ok && s != "" {
		cached.subject, err = texttemplate.New(name + ":subject").Parse(s)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to parse subject: %v", ErrRenderFailed, err)
		}
	}

	r.templates[name] = cached
	return cached, nil
}

func (r *Renderer) layoutTemplate(name string) (*template.Template, error) {
	r.mu.RLock()
	cached, ok := r.layouts[name]
	r.mu.RUnlock()
	if ok {
		return cached, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if cached, ok := r.layouts[name]; ok {
		return cached, nil
	}

	content, err := fs.ReadFile(r.fs, path.Join(r.dir, name))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLayoutNotFound, name, err)
	}
	layout, err := template.New(name).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse layout: %v", ErrRenderFailed, err)
	}
	r.layouts[name] = layout
	return layout, nil
}
