package preview

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/scalameta/docsite/internal/dev"
	"github.com/scalameta/docsite/internal/errors"
	"github.com/scalameta/docsite/internal/site"
	"github.com/scalameta/docsite/pkg/footer"
	"github.com/scalameta/docsite/pkg/render"
	"github.com/scalameta/docsite/pkg/vdom"
)

// previewCSS approximates the documentation theme closely enough to judge
// the footer.
const previewCSS = `body{margin:0;font-family:-apple-system,BlinkMacSystemFont,"Segoe UI",Helvetica,Arial,sans-serif;display:flex;flex-direction:column;min-height:100vh}
main{flex:1;padding:2rem}
.nav-footer{color:#fff;padding:2em 0 3em}
.nav-footer .sitemap{display:flex;justify-content:space-between;max-width:1080px;margin:0 auto 3em}
.nav-footer .sitemap div{flex:1}
.nav-footer .sitemap a{color:rgba(255,255,255,.6);display:block;margin:2px 0;padding:3px 0}
.nav-footer .sitemap h5{color:#fff;margin:0 0 .5em}
.nav-footer .nav-home{display:table;margin:0 20px}
.nav-footer .copyright{color:rgba(255,255,255,.4);text-align:center}`

// renderFooter builds the footer for the current configuration inside a
// footer.render span.
func (s *Server) renderFooter(ctx context.Context, route string) (*vdom.VNode, site.Config) {
	cfg := s.source.Get()
	_, span := s.tracer.Start(ctx, "footer.render",
		trace.WithAttributes(
			attribute.String("docsite.route", route),
			attribute.String("docsite.base_url", cfg.BaseURL),
			attribute.Bool("docsite.logo", cfg.FooterIcon != ""),
		),
	)
	defer span.End()

	node := footer.Render(cfg, cfg.Links())
	span.SetStatus(codes.Ok, "")
	return node, cfg
}

// renderHTML serializes node, recording failures on the current span.
func (s *Server) renderHTML(ctx context.Context, fn func(*bytes.Buffer) error) ([]byte, error) {
	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		span := trace.SpanFromContext(ctx)
		span.RecordError(err)
		span.SetStatus(codes.Error, "render failed")
		return nil, errors.New("E201").Wrap(err)
	}
	return buf.Bytes(), nil
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	node, cfg := s.renderFooter(ctx, "/")

	page := render.PageData{
		Title:  cfg.Title,
		Meta:   []render.MetaTag{{Name: "generator", Content: "docsite"}},
		Styles: []string{previewCSS},
		Body: vdom.Fragment(
			vdom.Main(
				vdom.H1(vdom.Text(cfg.Title)),
				vdom.If(cfg.Tagline != "", vdom.P(vdom.Text(cfg.Tagline))),
			),
			node,
		),
	}
	if cfg.Tagline != "" {
		page.Meta = append(page.Meta, render.MetaTag{Name: "description", Content: cfg.Tagline})
	}
	if s.reload != nil {
		page.Scripts = append(page.Scripts, render.ScriptTag{Inline: dev.ClientScript})
	}

	body, err := s.renderHTML(ctx, func(buf *bytes.Buffer) error {
		return s.renderer.RenderPage(buf, page)
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeHTML(w, body)
}

func (s *Server) handleFooter(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	node, _ := s.renderFooter(ctx, "/footer")

	body, err := s.renderHTML(ctx, func(buf *bytes.Buffer) error {
		return s.renderer.RenderToWriter(buf, node)
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeHTML(w, body)
}

func (s *Server) handleFooterJSON(w http.ResponseWriter, r *http.Request) {
	node, _ := s.renderFooter(r.Context(), "/footer.json")

	data, err := json.Marshal(vdom.Expand(node))
	if err != nil {
		s.fail(w, r, errors.New("E201").Wrap(err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}

// fail logs err and writes it as a JSON error body.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	e := errors.FromError(err, "E201")
	s.logger.Error("render failed", "path", r.URL.Path, "error", e)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	json.NewEncoder(w).Encode(map[string]any{"error": e})
}

func writeHTML(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(body)
}
