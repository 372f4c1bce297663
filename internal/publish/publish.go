package publish

import (
	"bytes"
	"context"
	"log/slog"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/scalameta/docsite/internal/errors"
	"github.com/scalameta/docsite/internal/site"
	"github.com/scalameta/docsite/pkg/footer"
	"github.com/scalameta/docsite/pkg/render"
)

const (
	// DefaultKey is the object key used when a target names none.
	DefaultKey = "footer.html"

	// DefaultCacheControl keeps CDN copies fresh for five minutes.
	DefaultCacheControl = "public, max-age=300"

	contentType = "text/html; charset=utf-8"
)

// ObjectPutter is the subset of *s3.Client used for publishing.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Target names the object to write.
type Target struct {
	Bucket string
	Key    string
}

// URI returns the s3:// form of the target.
func (t Target) URI() string {
	return "s3://" + t.Bucket + "/" + t.Key
}

// Result describes an uploaded fragment.
type Result struct {
	Target Target
	Size   int
	ETag   string
}

// Option configures a Publisher.
type Option func(*Publisher)

// WithCacheControl sets the Cache-Control header stored with the object.
func WithCacheControl(v string) Option {
	return func(p *Publisher) {
		p.cacheControl = v
	}
}

// WithPretty renders indented HTML.
func WithPretty(pretty bool) Option {
	return func(p *Publisher) {
		p.renderer = render.NewRenderer(render.RendererConfig{Pretty: pretty})
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(p *Publisher) {
		p.logger = l
	}
}

// Publisher renders the footer and stores it in a bucket.
type Publisher struct {
	client       ObjectPutter
	renderer     *render.Renderer
	cacheControl string
	logger       *slog.Logger
}

// New creates a Publisher that writes through client.
func New(client ObjectPutter, opts ...Option) *Publisher {
	p := &Publisher{
		client:       client,
		renderer:     render.NewRenderer(render.RendererConfig{}),
		cacheControl: DefaultCacheControl,
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.logger = p.logger.With("component", "publish")
	return p
}

// Publish renders the footer for cfg and uploads it to target.
func (p *Publisher) Publish(ctx context.Context, cfg site.Config, target Target) (*Result, error) {
	target.Bucket = strings.TrimSpace(target.Bucket)
	if target.Bucket == "" {
		return nil, errors.New("E301").WithField("bucket")
	}
	target.Key = strings.TrimPrefix(strings.TrimSpace(target.Key), "/")
	if target.Key == "" {
		target.Key = DefaultKey
	}

	var buf bytes.Buffer
	if err := p.renderer.RenderToWriter(&buf, footer.Render(cfg, cfg.Links())); err != nil {
		return nil, errors.New("E201").Wrap(err)
	}
	body := buf.Bytes()

	input := &s3.PutObjectInput{
		Bucket:        aws.String(target.Bucket),
		Key:           aws.String(target.Key),
		Body:          bytes.NewReader(body),
		ContentLength: aws.Int64(int64(len(body))),
		ContentType:   aws.String(contentType),
		CacheControl:  aws.String(p.cacheControl),
		Metadata: map[string]string{
			"docsite-title":    cfg.Title,
			"docsite-base-url": cfg.BaseURL,
		},
	}
	out, err := p.client.PutObject(ctx, input)
	if err != nil {
		return nil, errors.New("E302").WithSource(target.URI()).Wrap(err)
	}

	res := &Result{Target: target, Size: len(body)}
	if out != nil && out.ETag != nil {
		res.ETag = strings.Trim(*out.ETag, `"`)
	}
	p.logger.Info("footer published", "target", target.URI(), "bytes", res.Size, "etag", res.ETag)
	return res, nil
}
