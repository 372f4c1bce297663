// Package publish uploads the rendered footer fragment to S3.
//
// The fragment is stored with an HTML content type so that static site
// builds or edge includes can fetch it directly:
//
//	client, err := publish.NewS3Client(publish.ClientConfig{Region: "us-east-1"})
//	p := publish.New(client)
//	res, err := p.Publish(ctx, cfg, publish.Target{Bucket: "docs-assets"})
package publish
