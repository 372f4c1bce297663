package main

import (
	"github.com/spf13/cobra"

	"github.com/scalameta/docsite/internal/errors"
	"github.com/scalameta/docsite/internal/publish"
	"github.com/scalameta/docsite/internal/site"
)

func publishCmd() *cobra.Command {
	var (
		configPath   string
		target       publish.Target
		client       publish.ClientConfig
		cacheControl string
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Upload the footer fragment to S3",
		Long: `Render the footer and upload it to an S3 bucket.

Credentials are read from AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY
and AWS_SESSION_TOKEN. The region defaults to AWS_REGION.

Examples:
  docsite publish --bucket docs-assets
  docsite publish --bucket docs-assets --key partials/footer.html --region eu-west-1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if target.Bucket == "" {
				return errors.New("E301").WithField("bucket")
			}
			cfg, err := site.Resolve(configPath)
			if err != nil {
				return err
			}
			s3Client, err := publish.NewS3Client(client)
			if err != nil {
				return errors.New("E302").WithSource(target.URI()).Wrap(err)
			}

			res, err := publish.New(s3Client, publish.WithCacheControl(cacheControl)).
				Publish(cmd.Context(), *cfg, target)
			if err != nil {
				return err
			}
			success(cmd.OutOrStdout(), "Published %s (%d bytes)", res.Target.URI(), res.Size)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file or directory (default: search from working directory)")
	cmd.Flags().StringVarP(&target.Bucket, "bucket", "b", "", "Destination bucket")
	cmd.Flags().StringVarP(&target.Key, "key", "k", publish.DefaultKey, "Object key")
	cmd.Flags().StringVar(&client.Region, "region", "", "AWS region (default: AWS_REGION)")
	cmd.Flags().StringVar(&client.Endpoint, "endpoint", "", "S3-compatible endpoint URL")
	cmd.Flags().BoolVar(&client.PathStyle, "path-style", false, "Use path-style bucket addressing")
	cmd.Flags().StringVar(&cacheControl, "cache-control", publish.DefaultCacheControl, "Cache-Control header for the object")

	return cmd
}
