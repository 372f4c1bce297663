package main

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/google/renameio/v2"
	"github.com/spf13/cobra"

	"github.com/scalameta/docsite/internal/errors"
	"github.com/scalameta/docsite/internal/site"
	"github.com/scalameta/docsite/pkg/footer"
	"github.com/scalameta/docsite/pkg/render"
	"github.com/scalameta/docsite/pkg/vdom"
)

type footerOptions struct {
	config string
	output string
	page   bool
	pretty bool
	json   bool
}

func footerCmd() *cobra.Command {
	var opts footerOptions

	cmd := &cobra.Command{
		Use:   "footer",
		Short: "Render the footer",
		Long: `Render the footer as an HTML fragment, a full page, or a JSON view tree.

Output goes to stdout unless --output is given, in which case the
file is replaced atomically.

Examples:
  docsite footer
  docsite footer --config website/siteConfig.yaml --output build/footer.html
  docsite footer --page --pretty
  docsite footer --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFooter(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "Config file or directory (default: search from working directory)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write to file instead of stdout")
	cmd.Flags().BoolVar(&opts.page, "page", false, "Wrap the footer in a full HTML page")
	cmd.Flags().BoolVar(&opts.pretty, "pretty", false, "Indent output")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Print the view tree as JSON")
	cmd.MarkFlagsMutuallyExclusive("page", "json")

	return cmd
}

func runFooter(stdout io.Writer, opts footerOptions) error {
	cfg, err := site.Resolve(opts.config)
	if err != nil {
		return err
	}

	data, err := renderFooter(*cfg, opts)
	if err != nil {
		return err
	}

	if opts.output == "" {
		_, err := stdout.Write(data)
		return err
	}
	if err := writeFile(opts.output, data); err != nil {
		return err
	}
	success(stdout, "Wrote %s", opts.output)
	return nil
}

func renderFooter(cfg site.Config, opts footerOptions) ([]byte, error) {
	node := footer.Render(cfg, cfg.Links())

	if opts.json {
		var (
			data []byte
			err  error
		)
		if opts.pretty {
			data, err = json.MarshalIndent(vdom.Expand(node), "", "  ")
		} else {
			data, err = json.Marshal(vdom.Expand(node))
		}
		if err != nil {
			return nil, errors.New("E201").Wrap(err)
		}
		return append(data, '\n'), nil
	}

	renderer := render.NewRenderer(render.RendererConfig{Pretty: opts.pretty})
	var buf bytes.Buffer
	var err error
	if opts.page {
		err = renderer.RenderPage(&buf, render.PageData{Title: cfg.Title, Body: node})
	} else {
		err = renderer.RenderToWriter(&buf, node)
		buf.WriteByte('\n')
	}
	if err != nil {
		return nil, errors.New("E201").Wrap(err)
	}
	return buf.Bytes(), nil
}

// writeFile replaces path atomically.
func writeFile(path string, data []byte) error {
	pending, err := renameio.NewPendingFile(path)
	if err != nil {
		return errors.New("E401").WithSource(path).Wrap(err)
	}
	defer pending.Cleanup()

	if _, err := pending.Write(data); err != nil {
		return errors.New("E401").WithSource(path).Wrap(err)
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return errors.New("E401").WithSource(path).Wrap(err)
	}
	return nil
}
