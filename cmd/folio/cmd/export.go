package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/as1coder/portfolioBuilder/internal/app"
	"github.com/as1coder/portfolioBuilder/internal/config"
	"github.com/as1coder/portfolioBuilder/internal/portfolio"
	"github.com/as1coder/portfolioBuilder/internal/storage"
	"github.com/as1coder/portfolioBuilder/internal/templateregistry"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	exportFormat string
	exportOut    string
	exportDark   bool
)

var exportCmd = &cobra.Command{
	Use:   "export <userid>",
	Short: "Export a portfolio as json, yaml or html",
	Long: `Export reads a portfolio from the store and writes it to stdout, or to
the file given with --out. The html format renders the portfolio with its
template, exactly as served at /<userid>.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		return withBackend(ctx, func(cfg config.Provider, b *app.Backend) error {
			svc := portfolio.NewService(b.Store, cfg.GetAppBaseURL())
			p, err := svc.Get(ctx, args[0])
			if err != nil {
				return err
			}
			data, err := encodePortfolio(svc, p, exportFormat, exportDark)
			if err != nil {
				return err
			}

			if exportOut == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			n, err := storage.NewAferoStore(appFs).Save(ctx, exportOut, bytes.NewReader(data))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d bytes to %s\n", n, exportOut)
			return nil
		})
	},
}

// encodePortfolio renders p in one of the export formats. YAML keys match
// the JSON API.
func encodePortfolio(svc *portfolio.Service, p *portfolio.Portfolio, format string, dark bool) ([]byte, error) {
	switch format {
	case "json":
		data, err := json.MarshalIndent(p, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case "yaml":
		raw, err := json.Marshal(p)
		if err != nil {
			return nil, err
		}
		var doc map[string]any
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
		return yaml.Marshal(doc)
	case "html":
		var buf bytes.Buffer
		node := templateregistry.Render(templateregistry.Parse(p.Template), svc.Page(p, dark))
		if err := node.Render(&buf); err != nil {
			return nil, fmt.Errorf("render %s: %w", p.Template, err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unknown format %q (want json, yaml or html)", format)
	}
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "output format: json, yaml or html")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "write to this file instead of stdout")
	exportCmd.Flags().BoolVar(&exportDark, "dark", false, "render html in the dark theme")
	rootCmd.AddCommand(exportCmd)
}
