package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/goto/tagger/core/asset"
	"github.com/goto/tagger/core/reference"
	"github.com/goto/tagger/internal/store"
)

// newServices builds the asset and reference services against the
// configured storage, the same wiring serve uses. Maintenance commands
// mutate the store directly; there is no client/server split since the
// target usage is a single operator.
func newServices(ctx context.Context, cfg *Config) (*asset.Service, *reference.Service, error) {
	logger := initLogger(cfg.LogLevel)

	backend, err := initStorage(ctx, logger, cfg.Storage)
	if err != nil {
		return nil, nil, err
	}

	assetService := asset.NewService(logger, store.NewAssetRepository(backend))
	referenceService := reference.NewService(logger, store.NewReferenceRepository(backend))
	return assetService, referenceService, nil
}

func cmdGenerate(cfg *Config) *cobra.Command {
	var country, manufacturer, name string
	var count int

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate sequential asset tags",
		Example: heredoc.Doc(`
			$ tagger generate --country EGY --manufacturer ZE --name "Zebra Printer"
			$ tagger generate --country KSA --manufacturer DE --name "Dell Laptop" --count 5
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfigFromFlag(cmd, cfg); err != nil {
				return err
			}

			assetService, _, err := newServices(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			generated, err := assetService.GenerateTags(cmd.Context(), country, manufacturer, name, count)
			if err != nil {
				return err
			}
			for _, ast := range generated {
				fmt.Printf("%s\t%s\n", ast.Tag, ast.Name)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&country, "country", "", "Country code, e.g. EGY")
	cmd.Flags().StringVar(&manufacturer, "manufacturer", "", "Manufacturer code, e.g. ZE")
	cmd.Flags().StringVar(&name, "name", "", "Asset name")
	cmd.Flags().IntVar(&count, "count", 1, "Number of tags to generate")
	_ = cmd.MarkFlagRequired("country")
	_ = cmd.MarkFlagRequired("manufacturer")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func cmdImport(cfg *Config) *cobra.Command {
	var fromFile string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import existing asset tags, one per line",
		Example: heredoc.Doc(`
			$ tagger import --file tags.txt
			$ cat tags.txt | tagger import
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfigFromFlag(cmd, cfg); err != nil {
				return err
			}

			var text []byte
			var err error
			if fromFile != "" {
				text, err = os.ReadFile(fromFile)
			} else {
				text, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return err
			}

			assetService, _, err := newServices(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			imported, err := assetService.Import(cmd.Context(), string(text))
			if err != nil {
				return err
			}
			fmt.Printf("imported %d tags\n", len(imported))
			return nil
		},
	}

	cmd.Flags().StringVar(&fromFile, "file", "", "Read tags from a file instead of stdin")

	return cmd
}

func cmdList(cfg *Config) *cobra.Command {
	var recent int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List issued asset tags",
		Example: heredoc.Doc(`
			$ tagger list
			$ tagger list --recent 10
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfigFromFlag(cmd, cfg); err != nil {
				return err
			}

			assetService, _, err := newServices(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			var assets []asset.Asset
			if recent > 0 {
				assets, err = assetService.Recent(cmd.Context(), recent)
			} else {
				assets, err = assetService.GetAll(cmd.Context())
			}
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "TAG\tNAME\tCREATED")
			for _, ast := range assets {
				fmt.Fprintf(w, "%s\t%s\t%s\n", ast.Tag, ast.Name, ast.DateCreated.Format("2006-01-02"))
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVar(&recent, "recent", 0, "Show only the N most recent tags")

	return cmd
}
