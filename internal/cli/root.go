package cli

import (
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	ygodeck "github.com/m0t0k1ch1/ygo-deckcode-go"
	"github.com/m0t0k1ch1/ygo-deckcode-go/catalog"
	"github.com/m0t0k1ch1/ygo-deckcode-go/deckcode"
	"github.com/m0t0k1ch1/ygo-deckcode-go/internal/config"
)

type app struct {
	configPath  string
	catalogPath string
	verbose     bool
	noColor     bool

	cfg    config.Config
	logger *slog.Logger
	codec  *deckcode.Codec
}

// NewRootCommand returns the ygodeck command with every subcommand attached.
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "ygodeck",
		Short: "Tool for decoding, encoding and validating deck links",
		Long: `ygodeck converts decks between ydke:// URIs, compact URL query values,
legacy query values and ydk files, and validates them against a format.
Cards are resolved with a local catalog file (YAML or TOML).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", config.FilePath(), "Path to the config file")
	rootCmd.PersistentFlags().StringVarP(&a.catalogPath, "catalog", "c", "", "Path to a catalog file (overrides the config)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(
		newDecodeCommand(a),
		newEncodeCommand(a),
		newConvertCommand(a),
		newValidateCommand(a),
	)

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.catalogPath != "" {
		cfg.CatalogPath = a.catalogPath
	}
	if a.noColor {
		cfg.NoColor = true
	}
	a.cfg = cfg

	if cfg.NoColor || !isTerminal(cmd) {
		color.NoColor = true
	}

	if cfg.CatalogPath == "" {
		return errors.New("no catalog configured, use --catalog or set catalog in " + a.configPath)
	}

	c, err := catalog.LoadFile(cfg.CatalogPath)
	if err != nil {
		return errors.Wrapf(err, "failed to load catalog %s", cfg.CatalogPath)
	}
	a.logger.Debug("loaded catalog", "path", cfg.CatalogPath, "cards", c.Len())

	a.codec = deckcode.New(c)

	return nil
}

func (a *app) format(override string) (ygodeck.Format, error) {
	name := a.cfg.Format
	if override != "" {
		name = override
	}

	return ygodeck.ParseFormat(name)
}

func isTerminal(cmd *cobra.Command) bool {
	f, ok := cmd.OutOrStdout().(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
