// Package cli: play.go implements the "guessing-game play" command.
//
// The play command resolves the configuration, draws the secret and runs
// one game session against stdin/stdout. The root command delegates here
// as well, so `guessing-game` and `guessing-game play` are equivalent.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/shinji-kodama/guessing-game/internal/config"
	"github.com/shinji-kodama/guessing-game/internal/feedback"
	"github.com/shinji-kodama/guessing-game/internal/game"
	"github.com/shinji-kodama/guessing-game/internal/logging"
	"github.com/shinji-kodama/guessing-game/internal/model"
	"github.com/shinji-kodama/guessing-game/internal/secret"
)

// playFlags holds the flag values for the play command.
// A flag only overrides the config file when it was set explicitly.
type playFlags struct {
	min    int
	max    int
	seed   uint64
	reveal bool
}

// NewPlayCommand creates the "play" cobra command.
func NewPlayCommand() *cobra.Command {
	flags := &playFlags{}

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play one game",
		Long: `Play one game of guess-the-number.

The secret is drawn from [min, max): with the default range 1-100 you may
guess 100, but 100 is never the secret.

Examples:
  guessing-game play
  guessing-game play --min 1 --max 10
  guessing-game play --seed 42 --reveal
  printf '50\n25\n' | guessing-game play --json --seed 7`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, flags)
		},
	}

	bindPlayFlags(cmd, flags)
	return cmd
}

// bindPlayFlags registers the game flags on cmd.
func bindPlayFlags(cmd *cobra.Command, flags *playFlags) {
	cmd.Flags().IntVar(&flags.min, "min", 0, "Smallest accepted guess (default 1)")
	cmd.Flags().IntVar(&flags.max, "max", 0, "Largest accepted guess (default 100)")
	cmd.Flags().Uint64Var(&flags.seed, "seed", 0, "Seed for a reproducible secret (0 = random)")
	cmd.Flags().BoolVar(&flags.reveal, "reveal", false, "Show the secret before the first prompt")
}

// apply copies explicitly set flags over cfg.
func (f *playFlags) apply(fs *pflag.FlagSet, cfg *config.Config) {
	if fs.Changed("min") {
		cfg.Min = f.min
	}
	if fs.Changed("max") {
		cfg.Max = f.max
	}
	if fs.Changed("seed") {
		cfg.Seed = f.seed
	}
	if fs.Changed("reveal") {
		cfg.RevealSecret = f.reveal
	}
}

// resolveConfig loads the effective configuration for the current working
// directory and the global --config flag.
func resolveConfig() (*config.Config, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, model.WrapCLIError(model.ExitGeneralError, "failed to determine working directory", err)
	}
	return config.Resolve(configPath, dir)
}

// runPlay is the main logic function for the play command.
func runPlay(cmd *cobra.Command, flags *playFlags) error {
	// Step 1: Build the effective configuration and validate it.
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	flags.apply(cmd.Flags(), cfg)
	if err := config.Check(cfg); err != nil {
		return err
	}

	// Step 2: Configure logging on stderr.
	logger := logging.Setup(logging.Options{
		Out:     cmd.ErrOrStderr(),
		Level:   cfg.LogLevel,
		Verbose: verbose,
		JSON:    jsonOutput,
	})
	if cfg.Source != "" {
		logger.Debug().Str("path", cfg.Source).Msg("config loaded")
	}

	// Step 3: Draw the secret. It stays fixed for the whole session.
	picker := secret.NewRandomPicker()
	if cfg.Seed != 0 {
		picker = secret.NewSeededPicker(cfg.Seed)
	}
	value, err := picker.Draw(cfg.Bounds())
	if err != nil {
		return model.WrapCLIError(model.ExitConfigInvalid, "failed to draw the secret", err)
	}

	// Step 4: Pick the renderer. In JSON mode, stdout carries only events,
	// so the validator's diagnostic goes to stderr instead.
	sessionID := game.NewSessionID()
	out := cmd.OutOrStdout()
	diagnostics := out
	var reporter feedback.Reporter = feedback.NewTextReporter(out)
	if jsonOutput {
		reporter = feedback.NewJSONReporter(out, sessionID)
		diagnostics = cmd.ErrOrStderr()
	}

	// Step 5: Play.
	session := game.NewSession(value, cmd.InOrStdin(), reporter, game.Options{
		SessionID:   sessionID,
		Bounds:      cfg.Bounds(),
		Reveal:      cfg.RevealSecret,
		Diagnostics: diagnostics,
		Logger:      &logger,
	})
	res, err := session.Run()
	if err != nil {
		return err
	}

	logResult(logger, res)
	return nil
}

// logResult records the finished game at debug level.
func logResult(logger zerolog.Logger, res *model.Result) {
	logger.Debug().
		Str("session", res.SessionID).
		Int("attempts", res.Attempts).
		Int("rejected", res.Rejected).
		Ints("guesses", res.Guesses).
		Msg("game finished")
}
