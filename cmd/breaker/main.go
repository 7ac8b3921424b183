// Package main provides the CLI entrypoint for breaker.
package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/breaker/internal/audio"
	"github.com/verte-zerg/breaker/internal/config"
	"github.com/verte-zerg/breaker/internal/game"
	"github.com/verte-zerg/breaker/internal/model"
	"github.com/verte-zerg/breaker/internal/session"
	"github.com/verte-zerg/breaker/internal/store"
	"github.com/verte-zerg/breaker/internal/tui"
	"github.com/verte-zerg/breaker/internal/wordlist"
)

const (
	defaultDuration   = session.DefaultDurationSec
	defaultBackground = "white"
	defaultVolume     = 1.0
	defaultFOV        = 45.0
)

var (
	playDuration     int
	playBackground   string
	playSound        bool
	playVolume       float64
	playSeed         int64
	playFOV          float64
	playNegativeFile string
	playPositiveFile string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "breaker",
		Short:         "Break stressful words in a terminal shooting gallery",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPlayCmd,
	}
	addGameFlags(rootCmd)

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newWordsCmd())

	return rootCmd
}

func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&playDuration, "duration", defaultDuration, "round length in seconds")
	cmd.Flags().StringVar(&playBackground, "background", defaultBackground, "scene: white, space or school")
	cmd.Flags().BoolVar(&playSound, "sound", true, "play impact sounds")
	cmd.Flags().Float64Var(&playVolume, "volume", defaultVolume, "sound volume (0-1)")
	cmd.Flags().Int64Var(&playSeed, "seed", 0, "random seed for spawns (0 = time based)")
	cmd.Flags().Float64Var(&playFOV, "fov", defaultFOV, "vertical field of view in degrees")
	cmd.Flags().StringVar(&playNegativeFile, "negative-file", "", "file with one negative word per line")
	cmd.Flags().StringVar(&playPositiveFile, "positive-file", "", "file with one positive word per line")
}

func runPlayCmd(cmd *cobra.Command, _ []string) error {
	cfg, volume, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("breaker needs an interactive terminal")
	}

	st, err := store.Open(store.MemoryPath)
	if err != nil {
		return fmt.Errorf("failed to open round board: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close round board: %v\n", cerr)
		}
	}()

	sound, closeSound, err := audio.Open(cfg.Sound, volume)
	if err != nil {
		logErrf("sound disabled: %v\n", err)
	}
	defer closeSound()

	g := game.New(cfg, game.Options{Sound: sound, Board: st})
	program := tea.NewProgram(tui.NewModel(g, cfg.FOV), tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// resolveConfig merges the config file under the command line flags and loads
// word files.
func resolveConfig(cmd *cobra.Command) (model.Config, float64, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, 0, fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "duration", &playDuration, fileCfg.Game.Duration)
	applyStringConfig(cmd, "background", &playBackground, fileCfg.Game.Background)
	applyBoolConfig(cmd, "sound", &playSound, fileCfg.Game.Sound)
	applyFloatConfig(cmd, "volume", &playVolume, fileCfg.Game.Volume)
	applyInt64Config(cmd, "seed", &playSeed, fileCfg.Game.Seed)
	applyFloatConfig(cmd, "fov", &playFOV, fileCfg.Game.FOV)
	applyStringConfig(cmd, "negative-file", &playNegativeFile, fileCfg.Words.NegativeFile)
	applyStringConfig(cmd, "positive-file", &playPositiveFile, fileCfg.Words.PositiveFile)

	cfg := model.Config{
		DurationSec:  playDuration,
		Background:   playBackground,
		Sound:        playSound,
		Seed:         playSeed,
		FOV:          playFOV,
		NegativeSeed: fileCfg.Words.Negative,
		PositiveSeed: fileCfg.Words.Positive,
	}
	if err := validateConfig(cfg); err != nil {
		return model.Config{}, 0, err
	}
	if playVolume < 0 || playVolume > 1 {
		return model.Config{}, 0, fmt.Errorf("--volume must be between 0 and 1")
	}

	if playNegativeFile != "" {
		words, err := loadWordFile(playNegativeFile)
		if err != nil {
			return model.Config{}, 0, err
		}
		cfg.NegativeSeed = words
	}
	if playPositiveFile != "" {
		words, err := loadWordFile(playPositiveFile)
		if err != nil {
			return model.Config{}, 0, err
		}
		cfg.PositiveSeed = words
	}
	return cfg, playVolume, nil
}

func loadWordFile(path string) ([]string, error) {
	resolved := config.ResolveWordsPath(path)
	words, err := wordlist.LoadWords(resolved)
	if err != nil {
		return nil, fmt.Errorf("failed to load words from %s: %w", resolved, err)
	}
	return words, nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newWordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "words",
		Short: "Print the effective negative and positive word lists",
		Args:  cobra.NoArgs,
		RunE:  runWordsCmd,
	}
	addGameFlags(cmd)
	return cmd
}

func runWordsCmd(cmd *cobra.Command, _ []string) error {
	cfg, _, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	reg := wordlist.NewRegistry(cfg.NegativeSeed, cfg.PositiveSeed)
	return printWords(cmd.OutOrStdout(), reg)
}

func printWords(w io.Writer, reg *wordlist.Registry) error {
	sections := []struct {
		title string
		list  *wordlist.List
	}{
		{"negative", reg.Negative},
		{"positive", reg.Positive},
	}
	for i, section := range sections {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
		}
		title := section.title
		if section.list.Len() == 0 {
			title += " (defaults)"
		}
		if _, err := fmt.Fprintf(w, "[%s]\n", title); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		for _, word := range section.list.Effective() {
			if _, err := fmt.Fprintln(w, word); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
		}
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyInt64Config(cmd *cobra.Command, name string, target, value *int64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# breaker configuration
# Uncomment a value to enable it. CLI flags override config values.

[game]
# duration = %d           # Round length in seconds
# background = %q    # white, space or school
# sound = true            # Play impact sounds
# volume = %.1f           # Sound volume (0-1)
# seed = 0                # Spawn seed, 0 picks one from the clock
# fov = %.0f              # Vertical field of view in degrees

[words]
# negative = ["deadline", "overtime"]   # Labels shown on targets
# positive = ["calm", "you did great"]  # Labels revealed on hit
# negative-file = "negative.txt"        # One label per line, relative to %s
# positive-file = "positive.txt"
`,
		defaultDuration,
		defaultBackground,
		defaultVolume,
		defaultFOV,
		config.DefaultWordsDir(),
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.DurationSec <= 0 {
		return fmt.Errorf("--duration must be > 0")
	}
	if _, err := session.ParseBackground(cfg.Background); err != nil {
		return fmt.Errorf("--background: %w", err)
	}
	if cfg.FOV <= 0 || cfg.FOV >= 180 {
		return fmt.Errorf("--fov must be between 0 and 180")
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
