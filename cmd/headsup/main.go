package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sker65/headsup/client"
	"github.com/sker65/headsup/internal/appconfig"
	"github.com/sker65/headsup/internal/console"
	"github.com/sker65/headsup/internal/localstate"
	"github.com/sker65/headsup/internal/notify"
	"github.com/sker65/headsup/internal/theme"
)

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		// Failures from the console were already shown as notifications.
		if !console.IsReported(err) {
			log.Error().Err(err).Msg("command failed")
		}
		os.Exit(1)
	}
}

// root carries the state shared by all sub-commands of one invocation.
type root struct {
	debug    bool
	stateDir string

	cfg   *appconfig.Config
	store *localstate.Store
	app   *console.App
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	r := &root{}

	rootCmd := &cobra.Command{
		Use:           "headsup",
		Short:         "headsup administers a Headscale server",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return r.init(cmd)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&r.debug, "debug", "d", false, "Enable verbose debug output")
	rootCmd.PersistentFlags().StringVar(&r.stateDir, "state-dir", "", "Directory for local preferences (default ~/.headsup)")

	rootCmd.AddCommand(newHealthCmd(r))
	rootCmd.AddCommand(newUsersCmd(r))
	rootCmd.AddCommand(newNodesCmd(r))
	rootCmd.AddCommand(newPreAuthKeysCmd(r))
	rootCmd.AddCommand(newAPIKeysCmd(r))
	rootCmd.AddCommand(newPolicyCmd(r))
	rootCmd.AddCommand(newThemeCmd(r))

	return rootCmd
}

// init loads configuration, sets up logging and wires the console.
func (r *root) init(cmd *cobra.Command) error {
	cfg, err := appconfig.Load()
	if err != nil {
		return err
	}
	if r.debug {
		cfg.Debug = true
	}
	r.cfg = cfg

	appconfig.InitLogger(cmd.ErrOrStderr())
	appconfig.SetLogLevel(cfg.Level())
	if cfg.Debug {
		log.Debug().Msg("debug logging enabled")
	}

	mode := r.colorMode()

	c, err := client.New(client.WithDebugLogging(cfg.Debug))
	if err != nil {
		return err
	}

	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	r.app = &console.App{
		API:      c,
		Notifier: notify.New(errOut, theme.New(lipgloss.NewRenderer(errOut), mode)),
		Theme:    theme.New(lipgloss.NewRenderer(out), mode),
		Out:      out,
		In:       cmd.InOrStdin(),
		Timeout:  cfg.Timeout,
	}

	log.Debug().
		Str("color_mode", string(mode)).
		Dur("timeout", cfg.Timeout).
		Msg("console ready")
	return nil
}

// openStore opens the preferences store on first use.
func (r *root) openStore() (*localstate.Store, error) {
	if r.store != nil {
		return r.store, nil
	}
	stateDir := r.stateDir
	if stateDir == "" {
		stateDir = r.cfg.StateDir
	}
	store, err := localstate.Open(stateDir)
	if err != nil {
		return nil, fmt.Errorf("open local state: %w", err)
	}
	r.store = store
	return store, nil
}

// colorMode is the stored theme, or the default when local state is
// unavailable.
func (r *root) colorMode() localstate.ColorMode {
	store, err := r.openStore()
	if err != nil {
		log.Debug().Err(err).Msg("using default color mode")
		return localstate.DefaultColorMode
	}
	return store.ColorMode()
}

func newHealthCmd(r *root) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Show server health",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.app.Health(cmd.Context())
		},
	}
}

func newThemeCmd(r *root) *cobra.Command {
	return &cobra.Command{
		Use:       "theme [dark|light|toggle]",
		Short:     "Show or change the color theme",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"dark", "light", "toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var arg string
			if len(args) == 1 {
				arg = args[0]
			}
			store, err := r.openStore()
			if err != nil {
				return err
			}
			return r.app.ColorMode(store, arg)
		},
	}
}
