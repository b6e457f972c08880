package cmd

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/dotree-sh/dotree/common"
	"github.com/dotree-sh/dotree/conf"
	"github.com/dotree-sh/dotree/dtree"
	"github.com/dotree-sh/dotree/engine"
	"github.com/dotree-sh/dotree/input"
	"github.com/dotree-sh/dotree/pathlib"
	"github.com/dotree-sh/dotree/pretty"
	"github.com/dotree-sh/dotree/render"
	"github.com/dotree-sh/dotree/settings"
	"github.com/dotree-sh/dotree/shell"
	"github.com/spf13/cobra"
)

const localConfigName = ".dotree.dt"

var (
	configFile   string
	localMode    bool
	debugFlag    bool
	traceFlag    bool
	silentFlag   bool
	noColorsFlag bool
)

var rootCmd = &cobra.Command{
	Use:     "dt [KEYS [VALUE ...]]",
	Short:   "Interactive tree-of-menus command launcher.",
	Version: common.Version,
	Long: `dt reads a declarative configuration describing a tree of menus that
lead to shell commands, then lets you trigger them with short key
sequences. Without arguments it runs fully interactively; with one
argument the characters are replayed as if typed, and any further
arguments feed command variables positionally.`,
	Args: cobra.ArbitraryArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColorsFlag {
			pretty.Colorless = true
			pretty.Disabled = true
		}
		common.DefineVerbosity(silentFlag, debugFlag, traceFlag)
	},
	Run: func(cmd *cobra.Command, args []string) {
		defer common.Stopwatch("Session lasted").Debug()
		path, directory := resolveConfig()
		session := summonSession(path, directory)

		keys := ""
		var values []string
		if len(args) > 0 {
			keys = args[0]
			values = args[1:]
		}

		pretty.HideCursor()
		defer pretty.ShowCursor()
		err := session.Run(keys, values)
		if err == nil {
			return
		}
		failure := &engine.CommandFailure{}
		if errors.As(err, &failure) {
			pretty.Exit(failure.Code, "Command failed: %v", err)
		}
		pretty.Exit(1, "%v", err)
	},
}

func Execute() {
	err := rootCmd.Execute()
	pretty.Guard(err == nil, 1, "Error: %v", err)
}

func init() {
	rootCmd.Flags().StringVarP(&configFile, "file", "f", "", "Path to the configuration file to use.")
	rootCmd.Flags().BoolVarP(&localMode, "local", "l", false, "Search upward from the working directory for a "+localConfigName+" file.")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Turn on debugging output.")
	rootCmd.PersistentFlags().BoolVar(&traceFlag, "trace", false, "Turn on tracing output.")
	rootCmd.PersistentFlags().BoolVar(&silentFlag, "silent", false, "Be less verbose.")
	rootCmd.PersistentFlags().BoolVar(&noColorsFlag, "no-colors", false, "Do not use colors in output.")
}

// resolveConfig picks the configuration file and the working
// directory commands run in: explicit flag, then local mode search,
// then DT_CONFIG, then the user configuration directory. Commands run
// in the configuration's directory.
func resolveConfig() (string, string) {
	if configFile != "" {
		path, err := pathlib.Abs(configFile)
		pretty.Guard(err == nil, 1, "Cannot resolve %q: %v", configFile, err)
		return path, filepath.Dir(path)
	}
	if localMode {
		start, err := os.Getwd()
		pretty.Guard(err == nil, 1, "Cannot resolve working directory: %v", err)
		found, ok := pathlib.FindUpwards(start, localConfigName)
		pretty.Guard(ok, 1, "No %q found searching upward from %q.", localConfigName, start)
		return found, filepath.Dir(found)
	}
	if override := settings.ConfigOverride(); override != "" {
		return override, filepath.Dir(override)
	}
	path, err := pathlib.UserConfigFile()
	pretty.Guard(err == nil, 1, "Cannot resolve user configuration directory: %v", err)
	return path, filepath.Dir(path)
}

func summonSession(path, directory string) *engine.Session {
	defer common.Stopwatch("Configuration load took").Debug()

	blob, err := os.ReadFile(path)
	pretty.Guard(err == nil, 1, "Cannot read configuration %q: %v", path, err)

	tree, err := conf.Parse(string(blob))
	if err != nil {
		syntax := &conf.SyntaxError{}
		if errors.As(err, &syntax) {
			common.Log("%s", syntax.Snippet())
		}
		pretty.Exit(1, "Cannot parse configuration %q: %v", path, err)
	}

	config, err := dtree.Build(tree)
	pretty.Guard(err == nil, 1, "Invalid configuration %q: %v", path, err)
	common.Debug("Loaded %d menus and %d snippets from %q.", len(config.Menus), len(config.Snippets), path)

	session := &engine.Session{
		Config:        config,
		Dir:           directory,
		Runner:        shell.New(),
		Lines:         input.Lines(),
		Display:       render.NewTerminal(),
		ShellOverride: settings.DefaultShell(),
		OnInvalidKey:  settings.OnInvalidKey(),
	}
	if pretty.Interactive {
		session.Keys = input.Keys()
	}
	return session
}
