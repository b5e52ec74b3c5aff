package cmd

import (
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/carlmjohnson/versioninfo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"viso/internal/core"
	"viso/internal/session"
)

var (
	// Version is public so users can optionally specify or override the version
	// at build time by passing in ldflags, e.g.
	//   go build -ldflags "-X viso/cmd/viso/cmd.Version=vX.Y.Z"
	Version = ""
)

type arg struct {
	cliShort, description, defaultString string
	isBool, isInt, defaultIfBool          bool
	defaultIfInt                          int
}

var rootNameToArg = map[string]arg{
	"prompt": {
		description:   `Prompt printed before each command`,
		defaultString: "> ",
	},
	"restore-cursor": {
		cliShort:    "r",
		description: `If present, reopen files at the cursor line remembered from the last save`,
		isBool:      true,
	},
	"state-file": {
		description:   `File where cursor positions are remembered when --restore-cursor is set`,
		defaultString: ".viso_state.json",
	},
	"file-mode": {
		description:  `Permission bits for files created on open`,
		isInt:        true,
		defaultIfInt: 0644,
	},
}

var envKeyReplacer = strings.NewReplacer("-", "_")

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "viso [file]",
	Short: "A minimal line-oriented text editor",
	Long: `viso loads a file into memory and edits it one line at a time with short commands:

  sf        show the file              sc [N]   show N lines around the cursor
  cu [N]    cursor up N lines          cd [N]   cursor down N lines
  ct N      cursor to line N           nl TEXT  new line after the cursor
  dl        delete the cursor line     lc       line count
  wc        word count                 cc       character count
  s         save                       q        quit

The file is created if it does not exist.`,
	Args:    cobra.ExactArgs(1),
	Version: getVersion(),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession(args[0])
		if err != nil {
			return err
		}
		d := core.NewDispatcher(sess.Editor(), sess)
		return core.Run(d, cmd.InOrStdin(), cmd.OutOrStdout(), viper.GetString("prompt"))
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	for _, name := range []string{"prompt", "restore-cursor", "state-file", "file-mode"} {
		a := rootNameToArg[name]
		switch {
		case a.isBool:
			rootCmd.PersistentFlags().BoolP(name, a.cliShort, a.defaultIfBool, a.description)
		case a.isInt:
			rootCmd.PersistentFlags().IntP(name, a.cliShort, a.defaultIfInt, a.description)
		default:
			rootCmd.PersistentFlags().StringP(name, a.cliShort, a.defaultString, a.description)
		}
		_ = viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}
	rootCmd.SetVersionTemplate(`{{printf "viso %s\n" .Version}}`)
	rootCmd.AddCommand(tuiCmd)
}

func initConfig(cmd *cobra.Command) error {
	viper.SetEnvPrefix("viso")
	viper.SetEnvKeyReplacer(envKeyReplacer)
	viper.AutomaticEnv()

	viper.SetConfigName(".viso")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(homeDir())
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config: %w", err)
		}
	}

	bindFlags(cmd)
	return nil
}

// bindFlags applies config file and environment values to flags the user
// did not set on the command line.
func bindFlags(cmd *cobra.Command) {
	v := viper.GetViper()
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if !f.Changed && v.IsSet(f.Name) {
			_ = cmd.Flags().Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})
}

func openSession(path string) (*session.Session, error) {
	opts := session.Options{
		FileMode:      fs.FileMode(viper.GetInt("file-mode")),
		RestoreCursor: viper.GetBool("restore-cursor"),
	}
	if opts.RestoreCursor {
		opts.States = core.NewFileStateStore(viper.GetString("state-file"))
	}
	return session.Open(path, opts)
}

func getVersion() string {
	if Version != "" {
		return Version
	}
	return versioninfo.Short()
}

func homeDir() string {
	if h, err := os.UserHomeDir(); err == nil {
		return h
	}
	return "."
}
