package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"viso/internal/tui"
)

// tuiCmd opens the file in the full-screen editor.
var tuiCmd = &cobra.Command{
	Use:   "tui [file]",
	Short: "Edit the file in a full-screen view",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession(args[0])
		if err != nil {
			return err
		}
		return tui.Run(sess, viper.GetString("prompt"))
	},
}
