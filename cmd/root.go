// Package cmd implements the command-line interface for mediabar.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/mediabar-cli/mediabar/color"
	"github.com/mediabar-cli/mediabar/constant"
	"github.com/mediabar-cli/mediabar/controlbar"
	"github.com/mediabar-cli/mediabar/icon"
	"github.com/mediabar-cli/mediabar/key"
	"github.com/mediabar-cli/mediabar/log"
	"github.com/mediabar-cli/mediabar/style"
	"github.com/mediabar-cli/mediabar/tui"
	"github.com/mediabar-cli/mediabar/util"
	"github.com/mediabar-cli/mediabar/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")
	rootCmd.Flags().StringP("title", "t", "", "Override the media title shown in the bar and the player window")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, plain)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().BoolP("reduce-motion", "R", false, "Skip panel transitions and hide the settings panel immediately on close")
	lo.Must0(viper.BindPFlag(key.MotionReduce, rootCmd.PersistentFlags().Lookup("reduce-motion")))

	rootCmd.PersistentFlags().Bool("rtl", false, "Honor right-to-left directionality for arrow-key focus traversal")
	lo.Must0(viper.BindPFlag(key.TUIRTLArrows, rootCmd.PersistentFlags().Lookup("rtl")))

	rootCmd.PersistentFlags().Bool("mouse", true, "Enable mouse support")
	lo.Must0(viper.BindPFlag(key.TUIMouse, rootCmd.PersistentFlags().Lookup("mouse")))

	rootCmd.Flags().StringSlice("hide", []string{}, "Hide controls from the bar (play-pause, mute, scrubber, settings, fullscreen)")

	// Initialize cleanup of localized temporary files on application startup.
	go func() {
		_ = util.Delete(where.Temp())
	}()
}

// rootCmd defines the entry point for the mediabar application.
var rootCmd = &cobra.Command{
	Use:   constant.Mediabar + " <file|url>",
	Short: "An accessible media control bar for the terminal",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - An accessible media control bar for the terminal"),
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		if len(args) == 0 {
			handleErr(cmd.Help())
			return
		}

		CheckDependencies()

		target := args[0]
		title := lo.Must(cmd.Flags().GetString("title"))
		if title == "" {
			title = filepath.Base(target)
		}

		options := tui.Options{
			Target:   target,
			Title:    title,
			Controls: visibleControls(lo.Must(cmd.Flags().GetStringSlice("hide"))),
		}
		handleErr(tui.Run(&options))
	},
}

// visibleControls resolves the control set after applying --hide. Unknown
// names are ignored; hiding everything falls back to the full set so the bar
// never starts without a focus group.
func visibleControls(hidden []string) []controlbar.Control {
	byName := map[string]controlbar.Control{
		"play-pause": controlbar.ControlPlayPause,
		"mute":       controlbar.ControlMute,
		"scrubber":   controlbar.ControlScrubber,
		"settings":   controlbar.ControlSettings,
		"fullscreen": controlbar.ControlFullscreen,
	}

	excluded := make(map[controlbar.Control]struct{})
	for _, name := range hidden {
		if c, ok := byName[strings.ToLower(strings.TrimSpace(name))]; ok {
			excluded[c] = struct{}{}
		}
	}

	all := []controlbar.Control{
		controlbar.ControlPlayPause,
		controlbar.ControlMute,
		controlbar.ControlScrubber,
		controlbar.ControlSettings,
		controlbar.ControlFullscreen,
	}

	controls := lo.Filter(all, func(c controlbar.Control, _ int) bool {
		_, ok := excluded[c]
		return !ok
	})

	if len(controls) == 0 {
		return all
	}
	return controls
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
