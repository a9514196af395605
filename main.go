package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/gogpu/gg"
	"github.com/spf13/cobra"

	"github.com/ytget/swipecards/internal/config"
	"github.com/ytget/swipecards/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.swipecards"
	AppName = "Swipe Cards"
)

var (
	deckPath  string
	threshold float64
	envFile   string
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:     "swipecards",
	Short:   "Swipe through a stack of cards",
	Long:    `Swipe Cards shows a deck of cards as a stack. Drag the top card left or right past the threshold to swipe it away.`,
	Version: version,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		run(cmd)
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVarP(&deckPath, "deck", "d", "", "deck file (TOML) to load")
	rootCmd.Flags().Float64VarP(&threshold, "threshold", "t", 0, "horizontal distance that commits a swipe")
	rootCmd.Flags().StringVar(&envFile, "env", ".env", "optional env file with SWIPECARDS_* overrides")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log rendering diagnostics")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command) {
	log.Printf("%s v%s starting...", AppName, version)

	if verbose {
		gg.SetLogger(slog.Default())
	}

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCardTheme())

	// Flags win over env overrides, which win over stored preferences
	settings := config.NewSettings(myApp)
	settings.LoadEnv(envFile)
	if cmd.Flags().Changed("deck") {
		settings.OverrideDeckPath(deckPath)
	}
	if cmd.Flags().Changed("threshold") {
		settings.OverrideSwipeThreshold(threshold)
	}

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	ui.NewRootUI(myWindow, settings)

	myWindow.ShowAndRun()
}
