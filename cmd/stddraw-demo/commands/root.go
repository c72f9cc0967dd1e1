package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/stddraw"
	"github.com/gogpu/stddraw/backend"

	// Real window backend; selected unless --output forces headless.
	_ "github.com/gogpu/stddraw/backend/ebitenwin"
)

var (
	width   int
	height  int
	output  string
	verbose bool

	canvas *stddraw.Canvas
)

func Execute() error {
	root := &cobra.Command{
		Use:   "stddraw-demo",
		Short: "Demonstrations of the stddraw drawing surface",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				stddraw.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
			}
			opts := []stddraw.Option{stddraw.WithSize(width, height)}
			if output != "" {
				opts = append(opts, stddraw.WithBackend(backend.BackendHeadless))
			}
			canvas = stddraw.New(opts...)
		},
	}

	root.PersistentFlags().IntVar(&width, "width", 512, "canvas width in pixels")
	root.PersistentFlags().IntVar(&height, "height", 512, "canvas height in pixels")
	root.PersistentFlags().StringVarP(&output, "output", "o", "", "render headlessly to this file instead of a window")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log to stderr")

	root.AddCommand(shapesCmd(), textCmd(), interactCmd())
	return root.Execute()
}

// finish either saves the scene or keeps the window up until closed.
func finish() error {
	if output != "" {
		return canvas.Save(output)
	}
	err := canvas.Wait()
	if err == stddraw.ErrWindowClosed {
		return nil
	}
	return err
}
