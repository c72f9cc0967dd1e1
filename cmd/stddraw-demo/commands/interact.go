package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/gogpu/stddraw"
)

func interactCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "interact",
		Short: "Echo typed keys and mark mouse clicks",
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != "" {
				return fmt.Errorf("interact needs a window; drop --output")
			}

			c := canvas
			c.Clear()
			c.SetPenColor(stddraw.Black)
			fmt.Println("Left click to draw, type keys to echo; close the window to quit.")

			for {
				if c.MousePressed() {
					x, _ := c.MouseX()
					y, _ := c.MouseY()
					c.FilledCircle(x, y, 0.02)
				}
				for c.HasNextKeyTyped() {
					r, _ := c.NextKeyTyped()
					fmt.Printf("%c", r)
				}
				if err := c.Show(50 * time.Millisecond); err != nil {
					if err == stddraw.ErrWindowClosed {
						fmt.Println()
						return nil
					}
					return err
				}
			}
		},
	}
}
