package commands

import (
	"github.com/spf13/cobra"

	"github.com/gogpu/stddraw"
)

func textCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "text",
		Short: "Draw centered text samples",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := canvas
			c.Clear()

			c.SetPenColor(stddraw.DarkGreen)
			c.SetFontSize(24)
			c.Text(0.5, 0.6, "hello, world")

			c.SetPenColor(stddraw.BookBlue)
			c.SetFontFamily("Courier")
			c.SetFontSize(16)
			c.Text(0.5, 0.4, "stddraw")

			return finish()
		},
	}
}
