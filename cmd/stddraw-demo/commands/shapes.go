package commands

import (
	"github.com/spf13/cobra"

	"github.com/gogpu/stddraw"
)

func shapesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shapes",
		Short: "Draw the classic shape gallery",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := canvas
			c.Clear()

			c.SetPenRadius(0.5)
			c.SetPenColor(stddraw.Orange)
			c.Point(0.5, 0.5)

			c.SetPenRadius(0.25)
			c.SetPenColor(stddraw.Blue)
			c.Point(0.5, 0.5)

			c.SetPenRadius(0.02)
			c.SetPenColor(stddraw.Red)
			c.Point(0.25, 0.25)

			c.SetPenRadius(0)
			c.SetPenColor(stddraw.Cyan)
			for i := 0; i < 100; i++ {
				c.Point(float64(i)/512.0, 0.5)
				c.Point(0.5, float64(i)/512.0)
			}

			c.SetPenColor(stddraw.Magenta)
			c.Line(0.1, 0.1, 0.3, 0.3)
			c.Line(0.1, 0.2, 0.3, 0.2)
			c.Line(0.2, 0.1, 0.2, 0.3)

			c.SetPenRadius(0.05)
			c.Line(0.7, 0.5, 0.8, 0.9)

			c.SetPenRadius(0.01)
			c.SetPenColor(stddraw.Yellow)
			c.Circle(0.75, 0.25, 0.2)
			c.FilledCircle(0.75, 0.25, 0.1)

			c.SetPenColor(stddraw.Pink)
			c.Rectangle(0.25, 0.75, 0.1, 0.2)
			c.FilledRectangle(0.25, 0.75, 0.05, 0.1)

			c.SetPenColor(stddraw.DarkRed)
			c.Square(0.5, 0.5, 0.1)
			c.FilledSquare(0.5, 0.5, 0.05)

			c.SetPenColor(stddraw.DarkBlue)
			c.Polygon([]float64{0.4, 0.5, 0.6}, []float64{0.7, 0.8, 0.7})

			return finish()
		},
	}
}
