// Package commands defines the stddraw-demo CLI.
//
// Commands
//
//   - shapes    Draw the classic shape gallery
//   - text      Draw centered text samples
//   - interact  Echo typed keys and mark mouse clicks
//
// # Implementation
//
// The root command configures a shared canvas before any subcommand
// runs. With --output the canvas stays headless and the result lands
// in an image file; without it the ebiten window backend opens a real
// window and the scene stays up until the window is closed.
package commands
