package graphics

import (
	"hexball/internal/engineconfig"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Run opens the window and runs the main loop. Each frame it calls update (one physics tick),
// then clears the screen and calls draw. raylib paces the loop at the configured FPS, which
// is also the simulation tick rate. Close via the window button or ESC.
func Run(cfg engineconfig.WindowConfig, update, draw func()) {
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), cfg.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.FPS))

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(rl.White)
		draw()
		rl.EndDrawing()
	}
}
