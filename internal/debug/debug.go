package debug

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"hexball/internal/sim"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh the text every N frames to reduce allocations.
	updateInterval = 15
)

var (
	fpsColor   = rl.NewColor(0, 150, 0, 255)
	statsColor = rl.DarkGray
	alertColor = rl.Red
)

// Debug holds the text overlays drawn over the scene. All overlays are off by default.
type Debug struct {
	ShowFPS   bool
	ShowStats bool

	frameCount uint32
	fpsText    string
	tickText   string
	ballText   string
	escaped    bool
}

// New returns a Debug overlay with the given overlays enabled.
func New(showFPS, showStats bool) *Debug {
	return &Debug{ShowFPS: showFPS, ShowStats: showStats}
}

// Draw renders the enabled overlays in the top-left corner. Call after the scene.
// FPS is drawn in green; tick and ball stats under it. A red warning is shown once the ball has
// left the cage (it tunnelled through a wall).
// Text is only recomputed every updateInterval frames to limit allocations.
func (d *Debug) Draw(st sim.State) {
	d.frameCount++
	update := d.frameCount%updateInterval == 0 || d.fpsText == ""
	if update {
		d.fpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		d.tickText = fmt.Sprintf("tick %d  contacts %d", st.Tick, st.Contacts)
		d.ballText = fmt.Sprintf("ball (%.0f, %.0f)  %.0f px/s  KE %.0f", st.Position.X, st.Position.Y, st.Speed, st.Energy)
	}
	if !st.Contained {
		d.escaped = true
	}

	y := int32(padding)
	if d.ShowFPS {
		rl.DrawText(d.fpsText, padding, y, fontSize, fpsColor)
		y += lineHeight
	}
	if d.ShowStats {
		rl.DrawText(d.tickText, padding, y, fontSize, statsColor)
		y += lineHeight
		rl.DrawText(d.ballText, padding, y, fontSize, statsColor)
		y += lineHeight
	}
	if d.escaped {
		rl.DrawText("ball escaped the cage", padding, y, fontSize, alertColor)
	}
}
