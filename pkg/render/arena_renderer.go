package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"pixel-survivor/internal/config"
	"pixel-survivor/internal/defs"
	"pixel-survivor/internal/entity"
	"pixel-survivor/internal/input"
	"pixel-survivor/internal/utils"
)

const (
	glowLayers    = 3
	glowStep      = 5.0
	glowAlpha     = 36
	playerBarW    = 40.0
	playerBarH    = 6.0
	playerBarOffY = 35.0
	enemyBarH     = 4.0
	enemyBarOffY  = 8.0
	strikeWidth   = 8.0
	countdownW    = 80.0
	countdownH    = 40.0
	countdownTop  = 60.0
)

// ArenaRenderer draws a read-only projection of the entity store. It never
// mutates the store.
type ArenaRenderer struct {
	grid *ebiten.Image // сетка перерисовывается только при смене размеров
	gw   int
	gh   int
}

func NewArenaRenderer() *ArenaRenderer {
	return &ArenaRenderer{}
}

// Draw renders one frame: grid, strikes, player, enemies, projectiles,
// explosions, joystick and, in challenge mode, the countdown.
func (r *ArenaRenderer) Draw(screen *ebiten.Image, store *entity.Store, class defs.Class, bounds utils.Bounds, stick *input.Joystick) {
	screen.Fill(config.BackgroundColor)
	r.drawGrid(screen, bounds)

	for i := range store.Strikes {
		s := &store.Strikes[i]
		tip := StrikeTip(s)
		vector.StrokeLine(screen, f32(s.Origin.X), f32(s.Origin.Y), f32(tip.X), f32(tip.Y), strikeWidth, config.StrikeLineColor, true)
		// Круглые концы линии
		vector.DrawFilledCircle(screen, f32(s.Origin.X), f32(s.Origin.Y), strikeWidth/2, config.StrikeLineColor, true)
		vector.DrawFilledCircle(screen, f32(tip.X), f32(tip.Y), strikeWidth/2, config.StrikeLineColor, true)
	}

	r.drawPlayer(screen, store, class)

	for i := range store.Enemies {
		e := &store.Enemies[i]
		vector.DrawFilledCircle(screen, f32(e.Pos.X), f32(e.Pos.Y), f32(e.Radius), e.Color, true)
		barW := e.Radius * 2
		x, y := e.Pos.X-e.Radius, e.Pos.Y-e.Radius-enemyBarOffY
		drawBar(screen, x, y, barW, enemyBarH, BarFill(e.HPRatio(), barW), config.HPBarLowColor)
	}

	for i := range store.Projectiles {
		p := &store.Projectiles[i]
		vector.DrawFilledCircle(screen, f32(p.Pos.X), f32(p.Pos.Y), f32(p.Radius), p.Color, true)
	}

	for i := range store.Explosions {
		e := &store.Explosions[i]
		if radius := ExplosionRadius(e); radius > 0 {
			vector.DrawFilledCircle(screen, f32(e.Pos.X), f32(e.Pos.Y), f32(radius), e.Color, true)
		}
	}

	if stick != nil && stick.Active {
		vector.StrokeCircle(screen, f32(stick.Start.X), f32(stick.Start.Y), config.JoystickBaseRadius, 3, config.JoystickRing, true)
		vector.DrawFilledCircle(screen, f32(stick.Current.X), f32(stick.Current.Y), config.JoystickKnobRadius, config.JoystickKnob, true)
	}

	if store.Mode.IsChallenge() {
		drawCountdown(screen, store.Clock.RemainingSeconds(), bounds)
	}
}

func (r *ArenaRenderer) drawGrid(screen *ebiten.Image, bounds utils.Bounds) {
	w, h := int(bounds.W), int(bounds.H)
	if w <= 0 || h <= 0 {
		return
	}
	if r.grid == nil || r.gw != w || r.gh != h {
		if r.grid != nil {
			r.grid.Deallocate()
		}
		r.grid = ebiten.NewImage(w, h)
		r.gw, r.gh = w, h
		for _, x := range GridLines(bounds.W, config.GridStep) {
			vector.StrokeLine(r.grid, f32(x), 0, f32(x), f32(bounds.H), 1, config.GridColor, false)
		}
		for _, y := range GridLines(bounds.H, config.GridStep) {
			vector.StrokeLine(r.grid, 0, f32(y), f32(bounds.W), f32(y), 1, config.GridColor, false)
		}
	}
	screen.DrawImage(r.grid, nil)
}

func (r *ArenaRenderer) drawPlayer(screen *ebiten.Image, store *entity.Store, class defs.Class) {
	p := &store.Player
	body := ClassColor(class)
	x, y := f32(p.Pos.X), f32(p.Pos.Y)

	for i := glowLayers; i >= 1; i-- {
		vector.DrawFilledCircle(screen, x, y, f32(config.PlayerRadius+float64(i)*glowStep), WithAlpha(body, glowAlpha), true)
	}
	vector.DrawFilledCircle(screen, x, y, config.PlayerRadius, body, true)

	ratio := p.HPRatio()
	drawBar(screen, p.Pos.X-playerBarW/2, p.Pos.Y-playerBarOffY, playerBarW, playerBarH, BarFill(ratio, playerBarW), PlayerHPColor(ratio))
}

func drawCountdown(screen *ebiten.Image, seconds int, bounds utils.Bounds) {
	cx := bounds.W / 2
	vector.DrawFilledRect(screen, f32(cx-countdownW/2), countdownTop, countdownW, countdownH, config.CountdownBack, false)

	var clr color.Color = config.TextLightColor
	if CountdownUrgent(seconds) {
		clr = config.CountdownUrgent
	}
	DrawText(screen, fmt.Sprintf("%ds", seconds), cx, countdownTop+7, 2, clr)
}

func drawBar(screen *ebiten.Image, x, y, w, h, fill float64, clr color.Color) {
	vector.DrawFilledRect(screen, f32(x), f32(y), f32(w), f32(h), config.HPBarBackColor, false)
	if fill > 0 {
		vector.DrawFilledRect(screen, f32(x), f32(y), f32(fill), f32(h), clr, false)
	}
}

func f32(v float64) float32 {
	return float32(v)
}
