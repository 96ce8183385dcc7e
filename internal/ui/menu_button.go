// internal/ui/menu_button.go
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"pixel-survivor/internal/config"
	"pixel-survivor/internal/utils"
	"pixel-survivor/pkg/render"
)

const (
	menuButtonWidth  = 320.0
	menuButtonHeight = 48.0
	menuButtonGap    = 12.0
	menuTitleScale   = 3.0
	menuTitleGap     = 40.0
)

// Menu — вертикальный список кнопок с заголовком. Управляется мышью,
// касанием и клавишами (вверх/вниз, Enter).
type Menu struct {
	Title    string
	Subtitle string
	Buttons  []*Button
	Focus    int
	top      float64
}

// NewMenu создаёт меню с кнопками по подписям.
func NewMenu(title string, labels ...string) *Menu {
	m := &Menu{Title: title}
	for _, l := range labels {
		m.Buttons = append(m.Buttons, NewButton(l))
	}
	return m
}

// Layout центрирует меню на поле bounds.
func (m *Menu) Layout(bounds utils.Bounds, buttonHeight float64) {
	if buttonHeight <= 0 {
		buttonHeight = menuButtonHeight
	}
	n := float64(len(m.Buttons))
	total := n*buttonHeight + (n-1)*menuButtonGap
	m.top = (bounds.H-total)/2 + menuTitleGap
	x := (bounds.W - menuButtonWidth) / 2
	for i, b := range m.Buttons {
		b.X = x
		b.Y = m.top + float64(i)*(buttonHeight+menuButtonGap)
		b.W = menuButtonWidth
		b.H = buttonHeight
	}
}

// HitTest возвращает индекс кнопки под точкой или -1.
func (m *Menu) HitTest(p utils.Vec2) int {
	for i, b := range m.Buttons {
		if b.Contains(p) {
			return i
		}
	}
	return -1
}

// MoveFocus сдвигает фокус, пропуская недоступные кнопки.
func (m *Menu) MoveFocus(delta int) {
	n := len(m.Buttons)
	if n == 0 {
		return
	}
	for step := 0; step < n; step++ {
		m.Focus = ((m.Focus+delta)%n + n) % n
		if !m.Buttons[m.Focus].Disabled {
			return
		}
	}
}

// Update обрабатывает ввод и возвращает выбранную кнопку.
func (m *Menu) Update() (int, bool) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyDown), inpututil.IsKeyJustPressed(ebiten.KeyS):
		m.MoveFocus(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyUp), inpututil.IsKeyJustPressed(ebiten.KeyW):
		m.MoveFocus(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		return m.choose(m.Focus)
	}

	if p, ok := JustPressedPoint(); ok {
		return m.choose(m.HitTest(p))
	}
	return -1, false
}

func (m *Menu) choose(i int) (int, bool) {
	if i < 0 || i >= len(m.Buttons) || m.Buttons[i].Disabled {
		return -1, false
	}
	m.Focus = i
	return i, true
}

// Draw отрисовывает заголовок и кнопки.
func (m *Menu) Draw(screen *ebiten.Image, bounds utils.Bounds) {
	cx := bounds.W / 2
	titleY := m.top - menuTitleGap - 13*menuTitleScale - 20
	render.DrawText(screen, m.Title, cx, titleY, menuTitleScale, config.TextLightColor)
	if m.Subtitle != "" {
		render.DrawText(screen, m.Subtitle, cx, titleY+13*menuTitleScale+8, 1, config.TextDimColor)
	}
	for i, b := range m.Buttons {
		b.Draw(screen, i == m.Focus)
	}
}

// JustPressedPoint возвращает точку нажатия мыши или касания в этом кадре.
func JustPressedPoint() (utils.Vec2, bool) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return utils.Vec2{X: float64(x), Y: float64(y)}, true
	}
	if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
		x, y := ebiten.TouchPosition(ids[0])
		return utils.Vec2{X: float64(x), Y: float64(y)}, true
	}
	return utils.Vec2{}, false
}
