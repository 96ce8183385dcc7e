// internal/ui/info_panel.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"pixel-survivor/internal/config"
	"pixel-survivor/internal/defs"
	"pixel-survivor/pkg/render"
)

const (
	panelWidth   = 320.0
	panelPadding = 14.0
	lineHeight   = 20.0
)

// StatLine — строка таблицы характеристик.
type StatLine struct {
	Label string
	Value string
}

// StatLines formats a class's stats for display. Attack speed is shown as attacks per second.
func StatLines(stats defs.Stats) []StatLine {
	lines := []StatLine{
		{defs.StatAttackSpeed.Label(), fmt.Sprintf("%.2f/s", 1000/stats.AttackSpeed)},
		{defs.StatDamage.Label(), fmt.Sprintf("%.1f", stats.Damage)},
		{defs.StatHP.Label(), fmt.Sprintf("%.0f", stats.HP)},
		{defs.StatMoveSpeed.Label(), fmt.Sprintf("%.2f", stats.MoveSpeed)},
	}
	switch sp := stats.Special.(type) {
	case defs.Gunner:
		lines = append(lines, StatLine{defs.StatProjectileCount.Label(), fmt.Sprintf("%d", sp.ProjectileCount)})
	case defs.Wizard:
		lines = append(lines, StatLine{defs.StatAttackArea.Label(), fmt.Sprintf("%.0f", sp.AttackArea)})
	case defs.Fighter:
		lines = append(lines, StatLine{defs.StatReach.Label(), fmt.Sprintf("%.1f", sp.Reach)})
	}
	return lines
}

// InfoPanel показывает класс, уровень и характеристики.
type InfoPanel struct {
	X, Y float64
}

func NewInfoPanel() *InfoPanel {
	return &InfoPanel{}
}

// Height — высота панели для заданного числа строк.
func (p *InfoPanel) Height(lines int) float64 {
	return panelPadding*2 + lineHeight*float64(lines+1)
}

// Draw рисует панель; X — центр по горизонтали.
func (p *InfoPanel) Draw(screen *ebiten.Image, prog defs.ClassProgression) {
	lines := StatLines(prog.Stats)
	left := p.X - panelWidth/2
	vector.DrawFilledRect(screen, float32(left), float32(p.Y), panelWidth, float32(p.Height(len(lines))), config.HPBarBackColor, false)
	vector.StrokeRect(screen, float32(left), float32(p.Y), panelWidth, float32(p.Height(len(lines))), 2, render.ClassColor(prog.Stats.Class()), false)

	y := p.Y + panelPadding
	header := fmt.Sprintf("%s  LV %d", prog.Stats.Class().Title(), prog.Level)
	render.DrawTextLeft(screen, header, left+panelPadding, y, 1, render.ClassColor(prog.Stats.Class()))
	for _, l := range lines {
		y += lineHeight
		render.DrawTextLeft(screen, l.Label, left+panelPadding, y, 1, config.TextDimColor)
		w := render.TextWidth(l.Value, 1)
		render.DrawTextLeft(screen, l.Value, left+panelWidth-panelPadding-w, y, 1, config.TextLightColor)
	}
}
