package input

import (
	"pixel-survivor/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Sampler опрашивает мышь, касания и клавиатуру раз в кадр.
type Sampler struct {
	Joystick Joystick

	touchID  ebiten.TouchID
	touching bool
	keys     utils.Vec2
}

// Poll обновляет состояние джойстика. canBegin позволяет отклонить начало
// жеста (например, нажатие по кнопке паузы).
func (s *Sampler) Poll(canBegin func(p utils.Vec2) bool) {
	s.pollTouch(canBegin)
	if !s.touching {
		s.pollMouse(canBegin)
	}
	s.keys = KeyboardVector(
		ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
	)
}

func (s *Sampler) pollTouch(canBegin func(p utils.Vec2) bool) {
	if s.touching {
		if inpututil.IsTouchJustReleased(s.touchID) {
			s.touching = false
			s.Joystick.End()
			return
		}
		x, y := ebiten.TouchPosition(s.touchID)
		s.Joystick.Move(utils.Vec2{X: float64(x), Y: float64(y)})
		return
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		p := utils.Vec2{X: float64(x), Y: float64(y)}
		if canBegin != nil && !canBegin(p) {
			continue
		}
		s.touchID = id
		s.touching = true
		s.Joystick.Begin(p)
		return
	}
}

func (s *Sampler) pollMouse(canBegin func(p utils.Vec2) bool) {
	x, y := ebiten.CursorPosition()
	p := utils.Vec2{X: float64(x), Y: float64(y)}
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		if canBegin == nil || canBegin(p) {
			s.Joystick.Begin(p)
		}
	case s.Joystick.Active && !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		s.Joystick.End()
	default:
		s.Joystick.Move(p)
	}
}

// Vector — вектор направления на этот кадр. Жест важнее клавиатуры.
func (s *Sampler) Vector() utils.Vec2 {
	if s.Joystick.Active {
		return s.Joystick.Vector()
	}
	return s.keys
}

// Release сбрасывает жест независимо от состояния сессии.
func (s *Sampler) Release() {
	s.touching = false
	s.Joystick.End()
	s.keys = utils.Vec2{}
}
