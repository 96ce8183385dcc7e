package input

import "pixel-survivor/internal/utils"

// Joystick — виртуальный джойстик: точка начала жеста и текущая точка.
type Joystick struct {
	Active  bool
	Start   utils.Vec2
	Current utils.Vec2
}

// Begin начинает жест в точке p.
func (j *Joystick) Begin(p utils.Vec2) {
	j.Active = true
	j.Start = p
	j.Current = p
}

// Move обновляет текущую точку активного жеста.
func (j *Joystick) Move(p utils.Vec2) {
	if !j.Active {
		return
	}
	j.Current = p
}

// End завершает жест.
func (j *Joystick) End() {
	j.Active = false
}

// Vector — смещение текущей точки от начала; нулевой вектор, если жеста нет.
func (j *Joystick) Vector() utils.Vec2 {
	if !j.Active {
		return utils.Vec2{}
	}
	return j.Current.Sub(j.Start)
}

// keyboardReach — длина вектора от клавиатуры, заведомо больше мёртвой зоны.
const keyboardReach = 100.0

// KeyboardVector превращает нажатые стрелки в вектор смещения.
func KeyboardVector(up, down, left, right bool) utils.Vec2 {
	var v utils.Vec2
	if up {
		v.Y--
	}
	if down {
		v.Y++
	}
	if left {
		v.X--
	}
	if right {
		v.X++
	}
	return utils.Normalize(v).Scale(keyboardReach)
}
