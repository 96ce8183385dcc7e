// internal/utils/math.go
package utils

import "math"

// Vec2 — точка или вектор на игровом поле.
type Vec2 struct {
	X, Y float64
}

// Add возвращает сумму векторов.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub возвращает разность v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale умножает вектор на скаляр.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Len — длина вектора.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// DistSq — квадрат расстояния между точками.
func DistSq(a, b Vec2) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// Dist — расстояние между точками.
func Dist(a, b Vec2) float64 {
	return math.Sqrt(DistSq(a, b))
}

// Normalize возвращает единичный вектор того же направления.
// Для нулевого вектора возвращается нулевой вектор, а не NaN.
func Normalize(v Vec2) Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// FromAngle строит вектор длины length под углом angle.
func FromAngle(angle, length float64) Vec2 {
	return Vec2{X: math.Cos(angle) * length, Y: math.Sin(angle) * length}
}

// Angle возвращает угол направления из from в to.
func Angle(from, to Vec2) float64 {
	return math.Atan2(to.Y-from.Y, to.X-from.X)
}

// Clamp ограничивает value отрезком [lo, hi].
func Clamp(value, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, value))
}

// Bounds — размеры игровой поверхности. Меняются при ресайзе окна.
type Bounds struct {
	W, H float64
}

// Center — центр поля.
func (b Bounds) Center() Vec2 {
	return Vec2{X: b.W / 2, Y: b.H / 2}
}

// Contains проверяет, лежит ли точка внутри видимой области (границы включены).
func (b Bounds) Contains(p Vec2) bool {
	return p.X >= 0 && p.X <= b.W && p.Y >= 0 && p.Y <= b.H
}

// ContainsWithMargin проверяет точку на поле, расширенном на margin с каждой стороны (границы исключены).
func (b Bounds) ContainsWithMargin(p Vec2, margin float64) bool {
	return p.X > -margin && p.X < b.W+margin && p.Y > -margin && p.Y < b.H+margin
}
