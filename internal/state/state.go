// internal/state/state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"

	"pixel-survivor/internal/event"
	"pixel-survivor/internal/input"
	"pixel-survivor/internal/progress"
	"pixel-survivor/internal/utils"
	"pixel-survivor/pkg/render"
)

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// Services — зависимости, общие для всех экранов.
type Services struct {
	Progress   *progress.Holder
	Dispatcher *event.Dispatcher
	Rng        *utils.PRNGService
	Renderer   *render.ArenaRenderer
	Sampler    *input.Sampler
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current  State
	Bounds   utils.Bounds
	Services *Services
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine(services *Services, bounds utils.Bounds) *StateMachine {
	return &StateMachine{Services: services, Bounds: bounds}
}

// Current возвращает активное состояние.
func (sm *StateMachine) Current() State {
	return sm.current
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit() // Выход из текущего состояния, если оно есть
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter() // Вход в новое состояние, только если оно не nil
	}
}

// Resize запоминает новые размеры игрового поля.
func (sm *StateMachine) Resize(width, height int) {
	sm.Bounds = utils.Bounds{W: float64(width), H: float64(height)}
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
