// internal/app/game.go
package app

import (
	"log/slog"

	"github.com/google/uuid"

	"pixel-survivor/internal/component"
	"pixel-survivor/internal/entity"
	"pixel-survivor/internal/event"
	"pixel-survivor/internal/interfaces"
	"pixel-survivor/internal/system"
	"pixel-survivor/internal/utils"
)

var sessionEvents = []event.EventType{event.LevelUp, event.GameOver, event.ChallengeSuccess}

// Game holds one arena session: the entity store and the systems that step it.
type Game struct {
	Store              *entity.Store
	Mode               component.Mode
	SessionID          string
	EventDispatcher    *event.Dispatcher
	Rng                *utils.PRNGService
	TimerSystem        *system.TimerSystem
	MovementSystem     *system.MovementSystem
	SpawnSystem        *system.SpawnSystem
	CombatSystem       *system.CombatSystem
	ProjectileSystem   *system.ProjectileSystem
	AreaAttackSystem   *system.AreaAttackSystem
	VisualEffectSystem *system.VisualEffectSystem
	PlayerSystem       *system.PlayerSystem
	EnemySystem        *system.EnemySystem

	progress interfaces.ProgressSource
	events   *event.Queue
	listener *GameEventListener
	logger   *slog.Logger
}

// NewGame initializes a session. The store stays empty until Start is called.
func NewGame(progress interfaces.ProgressSource, mode component.Mode, dispatcher *event.Dispatcher, rng *utils.PRNGService) *Game {
	if progress == nil {
		panic("progress source cannot be nil")
	}
	if dispatcher == nil {
		dispatcher = event.NewDispatcher()
	}
	if rng == nil {
		rng = utils.NewPRNGService(0)
	}

	store := entity.NewStore()
	events := &event.Queue{}
	g := &Game{
		Store:              store,
		Mode:               mode,
		EventDispatcher:    dispatcher,
		Rng:                rng,
		TimerSystem:        system.NewTimerSystem(store, events),
		MovementSystem:     system.NewMovementSystem(store),
		SpawnSystem:        system.NewSpawnSystem(store, rng),
		CombatSystem:       system.NewCombatSystem(store),
		ProjectileSystem:   system.NewProjectileSystem(store),
		AreaAttackSystem:   system.NewAreaAttackSystem(store),
		VisualEffectSystem: system.NewVisualEffectSystem(store),
		PlayerSystem:       system.NewPlayerSystem(store, events),
		progress:           progress,
		events:             events,
		logger:             slog.Default().With("mode", modeName(mode)),
	}
	g.EnemySystem = system.NewEnemySystem(store, g.PlayerSystem)

	g.listener = &GameEventListener{game: g}
	dispatcher.SubscribeAll(g.listener, sessionEvents...)
	return g
}

// Start begins a fresh life from the stored progression.
func (g *Game) Start(bounds utils.Bounds) {
	g.Store.Reset(g.progress.ActiveProgression(), g.Mode, bounds)
	if n := g.events.Len(); n > 0 {
		g.logger.Debug("dropping events of the previous life", "count", n)
		g.events.Drain()
	}
	g.SessionID = uuid.NewString()
	g.logger.Info("session started",
		"session", g.SessionID,
		"class", g.progress.ActiveProgression().Stats.Class(),
		"level", g.Store.Player.Level,
		"hp", g.Store.Player.MaxHP,
	)
}

// NeedsStart сообщает, что жизнь закончилась или ещё не начиналась.
func (g *Game) NeedsStart() bool {
	return g.Store.Player.Dead()
}

// Over is true once the player died or the challenge timer ran out.
func (g *Game) Over() bool {
	return g.Store.Player.Dead() || g.Store.Clock.Finished
}

// Update advances the simulation by deltaTime milliseconds. Events raised
// during the step are dispatched after it completes and also returned.
func (g *Game) Update(deltaTime float64, stick utils.Vec2, bounds utils.Bounds) []event.Event {
	if g.Over() {
		return nil
	}
	stats := g.progress.ActiveProgression().Stats

	if g.TimerSystem.Update(deltaTime) {
		return g.flushEvents()
	}
	g.MovementSystem.Update(stick, stats.MoveSpeed, bounds)
	g.SpawnSystem.Update(bounds)
	g.CombatSystem.Update(stats, bounds)
	g.ProjectileSystem.Update(bounds)
	g.AreaAttackSystem.Update()
	g.VisualEffectSystem.Update()
	g.EnemySystem.Update()

	return g.flushEvents()
}

func (g *Game) flushEvents() []event.Event {
	events := g.events.Drain()
	for _, e := range events {
		g.EventDispatcher.Dispatch(e)
	}
	return events
}

// Close отписывает сессию от диспетчера.
func (g *Game) Close() {
	for _, t := range sessionEvents {
		g.EventDispatcher.Unsubscribe(t, g.listener)
	}
}

func modeName(mode component.Mode) string {
	if mode.IsChallenge() {
		return "challenge"
	}
	return "infinite"
}

// GameEventListener пишет в журнал ключевые события сессии.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	logger := l.game.logger.With("session", l.game.SessionID)
	switch data := e.Data.(type) {
	case event.LevelUpData:
		logger.Info("level up", "level", data.Level, "exp", data.Exp)
	case event.GameOverData:
		logger.Info("game over", "exp", data.Exp, "session_ms", l.game.Store.Clock.Now)
	case event.ChallengeSuccessData:
		logger.Info("challenge cleared", "stage", data.Stage)
	}
}
