package system

import (
	"math"

	"pixel-survivor/internal/component"
	"pixel-survivor/internal/config"
	"pixel-survivor/internal/difficulty"
	"pixel-survivor/internal/entity"
	"pixel-survivor/internal/utils"
)

// SpawnSystem создаёт врагов вокруг игрока с частотой, зависящей от уровня и этапа.
type SpawnSystem struct {
	store *entity.Store
	rng   *utils.PRNGService
}

func NewSpawnSystem(store *entity.Store, rng *utils.PRNGService) *SpawnSystem {
	return &SpawnSystem{store: store, rng: rng}
}

func (s *SpawnSystem) Update(bounds utils.Bounds) {
	clock := &s.store.Clock
	level := s.store.Player.Level
	stage := s.store.Mode.DifficultyStage()

	if clock.Now-clock.LastSpawn <= difficulty.SpawnInterval(level, stage) {
		return
	}
	s.spawnEnemy(level, stage, bounds)
	clock.LastSpawn = clock.Now
}

func (s *SpawnSystem) spawnEnemy(level, stage int, bounds utils.Bounds) {
	angle := s.rng.Angle()
	spawnDist := math.Max(bounds.W, bounds.H) * config.SpawnDistanceRatio
	maxHP := difficulty.EnemyMaxHP(level, stage)

	s.store.Enemies = append(s.store.Enemies, component.Enemy{
		Pos:    s.store.Player.Pos.Add(utils.FromAngle(angle, spawnDist)),
		Radius: s.rng.Range(config.EnemyRadiusMin, config.EnemyRadiusMax),
		HP:     maxHP,
		MaxHP:  maxHP,
		Speed:  difficulty.EnemySpeed(level, stage),
		Color:  config.EnemyColor,
	})
}
