package system

import (
	"testing"

	"pixel-survivor/internal/component"
	"pixel-survivor/internal/defs"
	"pixel-survivor/internal/entity"
	"pixel-survivor/internal/event"
	"pixel-survivor/internal/utils"
)

var testBounds = utils.Bounds{W: 800, H: 600}

// newTestStore returns a store with a fresh class progression and the player at (400, 300).
func newTestStore(t *testing.T, class defs.Class) *entity.Store {
	t.Helper()
	store := entity.NewStore()
	store.Reset(defs.NewProgression(class), component.Infinite(), testBounds)
	return store
}

func enemyAt(x, y, radius, hp float64) component.Enemy {
	return component.Enemy{Pos: utils.Vec2{X: x, Y: y}, Radius: radius, HP: hp, MaxHP: hp}
}

func eventTypes(events []event.Event) []event.EventType {
	types := make([]event.EventType, 0, len(events))
	for _, e := range events {
		types = append(types, e.Type)
	}
	return types
}
