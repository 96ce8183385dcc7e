// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 960
	ScreenHeight = 720
	MaxDeltaTime = 250.0 // мс, защита от скачка после сворачивания окна

	StorageKey = "pixel_survivor_save_v3"

	PlayerRadius       = 20.0
	JoystickDeadzone   = 5.0
	ContactDamage      = 0.5 // за кадр касания
	ChallengeTime      = 60000.0
	MaxChallengeStage  = 99
	ExpPerKill         = 25
	BaseSpawnInterval  = 1500.0
	SpawnDistanceRatio = 0.6

	EnemyRadiusMin = 15.0
	EnemyRadiusMax = 20.0

	ProjectileSpeed  = 8.0 // единиц за кадр
	ProjectileRadius = 5.0
	ProjectileSpread = 0.2 // радиан между соседними снарядами
	ProjectileMargin = 50.0

	ExplosionMaxDuration = 20 // кадров

	FighterReachScale = 40.0
	StrikeRadius      = 4.0
	StrikeMaxDuration = 10
	StrikesPerAttack  = 2

	GridStep           = 50
	JoystickBaseRadius = 60.0
	JoystickKnobRadius = 30.0

	PauseButtonSize = 16.0
	HUDMargin       = 20.0
)

var (
	BackgroundColor = color.RGBA{15, 23, 42, 255}
	GridColor       = color.RGBA{30, 41, 59, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDimColor    = color.RGBA{148, 163, 184, 255}
	EnemyColor      = color.RGBA{239, 68, 68, 255}
	HPBarBackColor  = color.RGBA{30, 41, 59, 255}
	HPBarGoodColor  = color.RGBA{16, 185, 129, 255}
	HPBarLowColor   = color.RGBA{239, 68, 68, 255}
	ProjectileColor = color.RGBA{251, 191, 36, 255}
	ExplosionColor  = color.NRGBA{249, 115, 22, 153}
	StrikeColor     = color.RGBA{248, 250, 252, 255}
	StrikeLineColor = color.RGBA{148, 163, 184, 255}
	JoystickRing    = color.NRGBA{255, 255, 255, 51}
	JoystickKnob    = color.NRGBA{255, 255, 255, 102}
	OverlayColor    = color.NRGBA{0, 0, 0, 160}
	CountdownBack   = color.NRGBA{0, 0, 0, 128}
	CountdownUrgent = color.RGBA{239, 68, 68, 255}
	LockedColor     = color.RGBA{100, 116, 139, 255}
	AccentColor     = color.RGBA{79, 70, 229, 255}
	ExpBarColorFill = color.NRGBA{99, 102, 241, 230}

	GunnerColor  = color.RGBA{59, 130, 246, 255}
	WizardColor  = color.RGBA{168, 85, 247, 255}
	FighterColor = color.RGBA{244, 63, 94, 255}
)
