// internal/config/config.go
package config

import "image/color"

const (
	// Сетка поля: 5 колонок на 6 рядов, верхний ряд — вода (цель).
	GridCols = 5
	GridRows = 6

	CellWidth  = 101.0
	CellHeight = 83.0

	ScreenWidth  = GridCols * CellWidth
	ScreenHeight = 606

	MaxDeltaTime = 0.06

	// Игрок появляется на нижнем ряду, по центру.
	PlayerStartCol = 2
	PlayerStartRow = 5
	// Вертикальная поправка спрайта: персонаж стоит по центру клетки,
	// а не по верхнему краю.
	PlayerPixelOffsetY = -33.0

	// Радиус столкновения игрока (точка-центроид против тела врага).
	PlayerRadius = 30.0
	// Допуск на скруглённые углы спрайта врага. Порядок проверок и эта
	// константа подобраны под игровое ощущение, менять нельзя.
	CornerTolerance = 12.0

	// Полосы движения врагов: ряды 1..3.
	LaneMin   = 1
	LaneMax   = 3
	LaneCount = LaneMax - LaneMin + 1

	// Четыре жука: по одному на полосу плюс один дубль на случайной.
	EnemyCount = LaneCount + 1

	EnemyStartX = -CellWidth
	EnemyEndX   = ScreenWidth
	EnemyStartY = -23.0
	RowHeight   = CellHeight

	// Скорость пересэмплируется при каждом респауне из
	// [0.1*MaxSpeed, 1.1*MaxSpeed).
	EnemyMaxSpeed      = 450.0
	EnemySpeedMinFrac  = 0.1
	EnemySpeedSpanFrac = 1.0

	// Вероятность смены полосы при респауне.
	LaneSwitchChance = 0.5

	// Видимое тело жука внутри спрайта (без прозрачных полей).
	EnemyBodyOffsetX = 0.0
	EnemyBodyOffsetY = 19.0
	EnemyBodyWidth   = 96.0
	EnemyBodyHeight  = 60.0

	DamageFlashDuration = 0.4

	ScorePanelOffsetX = 12
	ScorePanelOffsetY = 28
	ScoreFontSize     = 20.0
	TitleFontSize     = 36.0

	PprofAddr = "localhost:6060"
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	WaterColor      = color.RGBA{70, 100, 160, 255}
	RoadColor       = color.RGBA{60, 60, 70, 255}
	GrassColor      = color.RGBA{60, 120, 60, 255}
	LaneStripeColor = color.RGBA{200, 200, 200, 90}

	TextLightColor = color.RGBA{240, 240, 240, 255}
	TextShadeColor = color.RGBA{20, 20, 30, 255}

	PauseOverlayColor = color.RGBA{0, 0, 0, 128}

	DebugRectColor   = color.RGBA{255, 60, 60, 255}
	DebugCircleColor = color.RGBA{60, 255, 120, 255}

	PlayerFlashColor = color.RGBA{255, 40, 40, 255}
)
