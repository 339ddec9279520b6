// internal/event/types.go
package event

const (
	PlayerHit     EventType = "PlayerHit"     // Жук сбил игрока
	GoalReached   EventType = "GoalReached"   // Игрок дошёл до воды
	AvatarChanged EventType = "AvatarChanged" // Игрок сменил аватар
)
