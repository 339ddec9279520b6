// internal/defs/defaults.go
package defs

import "go-road-crossing/internal/config"

// Встроенные определения: игра должна запускаться и без JSON-файлов.
func init() {
	AvatarLibrary = []AvatarDefinition{
		{ID: "AVATAR_BOY", Sprite: "assets/images/char-boy.png", Width: 66, Height: 88},
		{ID: "AVATAR_CAT_GIRL", Sprite: "assets/images/char-cat-girl.png", Width: 66, Height: 88},
		{ID: "AVATAR_HORN_GIRL", Sprite: "assets/images/char-horn-girl.png", Width: 66, Height: 88},
		{ID: "AVATAR_PINK_GIRL", Sprite: "assets/images/char-pink-girl.png", Width: 66, Height: 88},
		{ID: "AVATAR_PRINCESS", Sprite: "assets/images/char-princess-girl.png", Width: 66, Height: 88},
	}

	EnemyLibrary = map[string]EnemyDefinition{
		"ENEMY_BUG": {
			ID:     "ENEMY_BUG",
			Sprite: "assets/images/enemy-bug.png",
			Body: BodyRect{
				OffsetX: config.EnemyBodyOffsetX,
				OffsetY: config.EnemyBodyOffsetY,
				Width:   config.EnemyBodyWidth,
				Height:  config.EnemyBodyHeight,
			},
		},
	}
}
