// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

// AvatarLibrary holds all avatar definitions in switch order.
var AvatarLibrary []AvatarDefinition

// EnemyLibrary is a map to hold all enemy definitions, keyed by their ID.
var EnemyLibrary map[string]EnemyDefinition

// LoadAvatarDefinitions reads the avatar configuration file and populates
// the AvatarLibrary. The order of the file is preserved.
func LoadAvatarDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read avatar definitions file: %w", err)
	}

	var avatarDefs []AvatarDefinition
	if err := json.Unmarshal(file, &avatarDefs); err != nil {
		return fmt.Errorf("failed to unmarshal avatar definitions: %w", err)
	}
	if len(avatarDefs) == 0 {
		return fmt.Errorf("avatar definitions file %s is empty", path)
	}

	AvatarLibrary = avatarDefs
	log.Printf("Loaded %d avatar definitions", len(AvatarLibrary))
	return nil
}

// LoadEnemyDefinitions reads the enemy configuration file and populates the EnemyLibrary.
func LoadEnemyDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read enemy definitions file: %w", err)
	}

	var enemyDefs []EnemyDefinition
	if err := json.Unmarshal(file, &enemyDefs); err != nil {
		return fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	EnemyLibrary = make(map[string]EnemyDefinition)
	for _, def := range enemyDefs {
		EnemyLibrary[def.ID] = def
	}

	log.Printf("Loaded %d enemy definitions", len(EnemyLibrary))
	return nil
}

// LoadAll загружает обе библиотеки; при отсутствии файлов остаются
// встроенные значения по умолчанию.
func LoadAll(avatarPath, enemyPath string) {
	if err := LoadAvatarDefinitions(avatarPath); err != nil {
		log.Printf("Using built-in avatar definitions: %v", err)
	}
	if err := LoadEnemyDefinitions(enemyPath); err != nil {
		log.Printf("Using built-in enemy definitions: %v", err)
	}
}
