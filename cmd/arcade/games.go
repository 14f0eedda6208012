package main

// Import games to register them
import (
	_ "github.com/vovakirdan/orba-arcade/internal/games/cyberstrike"
	_ "github.com/vovakirdan/orba-arcade/internal/games/echorealm"
	_ "github.com/vovakirdan/orba-arcade/internal/games/gravitywell"
	_ "github.com/vovakirdan/orba-arcade/internal/games/nebula"
	_ "github.com/vovakirdan/orba-arcade/internal/games/prism"
	_ "github.com/vovakirdan/orba-arcade/internal/games/shadow"
	_ "github.com/vovakirdan/orba-arcade/internal/games/solarflare"
	_ "github.com/vovakirdan/orba-arcade/internal/games/zenvoid"
)
