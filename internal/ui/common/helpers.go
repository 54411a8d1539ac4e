// Package common provides shared utilities for the UI.
package common

import (
	"strconv"

	"github.com/palemoky/ba-cay/internal/game"
)

// TruncateName truncates a player name to the specified maximum length.
func TruncateName(name string, maxLen int) string {
	runes := []rune(name)
	if len(runes) > maxLen {
		return string(runes[:maxLen-1]) + "…"
	}
	return name
}

// PointsLabel renders a hand total, calling out the ten-point hand.
func PointsLabel(points int) string {
	if points == game.TopHandPoints {
		return game.TopHandLabel
	}
	return strconv.Itoa(points)
}
