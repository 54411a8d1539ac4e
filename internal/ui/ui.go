// Package ui provides the main entry point for the UI.
package ui

import (
	"github.com/palemoky/ba-cay/internal/ui/input"
	"github.com/palemoky/ba-cay/internal/ui/model"
	"github.com/palemoky/ba-cay/internal/ui/view"
)

// NewAppModel creates the real-time game model with its view and keys wired.
func NewAppModel(settings model.Settings) *model.AppModel {
	m := model.NewAppModel(settings)
	m.SetViewRenderer(view.CreateViewRenderer())
	m.SetKeyHandler(input.HandleKeyPress)
	return m
}
