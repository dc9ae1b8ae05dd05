// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is a read-only terminal browser over the client dictionary
// cache, built on bubbletea.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-dict-keeper/internal/logger"
	"github.com/MKhiriev/go-dict-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit")

// Reader is the part of the dictionary provider the browser needs.
type Reader interface {
	Types() []models.DictType
	Get(t models.DictType) []models.DictEntry
	Record(t models.DictType) (models.CacheRecord, bool)
	EnsureLoaded(ctx context.Context, types ...models.DictType) error
	Refresh(ctx context.Context) error
	Status() string
}

type TUI struct {
	reader    Reader
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(reader Reader, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if reader == nil {
		return nil, errors.New("tui: nil dictionary reader")
	}
	return &TUI{reader: reader, buildInfo: buildInfo, logger: logger.WithComponent("tui")}, nil
}

// Run shows the browser and blocks until the user quits or ctx is done.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(t.logger.WithContext(ctx), t.reader, t.buildInfo)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
