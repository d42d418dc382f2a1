package main

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfBounds  = errors.New("cell out of bounds")
	ErrInvalidLevel = errors.New("invalid level")
)

// Level indexes the palette. Zero is the empty cell.
type Level uint8

func (l Level) Valid() bool {
	return int(l) < NumLevels
}

// Grid is the painted contribution calendar. It is a value type: Set returns
// a modified copy and never touches the receiver, so a stored Grid is an
// immutable snapshot.
type Grid struct {
	cells [Cols * Rows]Level
}

func inBounds(week, day int) bool {
	return week >= 0 && week < Cols && day >= 0 && day < Rows
}

func checkCell(week, day int) error {
	if !inBounds(week, day) {
		return fmt.Errorf("%w: week %d day %d", ErrOutOfBounds, week, day)
	}
	return nil
}

// Get returns the level at (week, day), 0 if never painted.
func (g Grid) Get(week, day int) (Level, error) {
	if err := checkCell(week, day); err != nil {
		return 0, err
	}
	return g.cells[week*Rows+day], nil
}

// Set returns a copy of g with (week, day) set to level.
func (g Grid) Set(week, day int, level Level) (Grid, error) {
	if err := checkCell(week, day); err != nil {
		return g, err
	}
	if !level.Valid() {
		return g, fmt.Errorf("%w: %d (palette has %d colors)", ErrInvalidLevel, level, NumLevels)
	}
	g.cells[week*Rows+day] = level
	return g, nil
}

func (g Grid) IsEmpty() bool {
	return g.Painted() == 0
}

// Painted counts the cells holding a non-zero level.
func (g Grid) Painted() int {
	n := 0
	for _, l := range g.cells {
		if l != 0 {
			n++
		}
	}
	return n
}

func (g Grid) Equal(other Grid) bool {
	return g.cells == other.cells
}

// Each calls fn for every cell, week by week.
func (g Grid) Each(fn func(week, day int, level Level)) {
	for week := 0; week < Cols; week++ {
		for day := 0; day < Rows; day++ {
			fn(week, day, g.cells[week*Rows+day])
		}
	}
}
