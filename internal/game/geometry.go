// Package game implements the Two Cars simulation: two lane-locked cars
// dodging boxes and collecting circles that fall down four lanes. The
// package is pure - it takes a clock reading and one input event per step
// and touches the outside world only through the store interfaces.
package game

import "github.com/vovakirdan/twocars/internal/core"

// Logical viewport geometry. All simulation coordinates live in this
// space; the platform scales it to whatever it renders on.
const (
	ViewW = 405
	ViewH = 720

	LaneWidth    = ViewW / 4
	CarWidth     = ViewW / 10
	CarHeight    = ViewH / 11
	ObstacleSize = ViewW / 10

	// Cars sit on a fixed row near the bottom
	CarY = ViewH - 100
)

// LaneX holds the x-offset of each of the four lanes, left to right.
// Lanes 0-1 belong to the blue car, lanes 2-3 to the red car.
var LaneX = [4]int{
	LaneWidth/2 - CarWidth/2,
	LaneWidth + LaneWidth/2 - CarWidth/2,
	2*LaneWidth + LaneWidth/2 - CarWidth/2,
	3*LaneWidth + LaneWidth/2 - CarWidth/2,
}

// Death screen hit-regions, in logical units.
var (
	RestartButton = core.NewRect(ViewW/2-50, ViewH/2-20, 100, 40)
	HomeButton    = core.NewRect(ViewW/2-50, ViewH/2+30, 100, 40)
)
