package main

import (
	"fmt"

	"dscheirer.com/fencebox/tick"
	"dscheirer.com/fencebox/tm1637"
)

// scoreBoards shows each fencer's touches on their own display
type scoreBoards struct {
	left, right           *tm1637.Display
	leftScore, rightScore int
}

func newScoreBoards(left, right *tm1637.Display) *scoreBoards {
	sb := &scoreBoards{left: left, right: right}
	sb.tick(tick.UpdateOnly)
	return sb
}

// formatScore right-justifies a score
func formatScore(score int) string {
	return fmt.Sprintf("%*d", tm1637.Width, score)
}

func (sb *scoreBoards) tick(now tick.Micros) {
	sb.left.SetContents(formatScore(sb.leftScore), false, false, 0)
	sb.right.SetContents(formatScore(sb.rightScore), false, false, 0)
	sb.left.Tick(now)
	sb.right.Tick(now)
}

func (sb *scoreBoards) setScores(left, right int) {
	if left < 0 {
		left = 0
	}
	if right < 0 {
		right = 0
	}
	sb.leftScore = left
	sb.rightScore = right
	sb.tick(tick.UpdateOnly)
}

func (sb *scoreBoards) incLeft() {
	sb.setScores(sb.leftScore+1, sb.rightScore)
}

func (sb *scoreBoards) incRight() {
	sb.setScores(sb.leftScore, sb.rightScore+1)
}

func (sb *scoreBoards) decLeft() {
	sb.setScores(sb.leftScore-1, sb.rightScore)
}

func (sb *scoreBoards) decRight() {
	sb.setScores(sb.leftScore, sb.rightScore-1)
}

func (sb *scoreBoards) getLeft() int {
	return sb.leftScore
}

func (sb *scoreBoards) getRight() int {
	return sb.rightScore
}
