package main

import (
	"testing"

	"dscheirer.com/fencebox/tick"
	"dscheirer.com/fencebox/tm1637"
	"gotest.tools/assert"
)

func TestFormatScore(t *testing.T) {
	assert.Equal(t, formatScore(0), "   0")
	assert.Equal(t, formatScore(15), "  15")
	assert.Equal(t, formatScore(1234), "1234")
}

func TestScoreBoards(t *testing.T) {
	rt, _ := testRuntime()
	sb := testBox(t, rt).scores

	sb.incLeft()
	sb.incLeft()
	sb.incRight()
	assert.Equal(t, sb.getLeft(), 2)
	assert.Equal(t, sb.getRight(), 1)
	assert.Equal(t, sb.left.Authoritative(), tm1637.EncodeString("   2", false))
	assert.Equal(t, sb.right.Authoritative(), tm1637.EncodeString("   1", false))

	sb.decRight()
	sb.decRight()
	assert.Equal(t, sb.getRight(), 0)

	sb.setScores(-3, 12)
	assert.Equal(t, sb.getLeft(), 0)
	assert.Equal(t, sb.getRight(), 12)
	assert.Equal(t, sb.right.Authoritative(), tm1637.EncodeString("  12", false))
}

func TestScoreBoardsReachTheWire(t *testing.T) {
	rt, _ := testRuntime()
	sb := testBox(t, rt).scores

	sb.setScores(5, 7)
	for i := 0; i < 10; i++ {
		sb.tick(at(0) + tick.Micros(100*(i+1)))
	}
	assert.Equal(t, sb.left.Committed(), tm1637.EncodeString("   5", false))
	assert.Equal(t, sb.right.Committed(), tm1637.EncodeString("   7", false))
	assert.Equal(t, sb.left.Busy(), false)
}
