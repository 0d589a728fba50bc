package token_test

import (
	"testing"

	"github.com/mna/lox/lang/token"
	"github.com/stretchr/testify/assert"
)

func TestMakePosRoundTrip(t *testing.T) {
	cases := []struct {
		line, col int
	}{
		{1, 1},
		{1, 80},
		{42, 7},
		{token.MaxLines, token.MaxCols},
	}
	for _, c := range cases {
		p := token.MakePos(c.line, c.col)
		gotLine, gotCol := p.LineCol()
		assert.Equal(t, c.line, gotLine)
		assert.Equal(t, c.col, gotCol)
	}
}

func TestPosZero(t *testing.T) {
	var p token.Pos
	assert.True(t, p.Zero())
	assert.Equal(t, "", p.String())

	p = token.MakePos(3, 5)
	assert.False(t, p.Zero())
	assert.Equal(t, "3-5", p.String())
}
