package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyConwayRules(t *testing.T) {
	aliveNext := map[int]bool{2: true, 3: true}
	deadNext := map[int]bool{3: true}

	for n := 0; n <= 8; n++ {
		assert.Equalf(t, aliveNext[n], ApplyConwayRules(n, true), "alive cell with %d neighbors", n)
		assert.Equalf(t, deadNext[n], ApplyConwayRules(n, false), "dead cell with %d neighbors", n)
	}
}
