package trading_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sectorwars/traderoutes/internal/domain/trading"
)

func TestParseObjective(t *testing.T) {
	for _, objective := range trading.AllObjectives {
		parsed, err := trading.ParseObjective(string(objective))
		require.NoError(t, err)
		assert.Equal(t, objective, parsed)
	}

	_, err := trading.ParseObjective("fastest")
	assert.ErrorIs(t, err, trading.ErrInvalidObjective)
}
