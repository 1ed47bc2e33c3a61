package statusids

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamzrod/statusreg/internal/status"
)

func TestTable_AllValidForDefaultBanks(t *testing.T) {
	for _, e := range Table() {
		assert.Truef(t, e.ID.Valid(status.DefaultBanks), "%s: %v out of range", e.Name, e.ID)
	}
}

func TestTable_UniquePerClass(t *testing.T) {
	seen := map[status.Class]map[status.ID]string{}

	for _, e := range Table() {
		if seen[e.Class] == nil {
			seen[e.Class] = map[status.ID]string{}
		}
		prev, dup := seen[e.Class][e.ID]
		require.Falsef(t, dup, "%s collides with %s in class %v", e.Name, prev, e.Class)
		seen[e.Class][e.ID] = e.Name
	}
}

func TestTable_FaultsAndInfoShareNumbersButNotBits(t *testing.T) {
	s, err := status.New(status.DefaultBanks)
	require.NoError(t, err)

	s.SetFault(FaultOvercurrent)

	assert.Equal(t, FaultOvercurrent, InfoACLive)
	assert.True(t, s.IsFaultSet(FaultOvercurrent))
	assert.False(t, s.IsInfoSet(InfoACLive))
}
