package webnorm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillListUnmarshal(t *testing.T) {
	t.Parallel()

	t.Run("comma string and array are equivalent", func(t *testing.T) {
		var fromString, fromArray SkillList
		require.NoError(t, json.Unmarshal([]byte(`"Go, SQL,  Docker "`), &fromString))
		require.NoError(t, json.Unmarshal([]byte(`["Go","SQL","Docker"]`), &fromArray))
		assert.Equal(t, fromArray, fromString)
		assert.Equal(t, SkillList{"Go", "SQL", "Docker"}, fromString)
	})

	t.Run("blank entries are dropped", func(t *testing.T) {
		var s SkillList
		require.NoError(t, json.Unmarshal([]byte(`"Go,, ,SQL"`), &s))
		assert.Equal(t, SkillList{"Go", "SQL"}, s)
	})

	t.Run("rejects non-string payloads", func(t *testing.T) {
		var s SkillList
		assert.Error(t, json.Unmarshal([]byte(`42`), &s))
	})
}
