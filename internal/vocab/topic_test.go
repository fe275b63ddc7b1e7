package vocab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllTopics_Seven(t *testing.T) {
	assert.Len(t, AllTopics(), 7)
	assert.Len(t, AllLevels(), 3)
}

func TestParseTopic(t *testing.T) {
	tests := []struct {
		in      string
		want    Topic
		wantErr bool
	}{
		{"travel", TopicTravel, false},
		{"Daily Life", TopicDailyLife, false},
		{" FOOD ", TopicFood, false},
		{"food & cooking", TopicFood, false},
		{"sports", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTopic(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel("Advanced")
	require.NoError(t, err)
	assert.Equal(t, LevelAdvanced, l)

	_, err = ParseLevel("expert")
	assert.Error(t, err)
}

func TestIndexOf(t *testing.T) {
	assert.Equal(t, 6, IndexOfTopic(TopicEmotions))
	assert.Equal(t, 0, IndexOfTopic("unknown"))
	assert.Equal(t, 1, IndexOfLevel(LevelIntermediate))
}
