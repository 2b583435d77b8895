package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaultsBlankGroupWindow(t *testing.T) {
	tables := Tables{
		Activities: strings.NewReader("name,minutes_per_participant\nA,3\n"),
		Stages:     strings.NewReader("max_participants\n"),
		Courts: strings.NewReader(
			"court,opening,closing\nC1,09:00:00,10:00:00\nC2,08:30:00,11:00:00\n",
		),
		Groups: strings.NewReader("name,count,activity,start,end\nG1,4,A,,\n"),
	}

	input, err := Parse(tables)
	require.NoError(t, err)
	require.Len(t, input.Groups, 1)
	assert.Equal(t, 8*60+30, input.Groups[0].Limit.Start)
	assert.Equal(t, 11*60, input.Groups[0].Limit.End)
}

func TestParseCeilsCourtOpeningAndTruncatesClosing(t *testing.T) {
	tables := Tables{
		Activities: strings.NewReader("name,minutes_per_participant\nA,1\n"),
		Stages:     strings.NewReader("max_participants\n"),
		Courts:     strings.NewReader("court,opening,closing\nC1,09:00:30,10:00:45\n"),
		Groups:     strings.NewReader("name,count,activity,start,end\n"),
	}

	input, err := Parse(tables)
	require.NoError(t, err)
	require.Len(t, input.Courts, 1)
	assert.Equal(t, 9*60+1, input.Courts[0].Opening[0].Start)
	assert.Equal(t, 10*60, input.Courts[0].Opening[0].End)
}

func TestParseExplicitGroupWindowOverridesDefault(t *testing.T) {
	tables := Tables{
		Activities: strings.NewReader("name,minutes_per_participant\nA,1\n"),
		Stages:     strings.NewReader("max_participants\n"),
		Courts:     strings.NewReader("court,opening,closing\nC1,08:00:00,20:00:00\n"),
		Groups:     strings.NewReader("name,count,activity,start,end\nG1,2,A,09:15,09:45\n"),
	}

	input, err := Parse(tables)
	require.NoError(t, err)
	require.Len(t, input.Groups, 1)
	assert.Equal(t, 9*60+15, input.Groups[0].Limit.Start)
	assert.Equal(t, 9*60+45, input.Groups[0].Limit.End)
}
