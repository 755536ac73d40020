package meeting

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalysisToleratesLooseTypes(t *testing.T) {
	raw := `{
		"project_name": "Mobile App",
		"tickets": [
			{"title": "A", "estimated_hours": 4.5, "dependencies": ["ticket:0", 2, null]},
			{"title": "B", "estimated_hours": " 3 ", "dependencies": "none"},
			{"title": "C", "estimated_hours": "about a day"},
			{"title": "D", "estimated_hours": null}
		]
	}`
	var a Analysis
	require.NoError(t, json.Unmarshal([]byte(raw), &a))
	require.Len(t, a.Tickets, 4)

	assert.Equal(t, FlexFloat(4.5), *a.Tickets[0].EstimatedHours)
	assert.Equal(t, FlexList{"ticket:0", "2"}, a.Tickets[0].Dependencies)

	assert.Equal(t, FlexFloat(3), *a.Tickets[1].EstimatedHours)
	assert.Empty(t, a.Tickets[1].Dependencies)

	assert.Equal(t, FlexFloat(0), *a.Tickets[2].EstimatedHours)
	assert.Nil(t, a.Tickets[3].EstimatedHours)
}
