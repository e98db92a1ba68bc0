package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserInput_DecodesLooseValues(t *testing.T) {
	var in UserInput
	err := json.Unmarshal([]byte(`{"name":"Ana","sleepHours":6.5,"waterGlasses":null,"stressLevel":true}`), &in)
	require.NoError(t, err)

	assert.Equal(t, FormValue("Ana"), in.Name)
	assert.Equal(t, FormValue("6.5"), in.SleepHours)
	assert.Equal(t, FormValue(""), in.WaterGlasses)
	assert.Equal(t, FormValue("true"), in.StressLevel)
	assert.Equal(t, FormValue(""), in.PeakEnergyPeriod)
}

func TestUserInput_EncodesAsStrings(t *testing.T) {
	data, err := json.Marshal(UserInput{Name: "Ana", SleepHours: "6"})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"sleepHours":"6"`)
	assert.Contains(t, string(data), `"waterGlasses":""`)
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Ana", UserInput{Name: "Ana"}.DisplayName())
	assert.Equal(t, AnonymousName, UserInput{}.DisplayName())
}
