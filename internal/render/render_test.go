package render

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopomodoro/pomodoro/internal/domain"
)

func sampleState() domain.DerivedState {
	return domain.DerivedState{
		Kind:          domain.KindFocus,
		State:         domain.StateRunning,
		PlannedSecs:   1500,
		ElapsedSecs:   90,
		RemainingSecs: 1410,
	}
}

func TestTextRendersMMSS(t *testing.T) {
	got := Text(sampleState())
	assert.Equal(t, "focus | running | elapsed 01:30 | remaining 23:30", got)
}

func TestJSONRoundTripsFieldNames(t *testing.T) {
	out, err := JSON(sampleState())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))

	assert.Equal(t, "focus", decoded["kind"])
	assert.Equal(t, "running", decoded["state"])
	assert.EqualValues(t, 1500, decoded["planned_secs"])
	assert.EqualValues(t, 90, decoded["elapsed_secs"])
	assert.EqualValues(t, 1410, decoded["remaining_secs"])
}

func TestCompileTemplateSubstitutesVariables(t *testing.T) {
	tmpl, err := CompileTemplate("[{{kind}}] {{mmss(remaining_secs)}} left")
	require.NoError(t, err)

	out, err := tmpl.Render(sampleState())
	require.NoError(t, err)
	assert.Equal(t, "[focus] 23:30 left", out)
}

func TestCompileTemplateRejectsUnknownVariable(t *testing.T) {
	_, err := CompileTemplate("{{bogus}}")
	assert.Error(t, err)
}

func TestCompileTemplateRejectsSyntaxError(t *testing.T) {
	_, err := CompileTemplate("{{kind +}}")
	assert.Error(t, err)
}

func TestCompileTemplateWithoutPlaceholdersIsLiteral(t *testing.T) {
	tmpl, err := CompileTemplate("no placeholders here")
	require.NoError(t, err)

	out, err := tmpl.Render(sampleState())
	require.NoError(t, err)
	assert.Equal(t, "no placeholders here", out)
}

func TestCompileTemplateSupportsBooleanExpression(t *testing.T) {
	tmpl, err := CompileTemplate("done={{state == \"completed\"}}")
	require.NoError(t, err)

	out, err := tmpl.Render(sampleState())
	require.NoError(t, err)
	assert.Equal(t, "done=false", out)
}
