package nav

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSelectTab(t *testing.T) {
	t.Parallel()

	buttons := []TabButton{{SectionID: "a", Selected: true}, {SectionID: "b"}}
	panels := []TabPanel{
		{ID: "a-content", State: StateActive},
		{AriaLabelledBy: "tab-b", State: StateInactive},
	}

	gotButtons, gotPanels := SelectTab(buttons, panels, "b")
	require.False(t, gotButtons[0].Selected)
	require.True(t, gotButtons[1].Selected)
	require.Equal(t, StateInactive, gotPanels[0].State)
	require.Equal(t, StateActive, gotPanels[1].State)

	require.True(t, buttons[0].Selected, "input is not modified")
	require.Equal(t, StateActive, panels[0].State)
}

func TestSelectTabEmptySection(t *testing.T) {
	t.Parallel()

	buttons := []TabButton{{SectionID: "a", Selected: true}}
	panels := []TabPanel{{ID: "a-content", State: StateActive}}

	gotButtons, gotPanels := SelectTab(buttons, panels, "")
	require.Equal(t, buttons, gotButtons)
	require.Equal(t, panels, gotPanels)
}

func TestPanelMatches(t *testing.T) {
	t.Parallel()

	require.True(t, TabPanel{ID: PanelID("build")}.Matches("build"))
	require.True(t, TabPanel{AriaLabelledBy: ButtonID("build")}.Matches("build"))
	require.False(t, TabPanel{ID: "unrelated"}.Matches("build"))
	require.False(t, TabPanel{}.Matches("build"))
}

func TestSelectTabMatchesEitherAttribute(t *testing.T) {
	t.Parallel()

	panels := []TabPanel{{ID: "panel-x-content", AriaLabelledBy: "tab-y", State: StateInactive}}

	_, got := SelectTab(nil, panels, "y")
	require.Equal(t, StateActive, got[0].State)

	_, got = SelectTab(nil, panels, "panel-x")
	require.Equal(t, StateActive, got[0].State)

	_, got = SelectTab(nil, panels, "z")
	require.Equal(t, StateInactive, got[0].State)
}

func TestTabControls(t *testing.T) {
	t.Parallel()

	buttons, panels := TabControls([]string{"a", "b"}, "a")
	require.True(t, buttons[0].Selected)
	require.False(t, buttons[1].Selected)
	require.Equal(t, "a-content", panels[0].ID)
	require.Equal(t, "tab-b", panels[1].AriaLabelledBy)
	require.Equal(t, StateActive, panels[0].State)
	require.Equal(t, StateInactive, panels[1].State)
}
