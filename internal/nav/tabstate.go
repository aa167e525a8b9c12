package nav

// Panel states written to data-state.
const (
	StateActive   = "active"
	StateInactive = "inactive"
)

// TabButton is a role="tab" element identified by its data-section-id.
type TabButton struct {
	SectionID string `json:"sectionId"`
	Selected  bool   `json:"selected"`
}

// TabPanel is a role="tabpanel" element.
type TabPanel struct {
	ID             string `json:"id,omitempty"`
	AriaLabelledBy string `json:"ariaLabelledBy,omitempty"`
	State          string `json:"state"`
}

// PanelID is the element id of the panel showing sectionID.
func PanelID(sectionID string) string {
	return sectionID + "-content"
}

// ButtonID is the element id of the button selecting sectionID.
func ButtonID(sectionID string) string {
	return "tab-" + sectionID
}

// Matches reports whether the panel shows sectionID, either through its id
// or through aria-labelledby.
func (p TabPanel) Matches(sectionID string) bool {
	return p.ID == PanelID(sectionID) || p.AriaLabelledBy == ButtonID(sectionID)
}

// SelectTab activates sectionID: its button becomes selected and its panels
// active, every other button and panel is cleared. An empty sectionID leaves
// the state unchanged. The inputs are not modified.
func SelectTab(buttons []TabButton, panels []TabPanel, sectionID string) ([]TabButton, []TabPanel) {
	outButtons := make([]TabButton, len(buttons))
	outPanels := make([]TabPanel, len(panels))
	copy(outButtons, buttons)
	copy(outPanels, panels)

	if sectionID == "" {
		return outButtons, outPanels
	}

	for i := range outButtons {
		outButtons[i].Selected = outButtons[i].SectionID == sectionID
	}
	for i := range outPanels {
		if outPanels[i].Matches(sectionID) {
			outPanels[i].State = StateActive
		} else {
			outPanels[i].State = StateInactive
		}
	}

	return outButtons, outPanels
}

// TabControls builds the initial button and panel state for tab ids with
// activeID selected.
func TabControls(tabIDs []string, activeID string) ([]TabButton, []TabPanel) {
	buttons := make([]TabButton, 0, len(tabIDs))
	panels := make([]TabPanel, 0, len(tabIDs))
	for _, id := range tabIDs {
		buttons = append(buttons, TabButton{SectionID: id})
		panels = append(panels, TabPanel{ID: PanelID(id), AriaLabelledBy: ButtonID(id), State: StateInactive})
	}
	return SelectTab(buttons, panels, activeID)
}
