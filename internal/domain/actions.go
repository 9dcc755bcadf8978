package domain

// Action represents a user-invocable action in the system.
// This is the domain-level definition of what actions exist.
type Action struct {
	Description string
	Name        string
}

// Actions is the canonical registry of all available actions.
// Sorted alphabetically by Name.
var Actions = []Action{
	{Name: "copy", Description: "Copy the CSS to the clipboard"},
	{Name: "curated", Description: "Pick a random curated palette"},
	{Name: "direction_next", Description: "Next gradient direction"},
	{Name: "direction_pick", Description: "Choose a gradient direction"},
	{Name: "direction_prev", Description: "Previous gradient direction"},
	{Name: "help", Description: "Show keyboard shortcuts"},
	{Name: "quit", Description: "Exit ombre"},
	{Name: "random", Description: "Generate a random gradient"},
	{Name: "swap", Description: "Swap the two colors"},
}

// GetActions returns all available actions.
func GetActions() []Action {
	return Actions
}

// GetActionByName returns an action by its name, or nil if not found.
func GetActionByName(name string) *Action {
	for i := range Actions {
		if Actions[i].Name == name {
			return &Actions[i]
		}
	}
	return nil
}
