package ui

import "github.com/charmbracelet/bubbles/key"

// NavigationKeys defines key bindings for moving between and adjusting controls
type NavigationKeys struct {
	Cancel       key.Binding
	ChannelDown  key.Binding
	ChannelUp    key.Binding
	Decrease     key.Binding
	DecreaseFast key.Binding
	Edit         key.Binding
	FocusNext    key.Binding
	FocusPrev    key.Binding
	Increase     key.Binding
	IncreaseFast key.Binding
}

func newNavigationKeys(b map[string]key.Binding) NavigationKeys {
	return NavigationKeys{
		Cancel:       b["cancel"],
		ChannelDown:  b["channel_down"],
		ChannelUp:    b["channel_up"],
		Decrease:     b["decrease"],
		DecreaseFast: b["decrease_fast"],
		Edit:         b["edit"],
		FocusNext:    b["focus_next"],
		FocusPrev:    b["focus_prev"],
		Increase:     b["increase"],
		IncreaseFast: b["increase_fast"],
	}
}

func (k NavigationKeys) all() []key.Binding {
	return []key.Binding{
		k.FocusNext, k.FocusPrev, k.ChannelUp, k.ChannelDown,
		k.Decrease, k.Increase, k.DecreaseFast, k.IncreaseFast,
		k.Edit, k.Cancel,
	}
}
