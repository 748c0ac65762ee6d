// Package tui provides terminal user interface components for potview.
//
// This package uses the Bubble Tea framework to create the interactive pot
// picker used by the pick command.
//
// # Pot Picker
//
// The picker displays the resolved pot inventory with live run state and
// lets the user select one entry:
//
//	entry, err := tui.RunPicker(entries)
//	if entry != nil {
//	    // render the selected pot
//	}
//
// # Picker Features
//
//   - Lists every pot with its network type, address and run state
//   - Keyboard navigation (j/k or arrows) and / filtering
//   - Enter selects, q or esc quits without a selection
//
// # Dependencies
//
// Uses the Charm libraries:
//   - github.com/charmbracelet/bubbletea - TUI framework
//   - github.com/charmbracelet/bubbles - UI components
//   - github.com/charmbracelet/lipgloss - Styling
package tui
