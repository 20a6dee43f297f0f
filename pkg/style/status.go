package style

import (
	"github.com/arthur-debert/idot/pkg/types"
	"github.com/pterm/pterm"
)

// ActionStyle returns the pterm badge style for an action
func ActionStyle(action types.Action) *pterm.Style {
	switch action {
	case types.ActionCreated, types.ActionDeleted:
		return pterm.NewStyle(pterm.BgGreen, pterm.FgBlack)
	case types.ActionFailed:
		return pterm.NewStyle(pterm.BgRed, pterm.FgWhite, pterm.Bold)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}
