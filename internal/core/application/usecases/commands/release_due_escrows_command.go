package commands

import (
	"errors"

	"dragonpath/internal/pkg/guard"
)

var ErrReleaseDueEscrowsCommandIsNotConstructed = errors.New(
	"ReleaseDueEscrowsCommand must be created via NewReleaseDueEscrowsCommand constructor",
)

// ReleaseDueEscrowsCommand triggers the scheduled escrow auto-release sweep:
// delivered orders whose buyer never confirmed receipt within the auto-release
// window are confirmed automatically and their escrow released.
type ReleaseDueEscrowsCommand struct {
	guard guard.ConstructorGuard
}

// NewReleaseDueEscrowsCommand creates a command to run the auto-release sweep.
func NewReleaseDueEscrowsCommand() ReleaseDueEscrowsCommand {
	return ReleaseDueEscrowsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c ReleaseDueEscrowsCommand) Validate() error {
	return c.guard.Validate(ErrReleaseDueEscrowsCommandIsNotConstructed)
}
