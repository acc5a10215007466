package cli

import (
	"fmt"

	"github.com/julianstephens/stillness/internal/app"
)

type ResetCmd struct {
	Force bool `help:"Skip the confirmation prompt." short:"f"`
}

// Run wipes all progress. An automatic backup of the state file is taken
// first so an accidental reset stays recoverable.
func (c *ResetCmd) Run(ctx *Context) error {
	confirm := StdinConfirmer()
	if c.Force {
		confirm = nil
	}

	ctrl := app.New(ctx.Store, confirm)
	if err := ctrl.Bootstrap(); err != nil {
		return err
	}

	ctx.PerformAutomaticBackup()

	if !ctrl.ResetProgress() {
		fmt.Println("Reset cancelled.")
		return nil
	}

	fmt.Println("✓ All progress has been reset.")
	return nil
}
