package cli

import (
	"fmt"
	"path/filepath"
)

type DoctorCmd struct{}

func (c *DoctorCmd) Run(ctx *Context) error {
	configPath := ctx.Store.GetConfigPath()
	fmt.Printf("Config path:  %s\n", configPath)
	fmt.Printf("Log dir:      %s\n", filepath.Join(filepath.Dir(configPath), "logs"))
	fmt.Printf("Backup dir:   %s\n", filepath.Join(filepath.Dir(configPath), "backups"))

	state, err := ctx.Store.Load()
	if err != nil {
		return err
	}

	fmt.Printf("\nState version:   %d\n", state.Version)
	fmt.Printf("Onboarded:       %t\n", state.Profile.StartDate != nil)
	fmt.Printf("Sessions:        %d\n", len(state.Sessions))
	fmt.Printf("Insights:        %d\n", len(state.Insights))
	fmt.Printf("Draft pending:   %t\n", !state.Draft.IsEmpty())
	return nil
}
