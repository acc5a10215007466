package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/julianstephens/stillness/internal/export"
)

type ExportCmd struct {
	Format string `help:"Export format." enum:"json,csv,insights" default:"json"`
	Output string `help:"Output file path. Defaults to a dated filename in the current directory." type:"path" optional:""`
}

// Run renders the persisted aggregate into the requested format. Export is
// read-only: nothing is persisted back.
func (c *ExportCmd) Run(ctx *Context) error {
	state, err := ctx.Store.Load()
	if err != nil {
		return err
	}

	now := time.Now()
	format := export.Format(c.Format)

	var content []byte
	switch format {
	case export.FormatCSV:
		content = []byte(export.CSV(state))
	case export.FormatInsights:
		content = []byte(export.InsightsReport(state, now))
	default:
		content, err = export.JSON(state, now)
		if err != nil {
			return err
		}
	}

	output := c.Output
	if output == "" {
		output = export.Filename(format, now)
	}

	if err := os.WriteFile(output, content, 0600); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}

	fmt.Printf("✓ Data exported to %s\n", output)
	return nil
}
