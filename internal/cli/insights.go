package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/stillness/internal/app"
	"github.com/julianstephens/stillness/internal/constants"
)

type InsightsCmd struct {
	Filter string `help:"Filter by tag." enum:"all,creative,meaning,personal,general" default:"all"`
}

func (c *InsightsCmd) Run(ctx *Context) error {
	state, err := ctx.Store.Load()
	if err != nil {
		return err
	}

	insights := app.FilterInsights(state, c.Filter)
	if len(insights) == 0 {
		fmt.Println("No insights yet. Complete challenges to capture your thoughts.")
		return nil
	}

	for _, in := range insights {
		preview := in.Preview()
		if len(preview) > 200 {
			preview = preview[:200] + "..."
		}
		fmt.Printf("%s  [%s]  %s\n", in.Date.Format(constants.DateFormat), strings.Join(in.Tags, ","), in.ChallengeTitle)
		fmt.Printf("  %s\n\n", preview)
	}

	return nil
}
