package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/stillness/internal/app"
	"github.com/julianstephens/stillness/internal/constants"
)

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	state, err := ctx.Store.Load()
	if err != nil {
		return err
	}

	if state.Profile.StartDate == nil {
		fmt.Println("No progress yet. Run 'stillness' to start the onboarding assessment.")
		return nil
	}

	dash := app.Dashboard(state)
	profile := app.Profile(state, time.Now())

	fmt.Printf("Level:            %d\n", profile.Level)
	fmt.Printf("Streak:           %d day(s)\n", profile.Streak)
	fmt.Printf("Days practicing:  %d\n", profile.DaysSinceStart)
	fmt.Printf("Total sessions:   %d\n", profile.TotalSessions)
	fmt.Printf("Total time:       %d min\n", profile.TotalTime)
	fmt.Printf("Longest session:  %d min\n", profile.LongestSession)
	fmt.Printf("Insights:         %d\n", profile.TotalInsights)
	fmt.Println()
	fmt.Printf("Tolerance score:  %d%%\n", dash.ToleranceScore)
	fmt.Printf("Freedom score:    %d%%\n", dash.FreedomScore)
	fmt.Println()
	fmt.Printf("Boredom proneness:  %d (%s)\n", state.Assessment.Proneness, profile.PronenessLabel)
	fmt.Printf("Phone dependency:   %d (%s)\n", state.Assessment.Dependency, profile.DependencyLabel)
	fmt.Printf("Sense of meaning:   %d (%s)\n", state.Assessment.Meaning, profile.MeaningLabel)

	if state.Profile.LastSessionDate != nil {
		fmt.Printf("\nLast session:     %s\n", state.Profile.LastSessionDate.Format(constants.DateFormat))
	}

	return nil
}
