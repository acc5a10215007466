package cli

import (
	"fmt"

	"github.com/julianstephens/stillness/internal/app"
)

type PrefsCmd struct {
	CycleFontSize bool     `help:"Advance the font size to the next setting."`
	Toggle        []string `help:"Toggle a preference." enum:"high-contrast,daily-reminder,achievements,reflection-reminders" optional:""`
}

func (c *PrefsCmd) Run(ctx *Context) error {
	ctrl := app.New(ctx.Store, nil)
	if err := ctrl.Bootstrap(); err != nil {
		return err
	}

	if c.CycleFontSize {
		fmt.Printf("Font size: %s\n", ctrl.CycleFontSize())
	}
	for _, name := range c.Toggle {
		var on bool
		switch name {
		case "high-contrast":
			on = ctrl.ToggleHighContrast()
		case "daily-reminder":
			on = ctrl.ToggleDailyReminder()
		case "achievements":
			on = ctrl.ToggleAchievements()
		case "reflection-reminders":
			on = ctrl.ToggleReflectionReminders()
		}
		fmt.Printf("%s: %s\n", name, onOff(on))
	}

	prefs := ctrl.State().Preferences
	fmt.Println("\nCurrent preferences:")
	fmt.Printf("  Font size:             %s\n", prefs.FontSize)
	fmt.Printf("  High contrast:         %s\n", onOff(prefs.HighContrast))
	fmt.Printf("  Daily reminder:        %s\n", onOff(prefs.Notifications.DailyReminder))
	fmt.Printf("  Achievements:          %s\n", onOff(prefs.Notifications.Achievements))
	fmt.Printf("  Reflection reminders:  %s\n", onOff(prefs.Notifications.ReflectionReminders))
	return nil
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
