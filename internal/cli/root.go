package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/julianstephens/stillness/internal/app"
	"github.com/julianstephens/stillness/internal/backup"
	"github.com/julianstephens/stillness/internal/logger"
	"github.com/julianstephens/stillness/internal/storage"
)

// Context is the shared command context, handed to every kong command.
type Context struct {
	Store storage.Provider
	Debug bool
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	_, err := mgr.CreateBackup()
	if err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// StdinConfirmer implements the controller's confirmation capability on
// standard input for non-TUI commands.
func StdinConfirmer() app.Confirmer {
	return app.ConfirmFunc(func(prompt string) bool {
		fmt.Printf("%s [y/N]: ", prompt)
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil {
			return false
		}
		answer := strings.ToLower(strings.TrimSpace(line))
		return answer == "y" || answer == "yes"
	})
}
