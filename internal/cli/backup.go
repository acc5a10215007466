package cli

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/julianstephens/stillness/internal/backup"
	"github.com/julianstephens/stillness/internal/constants"
)

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backupPath, err := mgr.CreateBackup()
	if err != nil {
		return fmt.Errorf("backup failed: %w", err)
	}

	fmt.Printf("✓ Backup created: %s\n", filepath.Base(backupPath))
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	if len(backups) == 0 {
		fmt.Println("No backups found.")
		fmt.Printf("Backups are stored in: %s\n", mgr.GetBackupDir())
		return nil
	}

	fmt.Printf("Available backups (%d total, keeping most recent %d):\n\n", len(backups), constants.MaxBackups)
	for i, b := range backups {
		fmt.Printf("  [%d] %s  %s  %d bytes\n", i+1, filepath.Base(b.Path),
			b.Timestamp.Format("2006-01-02 15:04"), b.Size)
	}
	return nil
}

type BackupRestoreCmd struct {
	Backup string `arg:"" help:"Backup filename or index from 'backup list'."`
}

func (c *BackupRestoreCmd) Run(ctx *Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	target := ""
	if idx, err := strconv.Atoi(c.Backup); err == nil {
		if idx < 1 || idx > len(backups) {
			return fmt.Errorf("backup index out of range: %d", idx)
		}
		target = backups[idx-1].Path
	} else {
		for _, b := range backups {
			if filepath.Base(b.Path) == c.Backup {
				target = b.Path
				break
			}
		}
		if target == "" {
			return fmt.Errorf("backup not found: %s", c.Backup)
		}
	}

	if err := mgr.RestoreBackup(target); err != nil {
		return err
	}

	fmt.Printf("✓ Restored state from %s\n", filepath.Base(target))
	return nil
}
