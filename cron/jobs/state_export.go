package jobs

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"equiprent.GO/config"
	"equiprent.GO/model/repository/state"
)

func init() {
	config.CronJobs["stateexportjob"] = config.CronJob{Schedule: "0 3 * * *", Job: StateExportJob}
}

// StateExportJob dumps the current application snapshot to a timestamped
// JSON file under the backup directory. An optional first argument
// overrides the target directory.
func StateExportJob(args ...string) {
	config.LoadAppConfig()
	dir := config.AppConfig.BackupDir
	if len(args) > 0 && args[0] != "" {
		dir = args[0]
	}

	db, err := config.NewDB()
	if err != nil {
		log.Printf("stateexportjob: open db: %v", err)
		return
	}
	store, err := state.NewStore(db)
	if err != nil {
		log.Printf("stateexportjob: init store: %v", err)
		return
	}
	raw, err := store.Export()
	if err != nil {
		log.Printf("stateexportjob: export: %v", err)
		return
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Printf("stateexportjob: mkdir %s: %v", dir, err)
		return
	}
	name := fmt.Sprintf("state_%s.json", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, raw, 0644); err != nil {
		log.Printf("stateexportjob: write %s: %v", path, err)
		return
	}
	log.Printf("stateexportjob: snapshot exported to %s", path)
}
