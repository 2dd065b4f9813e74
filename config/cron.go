package config

// Map of job names to job functions
type CronJob struct {
	Schedule string
	Job      func(...string)
}

// Jobs register themselves here from init() (see cron/jobs) to avoid an
// import cycle with packages that need config.
var CronJobs = map[string]CronJob{
	// Add more jobs here
}
