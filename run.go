package instalens

import (
	humanize "github.com/dustin/go-humanize"
	log "github.com/sirupsen/logrus"
)

// Runner executes the analysis pipeline once: extract both relationship
// exports, compare, and write the report.
type Runner struct {
	config *Config
}

// NewRunner creates a Runner with the given options applied on top of
// the default configuration
func NewRunner(options ...Option) (*Runner, error) {
	config := NewConfig()

	for _, opt := range options {
		if err := opt(config); err != nil {
			return nil, err
		}
	}

	return &Runner{config: config}, nil
}

// Config returns the runner's effective configuration
func (r *Runner) Config() *Config {
	return r.config
}

// Run performs a single end-to-end analysis. Per-file and per-record
// anomalies have already been handled (logged and skipped) by the time
// the sets are compared; the only error surfaced to the caller is a
// failure to write the report. When both exports yield nothing, no
// report is produced at all.
func (r *Runner) Run() error {
	conf := r.config

	log.Infof("reading followers data from %s", conf.FollowersFile)
	followers := ExtractFile(conf.FollowersFile)

	log.Infof("reading following data from %s", conf.FollowingFile)
	following := ExtractFile(conf.FollowingFile)

	if len(followers) == 0 && len(following) == 0 {
		log.Warn("no data extracted from either file, skipping analysis")
		return nil
	}

	analysis := Analyze(followers, following)

	if err := WriteReport(conf.OutputFile, analysis); err != nil {
		log.WithError(err).Errorf("error writing report to %s", conf.OutputFile)
		return err
	}

	log.Infof(
		"analysis complete: %s mutual, %s not following you back, %s not followed back by you",
		humanize.Comma(int64(len(analysis.Mutual))),
		humanize.Comma(int64(len(analysis.NotFollowingBack))),
		humanize.Comma(int64(len(analysis.UserNotFollowingBack))),
	)
	log.Infof("results saved to %s", conf.OutputFile)

	return nil
}
