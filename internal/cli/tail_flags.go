package cli

import (
	"time"

	"github.com/vburojevic/scalyr-tool/internal/tail"
)

// TailTuningFlags exposes the poll loop limits as hidden flags.
type TailTuningFlags struct {
	PollInterval time.Duration `hidden:"" default:"10s" help:"Time between polls"`
	MaxDuration  time.Duration `hidden:"" default:"10m" help:"Session length before the tail expires"`
	Readback     time.Duration `hidden:"" default:"10m" help:"How far back each poll looks"`
	MaxPerPoll   int           `hidden:"" default:"1000" help:"Maximum records requested per poll"`
	SeenCapacity int           `hidden:"" default:"1000" help:"Number of record keys remembered for deduplication"`
}

func (f TailTuningFlags) apply(cfg tail.Config) tail.Config {
	if f.PollInterval > 0 {
		cfg.PollInterval = f.PollInterval
	}
	if f.MaxDuration > 0 {
		cfg.MaxSessionDuration = f.MaxDuration
	}
	if f.Readback > 0 {
		cfg.ReadbackWindow = f.Readback
	}
	if f.MaxPerPoll > 0 {
		cfg.MaxRecordsPerPoll = f.MaxPerPoll
	}
	if f.SeenCapacity > 0 {
		cfg.SeenCapacity = f.SeenCapacity
	}
	return cfg
}
