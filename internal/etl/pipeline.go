package etl

import (
	"fmt"
	"time"

	"github.com/BartekS5/sde2csv/pkg/logger"
)

// Pipeline runs steps strictly one after another and stops at the first
// failure.
type Pipeline struct {
	Steps  []Step
	DryRun bool
}

func NewPipeline(steps []Step, dryRun bool) *Pipeline {
	return &Pipeline{
		Steps:  steps,
		DryRun: dryRun,
	}
}

func (p *Pipeline) Run() error {
	startTime := time.Now()

	for _, step := range p.Steps {
		if p.DryRun {
			logger.Infof("[DRY RUN] Would convert %s", step.Name())
			continue
		}

		logger.Infof("Converting %s...", step.Name())
		stepStart := time.Now()
		if err := step.Run(); err != nil {
			logger.Errorf("Converting %s failed: %v", step.Name(), err)
			return fmt.Errorf("%s: %w", step.Name(), err)
		}
		logger.Infof("Finished %s in %s", step.Name(), time.Since(stepStart).Round(time.Millisecond))
	}

	logger.Infof("Done! %d tables in %s", len(p.Steps), time.Since(startTime).Round(time.Millisecond))
	return nil
}

// StepFunc adapts a function to the Step interface.
type StepFunc struct {
	StepName string
	Fn       func() error
}

func (s StepFunc) Name() string { return s.StepName }

func (s StepFunc) Run() error { return s.Fn() }
