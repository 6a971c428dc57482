package provisioning

import (
	"context"

	"doctrack/internal/shared/contextutil"

	"go.uber.org/zap"
)

// Step is one unit of a provisioning flow: an action against an external
// system and, when the action leaves something behind, a compensation that
// undoes it.
type Step struct {
	Name       string
	Run        func(ctx context.Context) error
	Compensate func(ctx context.Context) error
}

// execute runs the steps in order. On the first failure, compensations of
// the already-completed steps run in reverse order and the primary error is
// returned. A compensation failure never masks the primary error; it is
// logged so dangling records can be found and cleaned up.
func execute(ctx context.Context, steps []Step) error {
	completed := make([]Step, 0, len(steps))

	for _, step := range steps {
		if err := step.Run(ctx); err != nil {
			compensate(ctx, completed, step.Name)
			return err
		}
		completed = append(completed, step)
	}

	return nil
}

func compensate(ctx context.Context, completed []Step, failedStep string) {
	l := contextutil.GetLogger(ctx, nil)

	for i := len(completed) - 1; i >= 0; i-- {
		step := completed[i]
		if step.Compensate == nil {
			continue
		}

		if err := step.Compensate(ctx); err != nil {
			l.Error("compensation failed, record may be dangling",
				zap.String("step", step.Name),
				zap.String("failed_step", failedStep),
				zap.Error(err),
			)
		} else {
			l.Info("compensated step",
				zap.String("step", step.Name),
				zap.String("failed_step", failedStep),
			)
		}
	}
}
