package studio

import (
	"time"
)

type Time struct {
	Time  time.Time
	Dt    time.Duration
	Frame uint64

	clock func() time.Time
}

// TimeModule keeps the frame clock. Clock defaults to time.Now.
type TimeModule struct {
	Clock func() time.Time
}

func (mod TimeModule) Install(app *App, cmd *Commands) {
	clock := mod.Clock
	if clock == nil {
		clock = time.Now
	}
	cmd.AddResources(&Time{
		Time:  clock(),
		clock: clock,
	})
	app.UseSystem(
		System(timeSystem).
			InStage(PreUpdate).
			RunAlways(),
	)
}

func timeSystem(timeResource *Time) {
	now := timeResource.clock()

	timeResource.Dt = now.Sub(timeResource.Time)
	timeResource.Time = now
	timeResource.Frame++
}
