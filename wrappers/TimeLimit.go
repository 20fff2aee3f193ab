package wrappers

import (
	"fmt"

	"github.com/samuelfneumann/gospaces"
)

// TimeLimit wraps a gospaces.Environment and imposes a limit on the
// number of steps per episode. Once maxEpisodeSteps steps have been
// taken since the last Reset, Step reports the episode as done.
type TimeLimit struct {
	gospaces.Environment
	maxEpisodeSteps int
	elapsed         int
}

// NewTimeLimit creates a new TimeLimit wrapper on a gospaces
// Environment.
func NewTimeLimit(env gospaces.Environment,
	maxEpisodeSteps int) (gospaces.Environment, error) {
	if maxEpisodeSteps <= 0 {
		return nil, fmt.Errorf("newTimeLimit: maxEpisodeSteps must be " +
			"positive")
	}

	return &TimeLimit{
		Environment:     env,
		maxEpisodeSteps: maxEpisodeSteps,
	}, nil
}

// Name gets the name of the environment
func (t *TimeLimit) Name() string {
	return fmt.Sprintf("TimeLimit(steps: %v)(%v)", t.maxEpisodeSteps,
		t.Environment.Name())
}

// Reset resets the step counter and the wrapped Environment
func (t *TimeLimit) Reset() (interface{}, error) {
	t.elapsed = 0
	return t.Environment.Reset()
}

// Step takes one environmental step, reporting the episode as done
// once the step limit is reached
func (t *TimeLimit) Step(a interface{}) (interface{}, float64, bool, error) {
	obs, reward, done, err := t.Environment.Step(a)
	if err != nil {
		return nil, 0, false, err
	}

	t.elapsed++
	if t.elapsed >= t.maxEpisodeSteps {
		done = true
	}
	return obs, reward, done, nil
}
