package gospaces

// Environment describes a reinforcement learning environment: a
// control loop that produces observations from its observation space
// and consumes actions from its action space. The wrappers subpackage
// decorates Environments, e.g. to flatten their observations with the
// transform engine in this package.
type Environment interface {
	// Name gets the name of the environment
	Name() string

	// ActionSpace returns the space of legal actions
	ActionSpace() Space

	// ObservationSpace returns the space of observations
	ObservationSpace() Space

	// Seed seeds all randomness in the environment
	Seed(uint64)

	// Reset resets the Environment and returns the starting
	// observation
	Reset() (interface{}, error)

	// Step takes one environmental step given some action a and
	// returns the next observation, reward, and a flag indicating if
	// the episode has completed
	Step(a interface{}) (interface{}, float64, bool, error)

	// Close performs cleanup of environment resources. It should be
	// called once the environment is no longer needed.
	Close()
}
