package cull

// CullerBuilderOption is a functional option for configuring a Culler.
type CullerBuilderOption func(*cullerImpl)

// WithWorkers sets the maximum number of pool workers. Values <= 0 are treated as 1.
//
// Parameters:
//   - n: maximum concurrent workers
//
// Returns:
//   - CullerBuilderOption: option function to apply
func WithWorkers(n int) CullerBuilderOption {
	return func(c *cullerImpl) {
		c.workers = max(n, 1)
	}
}

// WithBatchSize sets how many spheres one pool task tests. Values <= 0 are treated as 1.
//
// Parameters:
//   - n: spheres per task
//
// Returns:
//   - CullerBuilderOption: option function to apply
func WithBatchSize(n int) CullerBuilderOption {
	return func(c *cullerImpl) {
		c.batchSize = max(n, 1)
	}
}
