package filter

// Coefficients exclusively owns a filter coefficient buffer together with
// its row width. It is allocated and copied-into during algorithm
// initialization and released on re-initialization or teardown; it is never
// shared or aliased outside the owning algorithm instance.
type Coefficients struct {
	width  int
	values []float64
}

// CopyCoefficients copies n values into a newly owned buffer with the given
// row width. The source slice stays with the caller.
func CopyCoefficients(values []float64, width, n int) (*Coefficients, error) {
	if n <= 0 {
		return nil, errEmptyCoefficients
	}

	if width < 0 {
		return nil, errInvalidWidth
	}

	if len(values) < n {
		return nil, errShortCoefficients
	}

	c := &Coefficients{
		width:  width,
		values: make([]float64, n),
	}
	copy(c.values, values[:n])

	return c, nil
}

// Width returns the per-row element count (detector channels), or 0 for
// purely angle-indexed data.
func (c *Coefficients) Width() int {
	if c == nil {
		return 0
	}

	return c.width
}

// Len returns the total element count.
func (c *Coefficients) Len() int {
	if c == nil {
		return 0
	}

	return len(c.values)
}

// Values returns the owned backing slice, or nil after Release.
func (c *Coefficients) Values() []float64 {
	if c == nil {
		return nil
	}

	return c.values
}

// Release drops the backing storage. Safe to call more than once.
func (c *Coefficients) Release() {
	if c == nil {
		return
	}

	c.values = nil
	c.width = 0
}
