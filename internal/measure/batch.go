package measure

// Split returns the values and errors of ms as two parallel slices in input order.
func Split(ms []Measurement) (values, errs []float64) {
	values = make([]float64, len(ms))
	errs = make([]float64, len(ms))
	for i, m := range ms {
		values[i] = m.value
		errs[i] = m.err
	}
	return values, errs
}
