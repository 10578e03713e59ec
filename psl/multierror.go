package psl

// MultiError aggregates per-line parse failures.
type MultiError struct {
	errs []error
}

func (m *MultiError) Add(err error) {
	m.errs = append(m.errs, err)
}

func (m *MultiError) Len() int {
	return len(m.errs)
}

func (m *MultiError) Empty() bool {
	return len(m.errs) == 0
}

func (m *MultiError) Error() string {
	if len(m.errs) == 0 {
		return ""
	}

	var s string
	for _, v := range m.errs {
		s += v.Error()
		s += ";"
	}

	s = s[:len(s)-1]
	return s
}
