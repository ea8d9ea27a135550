package board

type AssertionError struct {
	message string
}

// [AssertionError] implements [error]
func (e AssertionError) Error() string {
	return e.message
}

func assert(cond bool, message string) {
	if !cond {
		panic(AssertionError{message})
	}
}
