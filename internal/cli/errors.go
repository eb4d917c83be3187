package cli

import "fmt"

type invalidIDError struct {
	arg string
}

func (e invalidIDError) Error() string {
	return fmt.Sprintf("invalid id: %q (want a numeric record id)", e.arg)
}

func errInvalidID(arg string) error {
	return invalidIDError{arg: arg}
}
