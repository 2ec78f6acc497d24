package driver

import "bbcx/translate"

var f = translate.From

// ErrFile tags a build error with the source file that raised it.
type ErrFile struct {
	Path string
	Err  error
}

func (err *ErrFile) Error() string {
	return f("%s: %v", err.Path, err.Err)
}

func (err *ErrFile) Unwrap() error {
	return err.Err
}
