package containers

import (
	"bufio"
	"io"
)

// Lines delivers the lines of a seekable reader without their line endings.
// Every traversal rewinds to the start. Read errors end the traversal and are
// returned unchanged.
type Lines struct {
	R io.ReadSeeker
}

func (me Lines) Each(f func(string) error) error {
	if _, err := me.R.Seek(0, io.SeekStart); err != nil {
		return err
	}
	s := bufio.NewScanner(me.R)
	for s.Scan() {
		if err := f(s.Text()); err != nil {
			return err
		}
	}
	return s.Err()
}
