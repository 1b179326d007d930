package parse

import (
	"bufio"
	"bytes"
	"errors"
	"io"
)

// forEachLine calls fn for every line of r, numbered from 1 and without the
// line ending. Lines of any length are returned whole. Iteration stops early
// when fn returns false.
func forEachLine(r io.Reader, fn func(num int, line []byte) bool) error {
	br := bufio.NewReaderSize(r, 64*1024)
	num := 0
	for {
		line, err := br.ReadBytes('\n')
		if len(line) > 0 {
			num++
			if !fn(num, bytes.TrimRight(line, "\r\n")) {
				return nil
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}
