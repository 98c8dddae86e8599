package acquire

import (
	"bufio"
	"fmt"
	"io"

	"rov-photosphere/internal/pose"
)

// ConsoleOperator gates each capture on a line read from the console: the
// operator repositions the rig, then presses enter.
type ConsoleOperator struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsoleOperator reads confirmations from in and prompts on out.
func NewConsoleOperator(in io.Reader, out io.Writer) *ConsoleOperator {
	return &ConsoleOperator{in: bufio.NewReader(in), out: out}
}

// Confirm prompts for the pose and blocks until enter, or reports false on
// EOF (operator walked away / input closed).
func (c *ConsoleOperator) Confirm(p pose.Pose) bool {
	fmt.Fprintf(c.out, "Set rig to %s, then press ENTER to capture. ", p)
	_, err := c.in.ReadString('\n')
	return err == nil
}
