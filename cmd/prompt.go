package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// HoldingPrompter obtains the holding to simulate from the user.
type HoldingPrompter interface {
	PromptHolding() (int64, error)
}

// linePrompter asks for the holding on out and reads it from a line of in.
type linePrompter struct {
	in  io.Reader
	out io.Writer
}

func (p *linePrompter) PromptHolding() (int64, error) {
	fmt.Fprint(p.out, "How many Premium Bonds have you bought? ")
	line, err := bufio.NewReader(p.in).ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return 0, fmt.Errorf("cannot read the holding: %w", err)
	}
	line = strings.ReplaceAll(strings.TrimSpace(line), ",", "")
	holding, err := strconv.ParseInt(line, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("holding must be a whole number of bonds, got %q", line)
	}
	return holding, nil
}
