package riskmap

import (
	"bufio"
	"io"
	"strings"

	"github.com/carbocation/pfx"
)

// DetectSeparator reports whether the fields in the reader are comma- or
// tab-separated by inspecting only the first line: any comma anywhere in
// that line selects comma, otherwise tab. This is a deliberate heuristic,
// not a sniffer. A quoted field containing a literal comma on the first
// line will therefore select comma even in a tab-separated file.
func DetectSeparator(r io.Reader) (rune, error) {
	firstLine, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return 0, pfx.Err(err)
	}

	if strings.Contains(firstLine, ",") {
		return ',', nil
	}

	return '\t', nil
}
