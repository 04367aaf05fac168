package expr

import (
	"fmt"
	"io"
	"strings"
)

func traceStep(w io.Writer, output, stack []Token) {
	if w == nil {
		return
	}
	fmt.Fprintf(w, "output: %s\n", tokenList(output))
	fmt.Fprintf(w, "stack:  %s\n", tokenList(stack))
}

func tokenList(tokens []Token) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		parts[i] = t.Text
	}
	return strings.Join(parts, " ")
}
