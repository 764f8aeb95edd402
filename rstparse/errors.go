package rstparse

import (
	"fmt"

	"github.com/pkg/errors"
)

// GrammarError reports a source position the block or inline scanner
// could not make sense of. It carries a stack via pkg/errors since
// this is the one error class in the codebase a maintainer actually
// needs a trace for: grammar failures come from arbitrary user input
// and the failing rule alone rarely explains why.
type GrammarError struct {
	Rule Rule
	Line int
	Msg  string
}

func (e *GrammarError) Error() string {
	return fmt.Sprintf("rst: line %d: %s (in %s)", e.Line, e.Msg, e.Rule)
}

func newGrammarError(rule Rule, line int, msg string) error {
	return errors.WithStack(&GrammarError{Rule: rule, Line: line, Msg: msg})
}
