package synth

import "fmt"

func errUnsupportedStatement(stmt any) error {
	return fmt.Errorf("synth: unsupported statement type %T", stmt)
}

func errWidthMismatch(op string, lhs, rhs int) error {
	return fmt.Errorf("synth: %s width mismatch: lhs=%d rhs=%d", op, lhs, rhs)
}

func errEmptyCondition() error {
	return fmt.Errorf("synth: if condition synthesized to zero lines")
}

func errArgCountMismatch(module string, want, got int) error {
	return fmt.Errorf("synth: call to %q expects %d arguments, got %d", module, want, got)
}

func errUnsupportedExpression(expr any) error {
	return fmt.Errorf("synth: unsupported expression type %T", expr)
}

func errUnsupportedOp(op any) error {
	return fmt.Errorf("synth: unsupported operator %v", op)
}
