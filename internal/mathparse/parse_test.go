package mathparse_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/calcyard/mathcalc/internal/mathparse"
)

func compare(t *testing.T, expr, expectedPostfix string) {
	t.Helper()
	postfix, err := mathparse.Default().Parse(expr)
	if err != nil {
		t.Errorf("Parse(%q): unexpected error %v", expr, err)
		return
	}
	if got := strings.Join(postfix, " "); got != expectedPostfix {
		t.Errorf("Parse(%q) = %q, want %q", expr, got, expectedPostfix)
	}
}

func compareErr(t *testing.T, expr string, want error) {
	t.Helper()
	_, err := mathparse.Default().Parse(expr)
	if err == nil {
		t.Errorf("Parse(%q): expected error, got none", expr)
		return
	}
	if !errors.Is(err, want) {
		t.Errorf("Parse(%q) error = %v, want %v", expr, err, want)
	}
}

func TestIgnoreSpace(t *testing.T) {
	compare(t, "2 - 2+2", "2 2 - 2 +")
}

func TestProcedureOfActions(t *testing.T) {
	compare(t, "2 + 2 * 2", "2 2 2 * +")
	compare(t, "200 / 5 + 1", "200 5 / 1 +")
}

func TestChangeOrderByParens(t *testing.T) {
	compare(t, "(1 + 2 * 3) / 4", "1 2 3 * + 4 /")
	compare(t, "1 + 2 * 3 / 4", "1 2 3 * 4 / +")
}

func TestMultipleParens(t *testing.T) {
	compare(t, "(1 / (2 * 3) / 4) + 5", "1 2 3 * / 4 / 5 +")
	compare(t, "(1 - 2) * (3 + 4) / (5 + 6)", "1 2 - 3 4 + * 5 6 + /")
}

func TestFloatNumber(t *testing.T) {
	compare(t, "2.5 + 5", "2.5 5 +")
}

func TestAdjacentTokensIsolated(t *testing.T) {
	compare(t, "cos(pi+2)", "pi 2 + cos")
	compare(t, "12+34", "12 34 +")
}

func TestFunctionArguments(t *testing.T) {
	compare(t, "sin(1, 2)", "1 2 sin")
}

func TestImplicitMultiplication(t *testing.T) {
	compare(t, "2pi", "2 pi *")
	compare(t, "2sin(1)", "2 1 sin *")
}

func TestUnaryOperator(t *testing.T) {
	compare(t, "3!", "3 !")
	compare(t, "3! + 1", "3 ! 1 +")
	compare(t, "3!!", "3 ! !")
}

func TestPrefixUseOfPostfixOperator(t *testing.T) {
	compareErr(t, "!3", mathparse.ErrUnknownToken)
	compareErr(t, "2 + !3", mathparse.ErrUnknownToken)
}

func TestParenErrors(t *testing.T) {
	compareErr(t, "(2+3", mathparse.ErrMismatchedParenthesis)
	compareErr(t, "2+3)", mathparse.ErrMismatchedParenthesis)
	compareErr(t, "1, 2", mathparse.ErrMismatchedParenthesis)
}

func TestUnknownToken(t *testing.T) {
	compareErr(t, "2 $ 3", mathparse.ErrUnknownToken)
	compareErr(t, "2 + x", mathparse.ErrUnknownToken)
}

func TestUnknownTokenIsOperatorError(t *testing.T) {
	_, err := mathparse.Default().Parse("2 # 3")
	var opErr *mathparse.OperatorError
	if !errors.As(err, &opErr) {
		t.Fatalf("expected OperatorError, got %T: %v", err, err)
	}
	if opErr.Token != "#" {
		t.Errorf("offending token = %q, want %q", opErr.Token, "#")
	}
}

func TestEmptyExpression(t *testing.T) {
	postfix, err := mathparse.Default().Parse("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(postfix) != 0 {
		t.Errorf("expected empty postfix, got %v", postfix)
	}
}

func TestParseIsReproducible(t *testing.T) {
	eval := mathparse.Default()
	first, err := eval.Parse("2 + 3 * cos(pi)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a, err := eval.EvaluatePostfix(first)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := eval.EvaluatePostfix(first)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a != b {
		t.Errorf("re-evaluation differs: %v then %v", a, b)
	}
}
