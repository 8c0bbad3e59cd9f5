package cmd

import "testing"

func TestRunParseReportsSyntaxErrors(t *testing.T) {
	prev := parseExpression
	parseExpression = true
	t.Cleanup(func() { parseExpression = prev })

	if err := runParse(nil, []string{"let x: number ="}); err == nil {
		t.Fatalf("runParse(incomplete expression) = nil error, want a parse error")
	}
}

func TestRunParseAcceptsWellFormedExpression(t *testing.T) {
	prev := parseExpression
	parseExpression = true
	t.Cleanup(func() { parseExpression = prev })

	if err := runParse(nil, []string{"let x: number = 1 + 2;"}); err != nil {
		t.Fatalf("runParse(valid statement) returned error: %v", err)
	}
}

func TestRunParseRequiresExpressionArgument(t *testing.T) {
	prev := parseExpression
	parseExpression = true
	t.Cleanup(func() { parseExpression = prev })

	if err := runParse(nil, nil); err == nil {
		t.Fatalf("runParse(-e with no argument) = nil error, want an error")
	}
}
