package parser

import (
	"fmt"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/lumen-lang/lumen/internal/lexer"
)

func parse(t *testing.T, src string) *Parser {
	t.Helper()
	p := New(lexer.New(src))
	return p
}

func TestParseVariableStatement(t *testing.T) {
	p := parse(t, `let x: number = 1;`)
	prog := p.ParseProgram()
	if len(p.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", p.Errors())
	}
	if len(prog.Value.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(prog.Value.Statements))
	}
}

func TestParseFunctionAndCall(t *testing.T) {
	p := parse(t, `
function add(a: number, b: number): number {
	return a + b;
}
add(1, 2);
`)
	prog := p.ParseProgram()
	if len(p.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", p.Errors())
	}
	snaps.MatchSnapshot(t, fmt.Sprintf("%d statements", len(prog.Value.Statements)))
}

func TestParseClassWithConstructor(t *testing.T) {
	p := parse(t, `
class Point {
	x: number;
	y: number;
	constructor(x: number, y: number) {
		this.x = x;
		this.y = y;
	}
}
`)
	prog := p.ParseProgram()
	if len(p.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", p.Errors())
	}
	if len(prog.Value.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(prog.Value.Statements))
	}
}

func TestParseIfElse(t *testing.T) {
	p := parse(t, `if (x > 0) { return 1; } else { return 0; }`)
	p.ParseProgram()
	if len(p.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", p.Errors())
	}
}

func TestParseArrowFunction(t *testing.T) {
	p := parse(t, `const f = (x: number): number => x + 1;`)
	p.ParseProgram()
	if len(p.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", p.Errors())
	}
}

func TestParseUnionType(t *testing.T) {
	p := parse(t, `let x: number | string;`)
	p.ParseProgram()
	if len(p.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", p.Errors())
	}
}

func TestParseForLoopIsRejected(t *testing.T) {
	p := parse(t, `for; let x: number = 1; x;`)
	prog := p.ParseProgram()
	if len(p.Errors()) == 0 {
		t.Fatalf("expected a parse error rejecting the for-loop")
	}
	if len(prog.Value.Statements) != 2 {
		t.Fatalf("expected parsing to recover and still see 2 trailing statements, got %d", len(prog.Value.Statements))
	}
}

func TestParseImportAndEnum(t *testing.T) {
	p := parse(t, `
import { uuid } from "uuid";
enum Color { Red, Green, Blue }
`)
	prog := p.ParseProgram()
	if len(p.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", p.Errors())
	}
	if len(prog.Value.Statements) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(prog.Value.Statements))
	}
}
