package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/lexer"
	"github.com/lumen-lang/lumen/internal/parser"
)

var parseExpression bool

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a Lumen program and dump its AST",
	Long: `Parse Lumen source and print a tree view of the resulting AST.

Reads from stdin if no file or -e expression is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().BoolVarP(&parseExpression, "expression", "e", false, "parse an expression from the command line")
}

func runParse(_ *cobra.Command, args []string) error {
	var input string

	switch {
	case parseExpression:
		if len(args) == 0 {
			return fmt.Errorf("no expression provided")
		}
		input = args[0]
	case len(args) > 0:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("error reading file: %w", err)
		}
		input = string(data)
	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("error reading stdin: %w", err)
		}
		input = string(data)
	}

	l := lexer.New(input)
	p := parser.New(l)
	prog := p.ParseProgram()

	if errs := p.Errors(); len(errs) > 0 {
		for _, e := range errs {
			e.File = "<input>"
			e.Source = input
			renderDiagnostic(e)
		}
		return fmt.Errorf("parsing failed with %d error(s)", len(errs))
	}

	fmt.Printf("Program (%d statements)\n", len(prog.Value.Statements))
	for _, stmt := range prog.Value.Statements {
		dumpNode(stmt, 1)
	}
	return nil
}

func dumpNode(node any, indent int) {
	prefix := strings.Repeat("  ", indent)

	switch n := node.(type) {
	case *ast.ExpressionStatement:
		fmt.Printf("%sExpressionStatement\n", prefix)
		dumpNode(n.Expr, indent+1)
	case *ast.VariableStatement:
		fmt.Printf("%sVariableStatement (const=%v)\n", prefix, n.Const)
		for _, d := range n.Declarators {
			fmt.Printf("%s  %s\n", prefix, d.Name)
			if d.Initializer != nil {
				dumpNode(d.Initializer, indent+2)
			}
		}
	case *ast.FunctionStatement:
		fmt.Printf("%sFunctionStatement %s\n", prefix, n.Name)
		dumpNode(n.Body, indent+1)
	case *ast.ClassStatement:
		fmt.Printf("%sClassStatement %s (%d members)\n", prefix, n.Name, len(n.Members))
	case *ast.EnumStatement:
		fmt.Printf("%sEnumStatement %s (%d members)\n", prefix, n.Name, len(n.Members))
	case *ast.IfStatement:
		fmt.Printf("%sIfStatement\n", prefix)
		dumpNode(n.Condition, indent+1)
	case *ast.ReturnStatement:
		fmt.Printf("%sReturnStatement\n", prefix)
		if n.Value != nil {
			dumpNode(n.Value, indent+1)
		}
	case *ast.BlockExpression:
		fmt.Printf("%sBlockExpression (%d statements)\n", prefix, len(n.Statements))
		for _, s := range n.Statements {
			dumpNode(s, indent+1)
		}
	case *ast.BinaryExpression:
		fmt.Printf("%sBinaryExpression (%s)\n", prefix, n.Operator)
		dumpNode(n.Left, indent+1)
		dumpNode(n.Right, indent+1)
	case *ast.CallExpression:
		fmt.Printf("%sCallExpression (%d args)\n", prefix, len(n.Args))
		dumpNode(n.Callee, indent+1)
	case *ast.IndexExpression:
		fmt.Printf("%sIndexExpression\n", prefix)
		dumpNode(n.Object, indent+1)
		dumpNode(n.Index, indent+1)
	case *ast.MatchExpression:
		fmt.Printf("%sMatchExpression (%d arms)\n", prefix, len(n.Arms))
		dumpNode(n.Scrutinee, indent+1)
	case *ast.NewExpression:
		fmt.Printf("%sNewExpression\n", prefix)
		dumpNode(n.Callee, indent+1)
	case *ast.IntegerLiteral:
		fmt.Printf("%sIntegerLiteral: %d\n", prefix, n.Value)
	case *ast.FloatLiteral:
		fmt.Printf("%sFloatLiteral: %g\n", prefix, n.Value)
	case *ast.StringLiteral:
		fmt.Printf("%sStringLiteral: %q\n", prefix, n.Value)
	case *ast.BooleanLiteral:
		fmt.Printf("%sBooleanLiteral: %v\n", prefix, n.Value)
	case *ast.Identifier:
		fmt.Printf("%sIdentifier: %s\n", prefix, n.Name)
	case *ast.ThisExpression:
		fmt.Printf("%sThisExpression\n", prefix)
	case *ast.NullLiteral:
		fmt.Printf("%sNullLiteral\n", prefix)
	default:
		fmt.Printf("%s%T\n", prefix, node)
	}
}
