package natives

import (
	"testing"

	"github.com/lumen-lang/lumen/internal/evaluator"
)

func openTestDB(t *testing.T) evaluator.String {
	t.Helper()
	v := sqlOpen(evaluator.NewFArguments([]evaluator.Value{evaluator.String{Value: ":memory:"}}))
	handle, ok := v.(evaluator.String)
	if !ok {
		t.Fatalf("open returned %#v, want String handle", v)
	}
	return handle
}

func TestSQLOpenExecQueryClose(t *testing.T) {
	handle := openTestDB(t)
	defer sqlClose(evaluator.NewFArguments([]evaluator.Value{handle}))

	create := sqlExec(evaluator.NewFArguments([]evaluator.Value{
		handle, evaluator.String{Value: "create table users (id integer, name text)"},
	}))
	if _, ok := create.(evaluator.ErrorValue); ok {
		t.Fatalf("create table failed: %#v", create)
	}

	insert := sqlExec(evaluator.NewFArguments([]evaluator.Value{
		handle, evaluator.String{Value: "insert into users (id, name) values (1, 'ada')"},
	}))
	n, ok := insert.(evaluator.Number)
	if !ok || n.Value != 1 {
		t.Fatalf("insert = %#v, want Number(1)", insert)
	}

	rows := sqlQuery(evaluator.NewFArguments([]evaluator.Value{
		handle, evaluator.String{Value: "select id, name from users"},
	}))
	arr, ok := rows.(evaluator.Array)
	if !ok || len(arr.Elements) != 1 {
		t.Fatalf("query = %#v, want a 1-row Array", rows)
	}
	row, ok := arr.Elements[0].(*evaluator.ObjectVal)
	if !ok {
		t.Fatalf("row = %#v, want *ObjectVal", arr.Elements[0])
	}
	name, ok := row.Entries["name"]
	if !ok {
		t.Fatalf("row has no name field: %#v", row)
	}
	if s, ok := name.(evaluator.String); !ok || s.Value != "ada" {
		t.Fatalf("row.name = %#v, want String(ada)", name)
	}
}

func TestSQLExecOnUnknownHandleIsReferenceError(t *testing.T) {
	v := sqlExec(evaluator.NewFArguments([]evaluator.Value{
		evaluator.String{Value: "sqldb#does-not-exist"}, evaluator.String{Value: "select 1"},
	}))
	errVal, ok := v.(evaluator.ErrorValue)
	if !ok {
		t.Fatalf("exec(unknown handle) = %#v, want ErrorValue", v)
	}
	if errVal.Error.Code != "Reference" {
		t.Fatalf("exec(unknown handle) code = %s, want Reference", errVal.Error.Code)
	}
}

func TestSQLCloseIsNotReusable(t *testing.T) {
	handle := openTestDB(t)
	if v := sqlClose(evaluator.NewFArguments([]evaluator.Value{handle})); evaluator.IsError(v) {
		t.Fatalf("close failed: %#v", v)
	}
	v := sqlClose(evaluator.NewFArguments([]evaluator.Value{handle}))
	if _, ok := v.(evaluator.ErrorValue); !ok {
		t.Fatalf("second close = %#v, want ErrorValue", v)
	}
}
