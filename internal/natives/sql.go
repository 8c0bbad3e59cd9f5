package natives

import (
	"database/sql"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/lumen-lang/lumen/internal/config"
	"github.com/lumen-lang/lumen/internal/diagnostics"
	"github.com/lumen-lang/lumen/internal/evaluator"
	"github.com/lumen-lang/lumen/internal/modules"
)

// sql handles are opaque string keys into a process-wide registry, since
// this language's value lattice has no pointer-wrapper Object kind of its
// own to hold a live *sql.DB directly.
var (
	registryMu sync.Mutex
	registry   = map[string]*sql.DB{}
	nextHandle int
)

func registerDB(db *sql.DB) string {
	registryMu.Lock()
	defer registryMu.Unlock()
	nextHandle++
	h := fmt.Sprintf("sqldb#%d", nextHandle)
	registry[h] = db
	return h
}

func lookupDB(handle string) (*sql.DB, bool) {
	registryMu.Lock()
	defer registryMu.Unlock()
	db, ok := registry[handle]
	return db, ok
}

// SQL wraps database/sql over modernc.org/sqlite: open/exec/query/close
// only, with no transaction or parameterized-binding layer.
func SQL() *modules.Module {
	return &modules.Module{
		Name: config.NativeModuleSQL,
		Exports: []modules.Export{
			{Name: "open", Value: evaluator.NativeFunction{Name: "open", Fn: sqlOpen}},
			{Name: "exec", Value: evaluator.NativeFunction{Name: "exec", Fn: sqlExec}},
			{Name: "query", Value: evaluator.NativeFunction{Name: "query", Fn: sqlQuery}},
			{Name: "close", Value: evaluator.NativeFunction{Name: "close", Fn: sqlClose}},
		},
	}
}

func sqlOpen(a *evaluator.FArguments) evaluator.Value {
	db, err := sql.Open("sqlite", a.GetString(0))
	if err != nil {
		return evaluator.NewError(diagnostics.Span{}, diagnostics.Implementing, "sql.open: %s", err.Error())
	}
	if err := db.Ping(); err != nil {
		return evaluator.NewError(diagnostics.Span{}, diagnostics.Implementing, "sql.open: %s", err.Error())
	}
	return evaluator.String{Value: registerDB(db)}
}

func sqlExec(a *evaluator.FArguments) evaluator.Value {
	db, ok := lookupDB(a.GetString(0))
	if !ok {
		return evaluator.NewError(diagnostics.Span{}, diagnostics.Reference, "sql.exec: unknown handle %q", a.GetString(0))
	}
	result, err := db.Exec(a.GetString(1))
	if err != nil {
		return evaluator.NewError(diagnostics.Span{}, diagnostics.Type, "sql.exec: %s", err.Error())
	}
	affected, _ := result.RowsAffected()
	return evaluator.Number{Value: affected}
}

func sqlQuery(a *evaluator.FArguments) evaluator.Value {
	db, ok := lookupDB(a.GetString(0))
	if !ok {
		return evaluator.NewError(diagnostics.Span{}, diagnostics.Reference, "sql.query: unknown handle %q", a.GetString(0))
	}
	rows, err := db.Query(a.GetString(1))
	if err != nil {
		return evaluator.NewError(diagnostics.Span{}, diagnostics.Type, "sql.query: %s", err.Error())
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return evaluator.NewError(diagnostics.Span{}, diagnostics.Implementing, "sql.query: %s", err.Error())
	}

	var results []evaluator.Value
	for rows.Next() {
		scanTargets := make([]interface{}, len(cols))
		values := make([]interface{}, len(cols))
		for i := range values {
			scanTargets[i] = &values[i]
		}
		if err := rows.Scan(scanTargets...); err != nil {
			return evaluator.NewError(diagnostics.Span{}, diagnostics.Implementing, "sql.query: %s", err.Error())
		}
		row := evaluator.NewObjectVal()
		for i, col := range cols {
			row.Set(col, goValueToLumenValue(values[i]))
		}
		results = append(results, row)
	}
	return evaluator.Array{Elements: results, Size: evaluator.ArraySize{Fixed: false, N: len(results)}}
}

func sqlClose(a *evaluator.FArguments) evaluator.Value {
	registryMu.Lock()
	db, ok := registry[a.GetString(0)]
	delete(registry, a.GetString(0))
	registryMu.Unlock()
	if !ok {
		return evaluator.NewError(diagnostics.Span{}, diagnostics.Reference, "sql.close: unknown handle %q", a.GetString(0))
	}
	if err := db.Close(); err != nil {
		return evaluator.NewError(diagnostics.Span{}, diagnostics.Implementing, "sql.close: %s", err.Error())
	}
	return evaluator.Null{}
}

func goValueToLumenValue(v interface{}) evaluator.Value {
	switch v := v.(type) {
	case nil:
		return evaluator.Null{}
	case int64:
		return evaluator.Number{Value: v}
	case float64:
		return evaluator.Float{Value: v}
	case string:
		return evaluator.String{Value: v}
	case []byte:
		return evaluator.String{Value: string(v)}
	case bool:
		return evaluator.Boolean{Value: v}
	default:
		return evaluator.String{Value: fmt.Sprintf("%v", v)}
	}
}
