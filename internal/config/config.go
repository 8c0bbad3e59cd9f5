// Package config holds the fixed tables consulted by the lexer, parser and
// evaluator: reserved words, predefined type names, and the built-in native
// module names the reference host program registers.
package config

// SourceFileExt is the canonical extension for source files handled by the
// reference CLI. The core itself never touches the filesystem.
const SourceFileExt = ".lum"

// Modifiers prefix a class member or top-level declaration.
const (
	ModPublic    = "public"
	ModPrivate   = "private"
	ModProtected = "protected"
	ModStatic    = "static"
	ModAsync     = "async"
)

// Modifiers is the fixed modifier keyword set.
var Modifiers = map[string]bool{
	ModPublic:    true,
	ModPrivate:   true,
	ModProtected: true,
	ModStatic:    true,
	ModAsync:     true,
}

// ReservedWords is the fixed reserved-word set recognized by the tokenizer.
// Anything not in this table (and not a modifier, predefined type, or
// boolean literal) lexes as a plain identifier.
var ReservedWords = map[string]bool{
	"const":       true,
	"let":         true,
	"operator":    true,
	"constructor": true,
	"class":       true,
	"interface":   true,
	"implements":  true,
	"this":        true,
	"return":      true,
	"function":    true,
	"if":          true,
	"else":        true,
	"new":         true,
	"null":        true,
	"enum":        true,
	"namespace":   true,
	"declare":     true,
	"export":      true,
	"import":      true,
	"default":     true,
	"when":        true,
	"match":       true,
	"extends":     true,
	"get":         true,
	"set":         true,
	"type":        true,
	"typeOf":      true,
	"for":         true,
	"in":          true,
	"of":          true,
	"as":          true,
	"from":        true,
}

// PredefinedTypes is the fixed set of built-in type names.
var PredefinedTypes = map[string]bool{
	"any":     true,
	"number":  true,
	"float":   true,
	"boolean": true,
	"string":  true,
	"symbol":  true,
	"void":    true,
}

// BooleanLiterals maps the two boolean literal spellings to their value.
var BooleanLiterals = map[string]bool{
	"true":  true,
	"false": false,
}

// Reference native module names shipped alongside the core (see
// internal/natives). A host program is free to register none, some, or
// additional modules under other names; these are only the well-known ones
// the reference CLI wires up by default.
const (
	NativeModuleUUID = "uuid"
	NativeModuleJSON = "json"
	NativeModuleYAML = "yaml"
	NativeModuleSQL  = "sql"
	NativeModuleBits = "bits"
)
