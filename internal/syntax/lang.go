package syntax

import "sync"

// definition holds the constant data for one language.
type definition struct {
	comment  string
	keywords map[string]bool
	builtins map[string]bool
}

var (
	defsOnce sync.Once
	defs     map[Language]*definition
)

// lookup returns the language definition, building the tables on first use.
// The once guard keeps the lazy init safe if a host warms languages from
// multiple goroutines before the event loop starts.
func lookup(lang Language) *definition {
	defsOnce.Do(buildDefinitions)
	return defs[lang]
}

func buildDefinitions() {
	defs = map[Language]*definition{
		LangGo: {
			comment: "//",
			keywords: wordSet(
				"break", "case", "chan", "const", "continue", "default",
				"defer", "else", "fallthrough", "for", "func", "go", "goto",
				"if", "import", "interface", "map", "package", "range",
				"return", "select", "struct", "switch", "type", "var",
			),
			builtins: wordSet(
				"append", "bool", "byte", "cap", "close", "copy", "delete",
				"error", "false", "float32", "float64", "int", "int32",
				"int64", "len", "make", "new", "nil", "panic", "recover",
				"rune", "string", "true", "uint", "uint8", "uint32", "uint64",
			),
		},
		LangRust: {
			comment: "//",
			keywords: wordSet(
				"as", "async", "await", "break", "const", "continue", "crate",
				"else", "enum", "fn", "for", "if", "impl", "in", "let",
				"loop", "match", "mod", "mut", "pub", "return", "self",
				"Self", "static", "struct", "super", "trait", "type", "use",
				"while",
			),
			builtins: wordSet(
				"Box", "Err", "None", "Ok", "Option", "Result", "Some",
				"String", "Vec", "bool", "char", "f32", "f64", "false", "i32",
				"i64", "str", "true", "u32", "u64", "usize",
			),
		},
		LangPython: {
			comment: "#",
			keywords: wordSet(
				"and", "as", "async", "await", "class", "def", "del", "elif",
				"else", "except", "finally", "for", "from", "global", "if",
				"import", "in", "is", "lambda", "not", "or", "pass", "raise",
				"return", "try", "while", "with", "yield",
			),
			builtins: wordSet(
				"False", "None", "True", "bool", "dict", "enumerate", "float",
				"int", "isinstance", "len", "list", "print", "range", "set",
				"str", "tuple", "zip",
			),
		},
		LangBash: {
			comment: "#",
			keywords: wordSet(
				"case", "do", "done", "elif", "else", "esac", "fi", "for",
				"function", "if", "in", "then", "until", "while",
			),
			builtins: wordSet(
				"cd", "echo", "eval", "exec", "exit", "export", "local",
				"printf", "read", "return", "set", "shift", "source", "test",
				"trap", "unset",
			),
		},
	}
}

func wordSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
