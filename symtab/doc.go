/*
Package symtab implements symbol tables and scopes for the compiler front end.

AST nodes never hold symbol entries directly. They carry a Handle, an opaque
index into a Table. The table owns all entries; handles stay valid for the
table's lifetime and nodes carrying them have no responsibility for the
entries behind them.

Symbol Table and Scope Tree

Scopes are organized in a tree. Every scope resolves names to handles and
falls back to its parent scope. All scopes of a tree share one table, so
handles are unique across scopes.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package symtab

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'astwalk.symtab'.
func tracer() tracing.Trace {
	return tracing.Select("astwalk.symtab")
}
