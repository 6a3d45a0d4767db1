/*
Package frontend scans and parses a tiny imperative language into ASTs.

The language knows integer expressions, variables, functions and while-loops:

    var x;
    func inc(a) {
        x = a + 1;
    }
    x = -(2 + 3) * 4 % 5;
    inc(x);
    while (x) { x = x - 1; }

Scanning is done with lexmachine (https://github.com/timtadh/lexmachine).
Parsing is recursive descent. Symbols are entered into a symtab.ScopeTree;
every function body opens a scope of its own. Statement sequences are built
as right-nested ast.List chains.

If parsing fails, all partial trees built so far are released and a
*SyntaxError is returned.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package frontend

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'astwalk.frontend'.
func tracer() tracing.Trace {
	return tracing.Select("astwalk.frontend")
}
