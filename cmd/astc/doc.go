/*
Command astc compiles programs of the tiny language of package frontend
into 32-bit x86 assembly (GNU as syntax).

Usage:

    astc [flags] [file]

If no file is given, the program is read from standard input. The assembly
text is written to out.s, unless flag -o names another file. Flag -tree
displays the AST on the terminal, flag -fingerprint prints its structural
hash. With -i astc starts an interactive session (A.REPL), printing the code
generated for every line entered.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'astwalk.driver'
func tracer() tracing.Trace {
	return tracing.Select("astwalk.driver")
}
