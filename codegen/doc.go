/*
Package codegen generates assembly text from ASTs.

Generator implements ast.Emitter for 32-bit x86 in GNU as (AT&T) syntax. It
treats the processor as a stack machine: every expression leaves its value on
top of the hardware stack, operators pop their operands and push the result.
Output is written to an io.Writer provided by the caller; there is no global
output sink.

    gen := codegen.NewGenerator(out, table)
    gen.Prologue()
    ast.Traverse(tree, gen)
    gen.Epilogue(0)
    err := gen.Err()

Loops and call arguments are not supported by the tree walker and are
therefore never generated.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package codegen

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'astwalk.codegen'.
func tracer() tracing.Trace {
	return tracing.Select("astwalk.codegen")
}
