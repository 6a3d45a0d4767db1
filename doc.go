/*
Package astwalk is the abstract syntax tree layer of a small compiler.

It defines the node shapes of the tree, owns their release and drives a single
post-order traversal which triggers code emission for every construct. Package
structure is as follows:

■ ast: Package ast implements the node model and the tree walker. This is the
core of the module.

■ symtab: Package symtab provides symbol tables and scopes. AST nodes refer to
symbols by handle only.

■ frontend: Package frontend scans and parses a tiny imperative language into
ASTs. It is a driver for the core, not part of it.

■ codegen: Package codegen implements an emitter for ASTs, producing assembly
text for 32-bit x86 (GNU as syntax).

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package astwalk
