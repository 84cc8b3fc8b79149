package lox

// Version is the interpreter version, shown by the REPL banner and the
// version subcommand.
const Version = "0.3.0"
