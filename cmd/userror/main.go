package main

// userror is a small demonstration program embedding the userror
// library. Each subcommand prints one diagnostic at its severity; the
// replay subcommand prints a whole YAML script of them. The library
// itself carries no CLI of its own, so this binary doubles as its
// example embedder.
func main() {
	Execute()
}
