// Package meta implements the meta-engine orchestrator: it compiles a
// pattern through the syntax front end and the nfa package, extracts
// literals for prefiltering, and coordinates prefilter-accelerated search
// with the NFA simulator that actually decides matches.
//
// # Architecture
//
// Compile runs three steps:
//
//   - syntax.Compile parses the pattern into a processed AST
//   - nfa.Build turns the AST into a Thompson-construction NFA
//   - literal.Extractor pulls out required prefix/suffix literals, which
//     feed prefilter.Builder (and, for large alternations, an Aho-Corasick
//     automaton) to skip non-matching regions of the haystack
//
// The simulator (nfa.Simulator) remains the single source of truth for
// match boundaries and captures; the prefilter only narrows where it is
// asked to look.
//
// # Thread safety
//
// Engine is safe for concurrent use. Each search borrows a pooled
// nfa.Simulator (which owns mutable per-search queues) via sync.Pool,
// following the same pattern the Go standard library's regexp package
// uses for its machine pool.
//
// # Usage
//
//	engine, err := meta.Compile(`\w+@\w+\.\w+`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if m, ok := engine.Find("user@example.com"); ok {
//	    fmt.Println(m.Start, m.End)
//	}
package meta
