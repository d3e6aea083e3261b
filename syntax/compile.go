package syntax

// Result is everything the rest of the pipeline needs from the front end:
// the processed AST (already wrapped in Group 0), the effective flag set
// after any inline `(?ims)` mutations, the declared name-to-group-number
// mapping, and the highest group number assigned.
type Result struct {
	AST             Node
	Flags           Flags
	Names           map[string]int
	MaxGroupNumber  int
}

// Compile runs the full front end — Tokenizer, Parser, ASTProcessor — over
// pattern and returns the result, or a PatternError wrapping whichever
// TokenizerError/ParserError/UnsupportedSyntaxError stopped it.
func Compile(pattern string, flags Flags) (*Result, error) {
	p := NewParser(pattern, flags)
	rawAST, err := p.Parse()
	if err != nil {
		return nil, NewPatternError(pattern, err)
	}
	processedAST, err := Process(rawAST)
	if err != nil {
		return nil, NewPatternError(pattern, err)
	}
	return &Result{
		AST:            processedAST,
		Flags:          p.Flags(),
		Names:          p.Names(),
		MaxGroupNumber: p.MaxGroupNumber(),
	}, nil
}
