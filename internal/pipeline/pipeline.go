package pipeline

// Pipeline represents a sequence of processing stages. Grounded on the
// teacher's Pipeline/Run, unchanged in shape.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes the pipeline in order, stopping at the first stage that
// leaves an error on the context. Unlike the teacher's own Run (which
// always runs every processor, since funxy's analyzer stage collects
// diagnostics without aborting), a parser has no error-recovery mode
// (spec.md §1 non-goal) — the first syntax error ends the attempt.
func (p *Pipeline) Run(initial *Context) *Context {
	ctx := initial
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
		if ctx.Err != nil {
			break
		}
	}
	return ctx
}
