package parser

// Component J: dialect plug-in composition. Each plug-in package
// (internal/dialect/{estree,jsx,flow,typescript}) registers itself here via
// RegisterPlugin from its own init(), rather than this package importing
// them directly, to avoid an import cycle (a plug-in needs *parser.State
// and *parser.Hooks). The composition order is fixed regardless of the
// order Options.Plugins lists them in: estree outermost, then jsx, then
// flow, then typescript (spec.md §4.J) — each layer wraps the previous
// hook function rather than replacing it outright, so e.g. typescript's
// ParseStatement can fall back to flow's (or the core's) when it doesn't
// recognize the lookahead.
//
// Grounded on mcgru-funxy's config/registry pattern (internal/config's
// single table + lookup helper, named directly in DESIGN.md's
// internal/config deletion entry as "kept as a pattern"), adapted from a
// static data table to a registration-at-init-time function table because
// spec.md's hooks are behavior, not data.

var pluginOrder = []string{"estree", "jsx", "flow", "typescript"}

var pluginRegistry = map[string]func(*Hooks){}

// RegisterPlugin makes a dialect plug-in available by name. Called from a
// dialect package's init(); panics on duplicate registration since that can
// only happen from a programming error (two packages claiming the same
// name), not from user input.
func RegisterPlugin(name string, apply func(*Hooks)) {
	if _, dup := pluginRegistry[name]; dup {
		panic("parser: duplicate plugin registration: " + name)
	}
	pluginRegistry[name] = apply
}

// composeHooks builds the Hooks table active for a parse, applying every
// requested, registered plug-in in pluginOrder. Conflicting pairs (flow +
// typescript) are rejected before composition; spec.md §4.J.
func composeHooks(requested map[string]bool) Hooks {
	if requested["flow"] && requested["typescript"] {
		panic(conflictPanic{a: "flow", b: "typescript"})
	}
	var h Hooks
	for _, name := range pluginOrder {
		if !requested[name] {
			continue
		}
		apply, ok := pluginRegistry[name]
		if !ok {
			panic(missingPluginPanic{name: name})
		}
		apply(&h)
	}
	for name := range requested {
		if _, known := pluginRegistry[name]; !known {
			panic(missingPluginPanic{name: name})
		}
	}
	return h
}

type conflictPanic struct{ a, b string }

// missingPluginPanic surfaces an Options.Plugins entry that names no
// registered dialect (typo, or a plugin package never blank-imported).
type missingPluginPanic struct{ name string }
