package parser

// import/export statement parsing, grounded on mcgru-funxy's
// internal/parser/statements.go parseImportStatement/parseExportSpec
// (alias/selective/wildcard import forms, local-vs-reexport export forms),
// generalized from funxy's own module syntax to ECMAScript import/export
// declarations, including the duplicate-export bookkeeping spec.md §4.H
// requires (kept on State.exportedNames and checked as each exported name
// is recorded — see recordExportedName below and state.go's field).

import (
	"github.com/funvibe/ecmaparse/internal/ast"
	"github.com/funvibe/ecmaparse/internal/diagnostics"
	"github.com/funvibe/ecmaparse/internal/token"
)

func (s *State) parseImportDeclaration() ast.Statement {
	start := s.startNode()
	s.next() // import

	if s.cur.Type == token.String {
		src := s.parseStringLiteralNode()
		s.semicolon()
		n := &ast.ImportDeclaration{BaseNode: start, Source: src}
		s.finishNode(&n.BaseNode, "ImportDeclaration")
		return n
	}

	var specs []ast.Node
	if s.cur.Type == token.Name {
		idStart := s.startNode()
		local := s.parseIdentifier()
		spec := &ast.ImportDefaultSpecifier{BaseNode: idStart, Local: local}
		s.finishNode(&spec.BaseNode, "ImportDefaultSpecifier")
		specs = append(specs, spec)
		if s.cur.Type == token.Comma {
			s.next()
		}
	}

	if s.cur.Type == token.Star {
		nsStart := s.startNode()
		s.next()
		s.expectContextual(token.KwAs)
		local := s.parseIdentifier()
		spec := &ast.ImportNamespaceSpecifier{BaseNode: nsStart, Local: local}
		s.finishNode(&spec.BaseNode, "ImportNamespaceSpecifier")
		specs = append(specs, spec)
	} else if s.cur.Type == token.BraceL {
		s.next()
		for s.cur.Type != token.BraceR {
			specs = append(specs, s.parseImportSpecifier())
			if s.cur.Type == token.Comma {
				s.next()
			} else {
				break
			}
		}
		s.expect(token.BraceR)
	}

	s.expectContextual(token.KwFrom)
	src := s.parseStringLiteralNode()
	s.semicolon()
	n := &ast.ImportDeclaration{BaseNode: start, Specifiers: specs, Source: src}
	s.finishNode(&n.BaseNode, "ImportDeclaration")
	return n
}

func (s *State) parseImportSpecifier() ast.Node {
	start := s.startNode()
	imported := s.parseModuleExportName()
	local := imported
	if s.cur.Type == token.Name && s.cur.Value == token.KwAs {
		s.next()
		local = s.parseIdentifier()
	}
	n := &ast.ImportSpecifier{BaseNode: start, Imported: imported, Local: local}
	s.finishNode(&n.BaseNode, "ImportSpecifier")
	return n
}

// parseModuleExportName reads the binding-position name in an import/export
// specifier, which may be a string literal (module export name proposal)
// spelled as an identifier for this core's purposes: we model both as
// Identifier, storing the string's value verbatim, matching spec.md's
// scope of "treat as identifier text" rather than carrying a StringLiteral
// node there.
func (s *State) parseModuleExportName() *ast.Identifier {
	if s.cur.Type == token.String {
		start := s.startNode()
		v, _ := s.cur.Value.(string)
		s.next()
		id := &ast.Identifier{BaseNode: start, Name: v}
		s.finishNode(&id.BaseNode, "Identifier")
		return id
	}
	return s.parseIdentifier()
}

func (s *State) expectContextual(word string) {
	if s.cur.Type != token.Name || s.cur.Value != word {
		s.raise(s.cur.Start, diagnostics.KindGrammar, diagnostics.ErrExpectedToken, word, s.cur.Type)
	}
	s.next()
}

func (s *State) parseStringLiteralNode() *ast.StringLiteral {
	start := s.startNode()
	v, _ := s.cur.Value.(string)
	s.expect(token.String)
	n := &ast.StringLiteral{BaseNode: start, Value: v}
	s.finishNode(&n.BaseNode, "StringLiteral")
	return n
}

func (s *State) parseExportDeclaration() ast.Statement {
	return s.parseExportDeclarationWithDecorators(nil)
}

func (s *State) parseExportDeclarationWithDecorators(decorators []*ast.Decorator) ast.Statement {
	start := s.startNode()
	s.next() // export

	if s.cur.Type == token.Default {
		s.next()
		var decl ast.Node
		switch {
		case s.cur.Type == token.Function:
			decl = s.parseFunctionDeclarationMaybeAnonymous(false)
		case s.cur.Type == token.Name && s.cur.Value == token.KwAsync && s.peekToken().Type == token.Function:
			s.next()
			decl = s.parseFunctionDeclarationMaybeAnonymous(true)
		case s.cur.Type == token.Class:
			decl = s.parseClass(false, decorators)
		default:
			decl = s.parseMaybeAssign(false)
			s.semicolon()
		}
		s.recordExportedName("default")
		n := &ast.ExportDefaultDeclaration{BaseNode: start, Declaration: decl}
		s.finishNode(&n.BaseNode, "ExportDefaultDeclaration")
		return n
	}

	if s.cur.Type == token.Star {
		s.next()
		var exported *ast.Identifier
		if s.cur.Type == token.Name && s.cur.Value == token.KwAs {
			s.next()
			exported = s.parseIdentifier()
		}
		s.expectContextual(token.KwFrom)
		src := s.parseStringLiteralNode()
		s.semicolon()
		n := &ast.ExportAllDeclaration{BaseNode: start, Source: src, Exported: exported}
		s.finishNode(&n.BaseNode, "ExportAllDeclaration")
		return n
	}

	if s.cur.Type == token.BraceL {
		s.next()
		var specs []*ast.ExportSpecifier
		for s.cur.Type != token.BraceR {
			sStart := s.startNode()
			local := s.parseModuleExportName()
			exported := local
			if s.cur.Type == token.Name && s.cur.Value == token.KwAs {
				s.next()
				exported = s.parseModuleExportName()
			}
			spec := &ast.ExportSpecifier{BaseNode: sStart, Local: local, Exported: exported}
			s.finishNode(&spec.BaseNode, "ExportSpecifier")
			specs = append(specs, spec)
			s.recordExportedName(exported.Name)
			if s.cur.Type == token.Comma {
				s.next()
			} else {
				break
			}
		}
		s.expect(token.BraceR)
		var src *ast.StringLiteral
		if s.cur.Type == token.Name && s.cur.Value == token.KwFrom {
			s.next()
			src = s.parseStringLiteralNode()
		}
		s.semicolon()
		n := &ast.ExportNamedDeclaration{BaseNode: start, Specifiers: specs, Source: src}
		s.finishNode(&n.BaseNode, "ExportNamedDeclaration")
		return n
	}

	var decl ast.Statement
	switch s.cur.Type {
	case token.Var, token.Let, token.Const:
		decl = s.parseVarStatement()
		s.recordDeclaredNames(decl)
	case token.Function:
		decl = s.parseFunctionDeclaration(false)
		s.recordDeclaredNames(decl)
	case token.Class:
		decl = s.parseClass(false, decorators).(ast.Statement)
		s.recordDeclaredNames(decl)
	case token.At:
		decl = s.parseDecoratedDeclaration()
		s.recordDeclaredNames(decl)
	default:
		s.raise(s.cur.Start, diagnostics.KindGrammar, diagnostics.ErrUnexpectedToken, "declaration", s.cur.Type)
	}
	n := &ast.ExportNamedDeclaration{BaseNode: start, Declaration: decl}
	s.finishNode(&n.BaseNode, "ExportNamedDeclaration")
	return n
}

func (s *State) parseFunctionDeclarationMaybeAnonymous(async bool) ast.Statement {
	start := s.startNode()
	s.expect(token.Function)
	generator := false
	if s.cur.Type == token.Star {
		generator = true
		s.next()
	}
	var id *ast.Identifier
	if s.cur.Type == token.Name {
		id = s.parseIdentifier()
	}
	params := s.parseBindingList(token.ParenL, token.ParenR, false)
	prevFn, prevGen, prevAsync, prevMethod := s.inFunction, s.inGenerator, s.inAsync, s.inMethod
	s.inFunction, s.inGenerator, s.inAsync, s.inMethod = true, generator, async, false
	body := s.parseBlock()
	s.checkParamList(params)
	s.inFunction, s.inGenerator, s.inAsync, s.inMethod = prevFn, prevGen, prevAsync, prevMethod
	n := &ast.FunctionDeclaration{BaseNode: start, ID: id, Params: params, Body: body, Generator: generator, Async: async}
	s.finishNode(&n.BaseNode, "FunctionDeclaration")
	return n
}

func (s *State) recordExportedName(name string) {
	if name == "" {
		return
	}
	if s.exportedNames[name] {
		s.raise(s.cur.Start, diagnostics.KindScope, diagnostics.ErrDuplicateExport, name)
	}
	s.exportedNames[name] = true
}

func (s *State) recordDeclaredNames(decl ast.Statement) {
	switch d := decl.(type) {
	case *ast.VariableDeclaration:
		for _, vd := range d.Declarations {
			if id, ok := vd.ID.(*ast.Identifier); ok {
				s.recordExportedName(id.Name)
			}
		}
	case *ast.FunctionDeclaration:
		if d.ID != nil {
			s.recordExportedName(d.ID.Name)
		}
	case *ast.ClassDeclaration:
		if d.ID != nil {
			s.recordExportedName(d.ID.Name)
		}
	}
}

// checkDuplicateExports is a no-op placeholder hook point: duplicates are
// actually rejected eagerly in recordExportedName as each export is seen,
// matching spec.md §4.H's "detect at the point of redeclaration" choice
// over a final whole-program pass.
func (s *State) checkDuplicateExports() {}
