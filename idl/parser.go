package idl

// Recursive-descent parser for the IDL grammar. Predictive, no
// backtracking; the first failure aborts the parse, since a compilation
// with malformed input can never produce a usable interface.

type parser struct {
	lex     *lexer
	current token
}

func newParser(source string) (*parser, error) {
	lex := newLexer(source)
	first, err := lex.next()
	if err != nil {
		return nil, err
	}
	return &parser{lex: lex, current: first}, nil
}

func (p *parser) advance() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.current = tok
	return nil
}

// expect consumes a token of the given type or fails.
func (p *parser) expect(typ tokenType) (token, error) {
	if p.current.typ != typ {
		return token{}, newSyntaxError("expected "+typ.String(), p.current.pos, p.current.lexeme)
	}
	tok := p.current
	if err := p.advance(); err != nil {
		return token{}, err
	}
	return tok, nil
}

// expectKeyword consumes an identifier with the given lexeme or fails.
func (p *parser) expectKeyword(word string) error {
	if p.current.typ != tokIdent || p.current.lexeme != word {
		return newSyntaxError("expected '"+word+"'", p.current.pos, p.current.lexeme)
	}
	return p.advance()
}

func (p *parser) atKeyword(word string) bool {
	return p.current.typ == tokIdent && p.current.lexeme == word
}

// parseDocument parses a whole IDL file.
func (p *parser) parseDocument() (*Document, error) {
	doc := &Document{}
	for p.current.typ != tokEOF {
		attrs, err := p.parseAttributes()
		if err != nil {
			return nil, err
		}
		switch {
		case p.atKeyword("namespace"):
			if doc.Namespace != nil {
				return nil, newSyntaxError("duplicate namespace declaration", p.current.pos, "")
			}
			ns, err := p.parseNamespace()
			if err != nil {
				return nil, err
			}
			doc.Namespace = ns
		case p.atKeyword("enum"):
			node, err := p.parseEnum(attrs)
			if err != nil {
				return nil, err
			}
			doc.Enums = append(doc.Enums, node)
		case p.atKeyword("dictionary"):
			node, err := p.parseDict(attrs)
			if err != nil {
				return nil, err
			}
			doc.Dicts = append(doc.Dicts, node)
		case p.atKeyword("interface"):
			node, err := p.parseInterface(attrs, false)
			if err != nil {
				return nil, err
			}
			doc.Interfaces = append(doc.Interfaces, node)
		case p.atKeyword("callback"):
			if err := p.advance(); err != nil {
				return nil, err
			}
			node, err := p.parseInterface(attrs, true)
			if err != nil {
				return nil, err
			}
			doc.Interfaces = append(doc.Interfaces, node)
		default:
			return nil, newSyntaxError("expected a definition", p.current.pos, p.current.lexeme)
		}
	}
	if doc.Namespace == nil {
		return nil, newSyntaxError("missing namespace declaration", Position{Line: 1}, "")
	}
	return doc, nil
}

// parseAttributes parses an optional extended-attribute list:
// '[' Name ('=' Name)? (',' ...)* ']'
func (p *parser) parseAttributes() ([]Attribute, error) {
	if p.current.typ != tokLBracket {
		return nil, nil
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	var attrs []Attribute
	for {
		name, err := p.expect(tokIdent)
		if err != nil {
			return nil, err
		}
		attr := Attribute{Name: name.lexeme}
		if p.current.typ == tokEquals {
			if err := p.advance(); err != nil {
				return nil, err
			}
			value, err := p.expect(tokIdent)
			if err != nil {
				return nil, err
			}
			attr.Value = value.lexeme
		}
		attrs = append(attrs, attr)
		if p.current.typ != tokComma {
			break
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(tokRBracket); err != nil {
		return nil, err
	}
	return attrs, nil
}

func (p *parser) parseNamespace() (*NamespaceNode, error) {
	pos := p.current.pos
	if err := p.expectKeyword("namespace"); err != nil {
		return nil, err
	}
	name, err := p.expect(tokIdent)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokLBrace); err != nil {
		return nil, err
	}
	node := &NamespaceNode{Name: name.lexeme, Pos: pos}
	for p.current.typ != tokRBrace {
		fn, err := p.parseFunction()
		if err != nil {
			return nil, err
		}
		node.Functions = append(node.Functions, fn)
	}
	if _, err := p.expect(tokRBrace); err != nil {
		return nil, err
	}
	if _, err := p.expect(tokSemi); err != nil {
		return nil, err
	}
	return node, nil
}

func (p *parser) parseFunction() (*FunctionNode, error) {
	pos := p.current.pos
	attrs, err := p.parseAttributes()
	if err != nil {
		return nil, err
	}
	ret, err := p.parseReturnType()
	if err != nil {
		return nil, err
	}
	name, err := p.expect(tokIdent)
	if err != nil {
		return nil, err
	}
	args, err := p.parseArgList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokSemi); err != nil {
		return nil, err
	}
	return &FunctionNode{Name: name.lexeme, Attrs: attrs, Return: ret, Args: args, Pos: pos}, nil
}

func (p *parser) parseEnum(attrs []Attribute) (*EnumNode, error) {
	pos := p.current.pos
	if err := p.expectKeyword("enum"); err != nil {
		return nil, err
	}
	name, err := p.expect(tokIdent)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokLBrace); err != nil {
		return nil, err
	}
	node := &EnumNode{Name: name.lexeme, Attrs: attrs, Pos: pos}
	for p.current.typ != tokRBrace {
		member, err := p.expect(tokString)
		if err != nil {
			return nil, err
		}
		node.Members = append(node.Members, member.lexeme)
		if p.current.typ == tokComma {
			if err := p.advance(); err != nil {
				return nil, err
			}
		} else if p.current.typ != tokRBrace {
			return nil, newSyntaxError("expected ',' or '}' in enum body", p.current.pos, p.current.lexeme)
		}
	}
	if _, err := p.expect(tokRBrace); err != nil {
		return nil, err
	}
	if _, err := p.expect(tokSemi); err != nil {
		return nil, err
	}
	return node, nil
}

func (p *parser) parseDict(attrs []Attribute) (*DictNode, error) {
	pos := p.current.pos
	if err := p.expectKeyword("dictionary"); err != nil {
		return nil, err
	}
	name, err := p.expect(tokIdent)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokLBrace); err != nil {
		return nil, err
	}
	node := &DictNode{Name: name.lexeme, Attrs: attrs, Pos: pos}
	for p.current.typ != tokRBrace {
		fieldType, err := p.parseType()
		if err != nil {
			return nil, err
		}
		fieldName, err := p.expect(tokIdent)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokSemi); err != nil {
			return nil, err
		}
		node.Fields = append(node.Fields, DictFieldNode{Name: fieldName.lexeme, Type: fieldType})
	}
	if _, err := p.expect(tokRBrace); err != nil {
		return nil, err
	}
	if _, err := p.expect(tokSemi); err != nil {
		return nil, err
	}
	return node, nil
}

func (p *parser) parseInterface(attrs []Attribute, callback bool) (*InterfaceNode, error) {
	pos := p.current.pos
	if err := p.expectKeyword("interface"); err != nil {
		return nil, err
	}
	name, err := p.expect(tokIdent)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokLBrace); err != nil {
		return nil, err
	}
	node := &InterfaceNode{Name: name.lexeme, Attrs: attrs, Callback: callback, Pos: pos}
	for p.current.typ != tokRBrace {
		memberPos := p.current.pos
		memberAttrs, err := p.parseAttributes()
		if err != nil {
			return nil, err
		}
		if p.atKeyword("constructor") {
			if callback {
				return nil, newSyntaxError("callback interfaces cannot declare constructors", memberPos, "")
			}
			if err := p.advance(); err != nil {
				return nil, err
			}
			args, err := p.parseArgList()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(tokSemi); err != nil {
				return nil, err
			}
			node.Constructors = append(node.Constructors, &ConstructorNode{Attrs: memberAttrs, Args: args, Pos: memberPos})
			continue
		}
		ret, err := p.parseReturnType()
		if err != nil {
			return nil, err
		}
		methodName, err := p.expect(tokIdent)
		if err != nil {
			return nil, err
		}
		args, err := p.parseArgList()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokSemi); err != nil {
			return nil, err
		}
		node.Methods = append(node.Methods, &MethodNode{
			Name:   methodName.lexeme,
			Attrs:  memberAttrs,
			Return: ret,
			Args:   args,
			Pos:    memberPos,
		})
	}
	if _, err := p.expect(tokRBrace); err != nil {
		return nil, err
	}
	if _, err := p.expect(tokSemi); err != nil {
		return nil, err
	}
	return node, nil
}

func (p *parser) parseArgList() ([]ArgNode, error) {
	if _, err := p.expect(tokLParen); err != nil {
		return nil, err
	}
	var args []ArgNode
	for p.current.typ != tokRParen {
		argType, err := p.parseType()
		if err != nil {
			return nil, err
		}
		argName, err := p.expect(tokIdent)
		if err != nil {
			return nil, err
		}
		args = append(args, ArgNode{Name: argName.lexeme, Type: argType})
		if p.current.typ == tokComma {
			if err := p.advance(); err != nil {
				return nil, err
			}
		} else if p.current.typ != tokRParen {
			return nil, newSyntaxError("expected ',' or ')' in argument list", p.current.pos, p.current.lexeme)
		}
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return args, nil
}

// parseReturnType parses 'void' or a type expression.
func (p *parser) parseReturnType() (*TypeExpr, error) {
	if p.atKeyword("void") {
		if err := p.advance(); err != nil {
			return nil, err
		}
		return nil, nil
	}
	return p.parseType()
}

// parseType parses a type expression: a primitive spelling, a user-defined
// name, sequence<T>, or record<DOMString, T>, each optionally followed by
// '?'. Composites nest to arbitrary depth.
func (p *parser) parseType() (*TypeExpr, error) {
	pos := p.current.pos
	var expr *TypeExpr

	switch {
	case p.atKeyword("sequence"):
		if err := p.advance(); err != nil {
			return nil, err
		}
		if _, err := p.expect(tokLAngle); err != nil {
			return nil, err
		}
		inner, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRAngle); err != nil {
			return nil, err
		}
		expr = &TypeExpr{Kind: TypeExprSequence, Inner: inner, Pos: pos}

	case p.atKeyword("record"):
		if err := p.advance(); err != nil {
			return nil, err
		}
		if _, err := p.expect(tokLAngle); err != nil {
			return nil, err
		}
		// Map keys are fixed to strings.
		if err := p.expectKeyword("DOMString"); err != nil {
			return nil, err
		}
		if _, err := p.expect(tokComma); err != nil {
			return nil, err
		}
		value, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRAngle); err != nil {
			return nil, err
		}
		expr = &TypeExpr{Kind: TypeExprMap, Inner: value, Pos: pos}

	default:
		name, err := p.expect(tokIdent)
		if err != nil {
			return nil, newSyntaxError("expected a type", pos, p.current.lexeme)
		}
		expr = &TypeExpr{Kind: TypeExprName, Name: name.lexeme, Pos: pos}
	}

	if p.current.typ == tokQuestion {
		if err := p.advance(); err != nil {
			return nil, err
		}
		expr.Optional = true
	}
	return expr, nil
}
