/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package source

import (
	"errors"
	"fmt"
	"go/scanner"
	"go/token"
	"strconv"
	"strings"

	"dirpx.dev/enumresponse/schema"
)

// DirectivePrefix starts a configuration line in a variant doc comment.
const DirectivePrefix = "//response("

// ErrDirective is returned for malformed directive lines.
var ErrDirective = errors.New("source: malformed response directive")

// IsDirective reports whether a raw comment line is a response directive.
func IsDirective(comment string) bool {
	return strings.HasPrefix(comment, DirectivePrefix)
}

// ParseDirective parses one raw comment line of the form
// //response(items...) into its entries. A trailing // comment after the
// closing parenthesis is ignored.
func ParseDirective(comment string) ([]schema.Entry, error) {
	if !IsDirective(comment) {
		return nil, fmt.Errorf("%w: %q does not start with %s", ErrDirective, comment, DirectivePrefix)
	}
	body := strings.TrimPrefix(comment, "//response")

	// Comments are skipped by the scanner.
	p := newDirectiveParser(body)
	p.expect(token.LPAREN)
	entries := p.list()
	p.expect(token.RPAREN)
	if p.tok != token.EOF {
		p.errorf("unexpected %s after the closing parenthesis", p.describe())
	}
	if p.err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrDirective, comment, p.err)
	}
	return entries, nil
}

type directiveParser struct {
	s   scanner.Scanner
	err error

	pos token.Pos
	tok token.Token
	lit string
}

func newDirectiveParser(src string) *directiveParser {
	p := &directiveParser{}
	fset := token.NewFileSet()
	file := fset.AddFile("", fset.Base(), len(src))
	p.s.Init(file, []byte(src), func(pos token.Position, msg string) {
		if p.err == nil {
			p.err = fmt.Errorf("col %d: %s", pos.Column, msg)
		}
	}, 0)
	p.next()
	return p
}

func (p *directiveParser) next() {
	p.pos, p.tok, p.lit = p.s.Scan()
	// The scanner inserts a semicolon at the end of the input.
	if p.tok == token.SEMICOLON && p.lit == "\n" {
		p.tok = token.EOF
	}
}

func (p *directiveParser) errorf(format string, args ...any) {
	if p.err == nil {
		p.err = fmt.Errorf("col %d: %s", int(p.pos), fmt.Sprintf(format, args...))
	}
}

func (p *directiveParser) describe() string {
	if p.lit != "" {
		return strconv.Quote(p.lit)
	}
	return p.tok.String()
}

func (p *directiveParser) expect(tok token.Token) {
	if p.tok != tok {
		p.errorf("expected %s, found %s", tok, p.describe())
		return
	}
	p.next()
}

// list parses items up to, but not including, the closing parenthesis.
func (p *directiveParser) list() []schema.Entry {
	var out []schema.Entry
	for p.err == nil && p.tok != token.RPAREN && p.tok != token.EOF {
		out = append(out, p.item())
		if p.tok != token.COMMA {
			break
		}
		p.next()
	}
	return out
}

func (p *directiveParser) item() schema.Entry {
	if p.tok != token.IDENT {
		return schema.Entry{Value: p.literal()}
	}
	key := p.lit
	p.next()
	switch p.tok {
	case token.ASSIGN:
		p.next()
		return schema.Entry{Key: key, Value: p.value()}
	case token.LPAREN:
		return schema.Entry{Key: key, Value: p.group()}
	default:
		return schema.Entry{Key: key, Value: schema.Bare()}
	}
}

func (p *directiveParser) value() schema.Value {
	switch p.tok {
	case token.LPAREN:
		return p.group()
	case token.IDENT:
		v := schema.Literal(schema.ValueIdent, p.lit)
		if p.lit == "true" || p.lit == "false" {
			v.Kind = schema.ValueBool
		}
		p.next()
		return v
	default:
		return p.literal()
	}
}

func (p *directiveParser) group() schema.Value {
	p.expect(token.LPAREN)
	entries := p.list()
	p.expect(token.RPAREN)
	return schema.Group(entries...)
}

func (p *directiveParser) literal() schema.Value {
	sign := ""
	if p.tok == token.SUB {
		sign = "-"
		p.next()
	}
	var v schema.Value
	switch p.tok {
	case token.INT:
		v = schema.Literal(schema.ValueInt, sign+p.lit)
	case token.FLOAT:
		v = schema.Literal(schema.ValueFloat, sign+p.lit)
	case token.STRING:
		if sign != "" {
			p.errorf("unexpected '-' before a string")
			return schema.Value{}
		}
		text, err := strconv.Unquote(p.lit)
		if err != nil {
			p.errorf("bad string literal %s", p.lit)
			return schema.Value{}
		}
		v = schema.String(text)
	case token.CHAR:
		if sign != "" {
			p.errorf("unexpected '-' before a char")
			return schema.Value{}
		}
		v = schema.Literal(schema.ValueChar, p.lit)
	default:
		p.errorf("expected a literal, found %s", p.describe())
		return schema.Value{}
	}
	p.next()
	return v
}
