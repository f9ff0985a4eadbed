package token_test

import (
	"testing"

	"arrowlint/internal/source"
	"arrowlint/internal/token"
)

func tok(k token.Kind) token.Token {
	return token.Token{Kind: k, Span: source.Span{Start: 0, End: 0}}
}

func TestKindStringCoversAllKinds(t *testing.T) {
	for k := token.Invalid; k <= token.At; k++ {
		if got := k.String(); got == "Kind(?)" {
			t.Fatalf("kind %d has no name", k)
		}
	}
	if token.FatArrow.String() != "FatArrow" {
		t.Fatalf("FatArrow.String() = %q", token.FatArrow.String())
	}
}

func TestIsArrow(t *testing.T) {
	if !tok(token.FatArrow).IsArrow() {
		t.Fatalf("FatArrow must be an arrow")
	}
	for _, k := range []token.Kind{token.Assign, token.GtEq, token.EqEq, token.Gt} {
		if tok(k).IsArrow() {
			t.Fatalf("%v must not be an arrow", k)
		}
	}
}

func TestTokenClassification(t *testing.T) {
	if !tok(token.TemplateLit).IsLiteral() || !tok(token.KwNull).IsLiteral() {
		t.Fatalf("template and null must be literals")
	}
	if tok(token.Ident).IsLiteral() {
		t.Fatalf("Ident must not be literal")
	}
	if !tok(token.FatArrow).IsPunctOrOp() || !tok(token.At).IsPunctOrOp() {
		t.Fatalf("operators must be punct/op")
	}
	if tok(token.KwIf).IsPunctOrOp() || tok(token.NumberLit).IsPunctOrOp() {
		t.Fatalf("keywords and literals are not punct/op")
	}
	if !tok(token.KwYield).IsKeyword() || tok(token.Ident).IsKeyword() {
		t.Fatalf("keyword classification broken")
	}
	if !tok(token.KwAsync).IsIdentLike() || tok(token.KwReturn).IsIdentLike() {
		t.Fatalf("contextual keyword classification broken")
	}
}
