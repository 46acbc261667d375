package parser

// Token type aliases so callers rarely need to import pkg/token directly.

import "github.com/docshift-labs/docshift/pkg/token"

// TokenType is an alias for token.TokenType.
type TokenType = token.TokenType

// Token is an alias for token.Token.
type Token = token.Token

// Position is an alias for token.Position.
type Position = token.Position

// Span is an alias for token.Span.
type Span = token.Span

// LookupIdent is re-exported from the token package.
var LookupIdent = token.LookupIdent
