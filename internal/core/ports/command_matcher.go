package ports

import "github.com/AntonioJCosta/dwimsh/internal/core/domain/match"

/*
CommandMatcher finds indexed commands within one edit of a mistyped token.
This is a driven port, representing a domain capability.
*/
type CommandMatcher interface {
	FindMatches(token string) match.Set
}
