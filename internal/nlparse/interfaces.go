// Package nlparse calls an LLM to turn one line of free text ("an trua 120k
// tien mat") into a structured transaction guess, grounded in the
// application's known people, accounts, categories and shops.
package nlparse

import (
	"context"

	"github.com/ndtrung/quickadd/internal/domain"
)

// Parser provides an interface for free-text transaction parsing.
// This interface enables mocking and testing of the parsing collaborator.
type Parser interface {
	// Parse sends the raw text plus the reference-data bundle to the model
	// and returns its structured guess. Absent fields in the result mean
	// "no opinion", never "explicitly empty".
	Parse(ctx context.Context, text string, refs Context) (*Result, error)
}

// Ref is one known {id, name} pair handed to the model so it can ground its
// output in real names.
type Ref struct {
	ID   string
	Name string
}

// Context is the reference-data bundle included with every parse request.
type Context struct {
	People     []Ref
	Groups     []Ref
	Accounts   []Ref
	Categories []Ref
	Shops      []Ref
}

// BuildContext assembles the parse context from reference data. Group persons
// go into Groups, everyone else into People.
func BuildContext(people []domain.Person, accounts []domain.Account, categories []domain.Category, shops []domain.Shop) Context {
	var rc Context
	for _, p := range people {
		if p.IsGroup {
			rc.Groups = append(rc.Groups, Ref{ID: p.ID, Name: p.Name})
		} else {
			rc.People = append(rc.People, Ref{ID: p.ID, Name: p.Name})
		}
	}
	for _, a := range accounts {
		rc.Accounts = append(rc.Accounts, Ref{ID: a.ID, Name: a.Name})
	}
	for _, c := range categories {
		rc.Categories = append(rc.Categories, Ref{ID: c.ID, Name: c.Name})
	}
	for _, s := range shops {
		rc.Shops = append(rc.Shops, Ref{ID: s.ID, Name: s.Name})
	}
	return rc
}
