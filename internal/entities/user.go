// Package entities contains core business entities.
package entities

// User is a domain representation of an organization member.
// DreamBook may be empty when dreams were not loaded alongside the user;
// callers needing dreams fall back to the dream store.
type User struct {
	ID        string
	Name      string
	Email     string
	Office    string
	DreamBook []Dream
}

// Dream is a tracked aspiration owned by exactly one user.
type Dream struct {
	ID        string
	Title     string
	Category  string
	IsPublic  bool
	Completed bool
	Goals     []Goal
}

// Goal is a concrete step inside a dream.
type Goal struct {
	ID        string
	Completed bool
}
