package store

import (
	"fmt"
	"regexp"

	"github.com/LuizHNR/NebuloHub-Mongo/internal/model"
)

// Names must be valid in every backend: Mongo collections, Postgres tables
// and Arango collections.
var collectionNamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]{0,62}$`)

// Collections maps each entity kind to the collection that holds it.
type Collections struct {
	names map[model.Kind]string
}

// NewCollections requires a distinct, well-formed name for every kind.
func NewCollections(names map[model.Kind]string) (Collections, error) {
	c := Collections{names: make(map[model.Kind]string, len(names))}
	seen := make(map[string]model.Kind, len(names))

	for _, kind := range model.Kinds() {
		name, ok := names[kind]
		if !ok || name == "" {
			return Collections{}, fmt.Errorf("no collection configured for %s", kind)
		}
		if !collectionNamePattern.MatchString(name) {
			return Collections{}, fmt.Errorf("invalid collection name %q for %s", name, kind)
		}
		if other, dup := seen[name]; dup {
			return Collections{}, fmt.Errorf("collection %q used by both %s and %s", name, other, kind)
		}
		seen[name] = kind
		c.names[kind] = name
	}

	for kind := range names {
		if _, ok := c.names[kind]; !ok {
			return Collections{}, fmt.Errorf("unknown entity kind %q", kind)
		}
	}

	return c, nil
}

func DefaultCollections() Collections {
	c, err := NewCollections(map[model.Kind]string{
		model.KindAccount:      "accounts",
		model.KindOrganization: "organizations",
		model.KindRating:       "ratings",
	})
	if err != nil {
		panic(err)
	}
	return c
}

func (c Collections) Resolve(kind model.Kind) (string, error) {
	name, ok := c.names[kind]
	if !ok {
		return "", fmt.Errorf("no collection registered for %q", kind)
	}
	return name, nil
}

// Names returns the collection names in model.Kinds order.
func (c Collections) Names() []string {
	names := make([]string, 0, len(c.names))
	for _, kind := range model.Kinds() {
		if name, ok := c.names[kind]; ok {
			names = append(names, name)
		}
	}
	return names
}
