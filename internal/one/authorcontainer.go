package one

import "onenotestore/internal/onestore"

// AuthorContainer names a single author attached to a revision.
type AuthorContainer struct {
	Name string
}

// ParseAuthorContainer decodes an AuthorContainer object (MS-ONE 2.2.9).
func ParseAuthorContainer(obj *onestore.Object) (AuthorContainer, error) {
	if err := requireJcid(obj, PropertySetAuthorContainer); err != nil {
		return AuthorContainer{}, err
	}
	name, err := requireUTF16String(obj.Props, PropAuthor)
	if err != nil {
		return AuthorContainer{}, err
	}
	return AuthorContainer{Name: name}, nil
}
