package domain

type LinkKind string

const (
	LinkKindLocal    LinkKind = "local"
	LinkKindExternal LinkKind = "external"
)

// Link is a reference found in a document, already classified.
type Link struct {
	Kind   LinkKind
	Target string
	Raw    string
}

func (l Link) IsExternal() bool { return l.Kind == LinkKindExternal }
