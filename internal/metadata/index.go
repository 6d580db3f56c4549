package metadata

// JointChamber is the chamber identifier for joint committees. It has no
// entry in Chambers.
const JointChamber = "joint"

// Index answers read-only term, session and chamber lookups for one
// jurisdiction. Unknown identifiers report ok == false. A nil *Index behaves
// as an empty one.
type Index struct {
	meta  *Metadata
	terms map[string]Term
}

// NewIndex builds an Index over m. m must not be mutated afterwards.
func NewIndex(m *Metadata) *Index {
	if m == nil {
		m = &Metadata{}
	}
	terms := make(map[string]Term, len(m.Terms))
	for _, t := range m.Terms {
		terms[t.Name] = t
	}
	return &Index{meta: m, terms: terms}
}

// Metadata returns the underlying jurisdiction metadata.
func (ix *Index) Metadata() *Metadata {
	if ix == nil {
		return &Metadata{}
	}
	return ix.meta
}

// Term returns the definition of term.
func (ix *Index) Term(term string) (Term, bool) {
	if ix == nil {
		return Term{}, false
	}
	t, ok := ix.terms[term]
	return t, ok
}

// SessionIDsFor returns the ordered session identifiers of term.
func (ix *Index) SessionIDsFor(term string) ([]string, bool) {
	t, ok := ix.Term(term)
	if !ok {
		return nil, false
	}
	return append([]string(nil), t.Sessions...), true
}

// SessionsFor returns the display names of term's sessions, in term order.
// It fails if the term is unknown or any of its sessions has no details.
func (ix *Index) SessionsFor(term string) ([]string, bool) {
	t, ok := ix.Term(term)
	if !ok {
		return nil, false
	}
	names := make([]string, 0, len(t.Sessions))
	for _, session := range t.Sessions {
		name, ok := ix.DisplayNameFor(session)
		if !ok {
			return nil, false
		}
		names = append(names, name)
	}
	return names, true
}

// DisplayNameFor returns the display name of session.
func (ix *Index) DisplayNameFor(session string) (string, bool) {
	if ix == nil {
		return "", false
	}
	d, ok := ix.meta.SessionDetails[session]
	if !ok {
		return "", false
	}
	return d.DisplayName, true
}

// ChamberName returns the display name of chamber, e.g. "Senate".
func (ix *Index) ChamberName(chamber string) (string, bool) {
	if ix == nil {
		return "", false
	}
	c, ok := ix.meta.Chambers[chamber]
	if !ok || c.Name == "" {
		return "", false
	}
	return c.Name, true
}

// ChamberTitle returns the member title of chamber, e.g. "Senator".
func (ix *Index) ChamberTitle(chamber string) (string, bool) {
	if ix == nil {
		return "", false
	}
	c, ok := ix.meta.Chambers[chamber]
	if !ok || c.Title == "" {
		return "", false
	}
	return c.Title, true
}
