package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores and registries return these
// (optionally wrapped) so services can translate them into domain errors.
//
// - ErrNotFound: document, jurisdiction, term or session does not exist
// - ErrUnavailable: backing store or cache temporarily unavailable
//
// For caller input problems use pkg/domain-errors directly.
var (
	ErrNotFound    = errors.New("not found")
	ErrUnavailable = errors.New("unavailable")
)
