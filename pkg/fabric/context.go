package fabric

import "context"

// Ambient exposes the identifiers of the caller's current environment. It
// replaces hidden process-wide state: resolvers consult it only when the
// caller omits an explicit workspace or lakehouse.
//
// Precedence for a defaulted workspace: the workspace of the attached
// lakehouse, then the current workspace.
type Ambient interface {
	// CurrentWorkspaceID returns the id of the current workspace, or
	// ErrNoAmbientWorkspace when none is available.
	CurrentWorkspaceID(ctx context.Context) (string, error)
	// CurrentLakehouseID returns the id of the attached lakehouse, or
	// ErrNoAmbientLakehouse when none is attached.
	CurrentLakehouseID(ctx context.Context) (string, error)
}

// StaticAmbient is an Ambient with fixed identifiers. Zero fields report
// the corresponding value as unavailable.
type StaticAmbient struct {
	WorkspaceID string
	LakehouseID string
}

// CurrentWorkspaceID implements Ambient.
func (a *StaticAmbient) CurrentWorkspaceID(ctx context.Context) (string, error) {
	if a.WorkspaceID == "" {
		return "", ErrNoAmbientWorkspace
	}

	return a.WorkspaceID, nil
}

// CurrentLakehouseID implements Ambient.
func (a *StaticAmbient) CurrentLakehouseID(ctx context.Context) (string, error) {
	if a.LakehouseID == "" {
		return "", ErrNoAmbientLakehouse
	}

	return a.LakehouseID, nil
}
