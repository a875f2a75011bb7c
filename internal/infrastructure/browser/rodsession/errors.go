package rodsession

import (
	"fmt"
	"strings"

	"page-helper/internal/domain/entity"
)

// staleMarkers are the protocol-level signatures of a handle whose backing
// node detached: DevTools reports missing nodes and dead execution contexts
// with these messages (code -32000 covers the generic "node not found" CDP
// error).
var staleMarkers = []string{
	"Could not find node",
	"Cannot find context with specified id",
	"Object couldn't be returned by value",
	"Node is detached from document",
	"-32000",
}

func isStale(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	for _, marker := range staleMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// mapElementErr converts detached-node protocol errors into entity.ErrStale
// so poll loops re-locate instead of aborting. Other errors pass through.
func mapElementErr(err error) error {
	if err == nil {
		return nil
	}
	if isStale(err) {
		return fmt.Errorf("%w: %v", entity.ErrStale, err)
	}
	return err
}
