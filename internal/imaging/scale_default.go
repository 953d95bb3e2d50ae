//go:build !opencv

package imaging

// DefaultScaler returns the scaler used when none is configured.
func DefaultScaler() Scaler { return NewDrawScaler() }
