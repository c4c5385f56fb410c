// internal/types/types.go
package types

// EntityID is a unique identifier for an entity in the ECS.
type EntityID uint64
