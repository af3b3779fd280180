// internal/types/types.go
package types

// EntityID identifies an entity inside the ECS. Zero is never issued.
type EntityID uint64
