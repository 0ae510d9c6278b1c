package entity

// Todo is a single task record. It belongs to exactly one user, fixed at
// creation; ownership never transfers. The title may be empty.
type Todo struct {
	ID          uint   // Unique identifier, assigned by the store on creation.
	Title       string // Free-form task description.
	IsCompleted bool   // Completion flag.
	UserID      uint   // Owning user. Immutable after creation.
}
