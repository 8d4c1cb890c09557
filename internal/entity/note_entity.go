package entity

// Note is the sole domain entity: a short text memo owned by one user.
// Id is generated client-side (time-ordered) and immutable after create.
// DateAdded is a display label stamped once at creation.
type Note struct {
	Id          string
	Email       string
	Title       string
	Description string
	DateAdded   string
	Marked      bool
}
