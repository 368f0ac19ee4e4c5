package model

// Module is a content unit from the modules seed file.
//
// Modules carry no identifier of their own in the seed data: a module's
// identity is its 1-based position in the input sequence. The ID is assigned
// once at load time so call sites never re-derive it and drift off by one.
type Module struct {
	// ID is the 1-based position of the record in the seed file.
	ID int

	// Title is the module's display title. It is nil when the seed record
	// has no title field or an explicit null. A nil title is only an error
	// for modules that must appear in the missing report.
	Title *string
}
