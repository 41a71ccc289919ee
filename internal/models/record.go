package models

// Record is one document in an owner-scoped resource. Field names and values
// are opaque to the synchronization logic apart from "id", which is always
// assigned by the database, and the server-stamped timestamp fields.
type Record map[string]any

// WithoutID returns a copy of the record with any client-supplied "id"
// removed. Identifiers are never taken from the client.
func (r Record) WithoutID() Record {
	out := make(Record, len(r))
	for k, v := range r {
		if k == "id" {
			continue
		}
		out[k] = v
	}
	return out
}
