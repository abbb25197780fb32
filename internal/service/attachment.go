package service

import "go.mongodb.org/mongo-driver/bson"

// AttachmentOp is the decoded intent of an update request toward a
// single file-reference field.
type AttachmentOp int

const (
	// AttachmentUnchanged leaves the stored value exactly as it is.
	AttachmentUnchanged AttachmentOp = iota
	// AttachmentSet writes Value into the field.
	AttachmentSet
	// AttachmentClear removes the field from the document entirely.
	AttachmentClear
)

// AttachmentUpdate is a tagged tri-state update for a file-reference
// field: unchanged, set to a value, or cleared.
type AttachmentUpdate struct {
	Op    AttachmentOp
	Value string
}

// ResolveAttachment decodes one attachment field of an update request
// into a tagged AttachmentUpdate. uploadedName is the stored name of a
// file uploaded with the request ("" when none); bodyValue is the raw
// body value for the field (nil when the key was omitted).
//
// Precedence is strict, first match wins:
//  1. a file was uploaded          → set to its stored name
//  2. body value "null"/"undefined" → clear
//  3. any other non-empty body value → set to that literal
//  4. otherwise                     → unchanged
//
// The wire sentinels are interpreted here and nowhere else; everything
// downstream works with the tagged value.
func ResolveAttachment(uploadedName string, bodyValue *string) AttachmentUpdate {
	if uploadedName != "" {
		return AttachmentUpdate{Op: AttachmentSet, Value: uploadedName}
	}
	if bodyValue == nil {
		return AttachmentUpdate{Op: AttachmentUnchanged}
	}
	switch *bodyValue {
	case "null", "undefined":
		return AttachmentUpdate{Op: AttachmentClear}
	case "":
		return AttachmentUpdate{Op: AttachmentUnchanged}
	default:
		return AttachmentUpdate{Op: AttachmentSet, Value: *bodyValue}
	}
}

// Apply records the update for field into the partial-update maps. A
// cleared field goes into unset so it ends up physically absent from
// the stored document, indistinguishable from never set.
func (u AttachmentUpdate) Apply(field string, set, unset bson.M) {
	switch u.Op {
	case AttachmentSet:
		set[field] = u.Value
	case AttachmentClear:
		unset[field] = ""
	}
}
