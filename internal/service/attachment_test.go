package service

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func strPtr(s string) *string { return &s }

func TestResolveAttachment(t *testing.T) {
	tests := []struct {
		name      string
		uploaded  string
		body      *string
		wantOp    AttachmentOp
		wantValue string
	}{
		{"no upload, no body key", "", nil, AttachmentUnchanged, ""},
		{"no upload, empty body value", "", strPtr(""), AttachmentUnchanged, ""},
		{"upload alone", "1700000000000-abc.pdf", nil, AttachmentSet, "1700000000000-abc.pdf"},
		{"upload wins over body literal", "1700000000000-abc.pdf", strPtr("other.pdf"), AttachmentSet, "1700000000000-abc.pdf"},
		{"upload wins over clear sentinel", "1700000000000-abc.pdf", strPtr("null"), AttachmentSet, "1700000000000-abc.pdf"},
		{"null sentinel clears", "", strPtr("null"), AttachmentClear, ""},
		{"undefined sentinel clears", "", strPtr("undefined"), AttachmentClear, ""},
		{"literal value sets verbatim", "", strPtr("files/custom.pdf"), AttachmentSet, "files/custom.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveAttachment(tt.uploaded, tt.body)
			if got.Op != tt.wantOp {
				t.Fatalf("op = %v, want %v", got.Op, tt.wantOp)
			}
			if got.Op == AttachmentSet && got.Value != tt.wantValue {
				t.Errorf("value = %q, want %q", got.Value, tt.wantValue)
			}
		})
	}
}

func TestAttachmentUpdateApply(t *testing.T) {
	set, unset := bson.M{}, bson.M{}

	AttachmentUpdate{Op: AttachmentSet, Value: "a.pdf"}.Apply("pdfPath", set, unset)
	AttachmentUpdate{Op: AttachmentClear}.Apply("img", set, unset)
	AttachmentUpdate{Op: AttachmentUnchanged}.Apply("pdfName", set, unset)

	if got := set["pdfPath"]; got != "a.pdf" {
		t.Errorf("set[pdfPath] = %v, want a.pdf", got)
	}
	if _, ok := unset["img"]; !ok {
		t.Error("expected img in unset")
	}
	if len(set) != 1 || len(unset) != 1 {
		t.Errorf("unchanged field leaked into maps: set=%v unset=%v", set, unset)
	}
}
