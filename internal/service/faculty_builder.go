package service

import (
	"fmt"

	"github.com/campushub/campushub-backend/internal/model"
)

// MaxFacultyPDFs caps the number of files accepted under the positional
// pdfs upload slot.
const MaxFacultyPDFs = 10

// BuildMajors assembles the ordered majors list of a faculty from a
// flat form payload.
//
// The wire contract: majors arrive as indexed keys
// majors[0][majorName], majors[1][majorName], … with zero-based,
// gap-free indices; the walk stops at the first missing index. A name
// present but empty at a visited index is a validation failure.
//
// PDF binding, in order of preference per index i:
//   - explicit[i], the stored name of a file uploaded under the field
//     majors[i][pdf] — the declared per-major join;
//   - pdfs[i], the file at the same position in the ordered pdfs upload
//     slot. This positional join makes the client responsible for
//     uploading PDFs in exactly the order of the major entries that
//     should receive them: a major with no intended PDF keeps its slot
//     free only if the client omits it from the sequence, as there is
//     no per-major marker inside the slot itself;
//   - otherwise the major carries no PDF (nil).
func BuildMajors(form map[string][]string, pdfs []string, explicit map[int]string) ([]model.Major, error) {
	majors := make([]model.Major, 0)
	for i := 0; ; i++ {
		key := fmt.Sprintf("majors[%d][majorName]", i)
		vals, ok := form[key]
		if !ok {
			break
		}
		name := ""
		if len(vals) > 0 {
			name = vals[0]
		}
		if name == "" {
			return nil, &ValidationError{Fields: []string{key}}
		}

		m := model.Major{MajorName: name}
		if p, ok := explicit[i]; ok {
			m.PDF = &p
		} else if i < len(pdfs) {
			p := pdfs[i]
			m.PDF = &p
		}
		majors = append(majors, m)
	}
	return majors, nil
}
