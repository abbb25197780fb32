package service

import (
	"context"
	"errors"
	"testing"

	"github.com/campushub/campushub-backend/internal/model"
)

func newFacultyFixture() (*FacultyService, *memCollection[model.Faculty]) {
	coll := newMemCollection[model.Faculty]()
	return NewFacultyService(coll), coll
}

func pdfRef(s string) *string { return &s }

func TestFacultyCreate_MissingName(t *testing.T) {
	svc, _ := newFacultyFixture()

	_, err := svc.Create(context.Background(), FacultyInput{})
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if len(ve.Fields) != 1 || ve.Fields[0] != "facultiesName" {
		t.Errorf("fields = %v, want [facultiesName]", ve.Fields)
	}
}

func TestFacultyCreate_WithMajorsAndImage(t *testing.T) {
	svc, _ := newFacultyFixture()

	faculty, err := svc.Create(context.Background(), FacultyInput{
		FacultiesName: strPtr("Engineering"),
		UploadedImg:   "1700000000000-img.png",
		Majors: []model.Major{
			{MajorName: "CS", PDF: pdfRef("cs.pdf")},
			{MajorName: "Math"},
		},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if faculty.Img != "1700000000000-img.png" {
		t.Errorf("img = %q, want the uploaded name", faculty.Img)
	}
	if len(faculty.Majors) != 2 {
		t.Fatalf("majors = %d, want 2", len(faculty.Majors))
	}
	if faculty.Majors[1].PDF != nil {
		t.Errorf("majors[1].PDF = %v, want nil", *faculty.Majors[1].PDF)
	}
}

func TestFacultyUpdate_ReplacesMajorsWholesale(t *testing.T) {
	svc, _ := newFacultyFixture()
	ctx := context.Background()

	created, _ := svc.Create(ctx, FacultyInput{
		FacultiesName: strPtr("Engineering"),
		Majors: []model.Major{
			{MajorName: "CS", PDF: pdfRef("cs.pdf")},
			{MajorName: "Math", PDF: pdfRef("math.pdf")},
		},
	})

	updated, err := svc.Update(ctx, created.ID, FacultyInput{
		Majors: []model.Major{{MajorName: "Physics"}},
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if len(updated.Majors) != 1 || updated.Majors[0].MajorName != "Physics" {
		t.Errorf("majors = %+v, want the replacement list only", updated.Majors)
	}
	if updated.FacultiesName != "Engineering" {
		t.Errorf("facultiesName = %q, want untouched", updated.FacultiesName)
	}
}

func TestFacultyUpdate_ImageUntouchedWithoutUploadOrBodyValue(t *testing.T) {
	svc, _ := newFacultyFixture()
	ctx := context.Background()

	created, _ := svc.Create(ctx, FacultyInput{
		FacultiesName: strPtr("Engineering"),
		UploadedImg:   "keep.png",
	})

	updated, err := svc.Update(ctx, created.ID, FacultyInput{FacultiesName: strPtr("Science")})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Img != "keep.png" {
		t.Errorf("img = %q, want keep.png", updated.Img)
	}
}

func TestFacultyDelete_RemovesEmbeddedMajors(t *testing.T) {
	svc, _ := newFacultyFixture()
	ctx := context.Background()

	created, _ := svc.Create(ctx, FacultyInput{
		FacultiesName: strPtr("Engineering"),
		Majors:        []model.Major{{MajorName: "CS"}},
	})

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(ctx, created.ID); err == nil {
		t.Fatal("aggregate still resolvable after delete")
	}
}
