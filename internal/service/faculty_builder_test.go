package service

import (
	"errors"
	"testing"
)

func TestBuildMajors_PositionalBinding(t *testing.T) {
	form := map[string][]string{
		"majors[0][majorName]": {"CS"},
		"majors[1][majorName]": {"Math"},
	}
	pdfs := []string{"first.pdf", "second.pdf"}

	majors, err := BuildMajors(form, pdfs, nil)
	if err != nil {
		t.Fatalf("BuildMajors: %v", err)
	}
	if len(majors) != 2 {
		t.Fatalf("len = %d, want 2", len(majors))
	}
	if majors[0].MajorName != "CS" || majors[0].PDF == nil || *majors[0].PDF != "first.pdf" {
		t.Errorf("majors[0] = %+v, want CS bound to first.pdf", majors[0])
	}
	if majors[1].MajorName != "Math" || majors[1].PDF == nil || *majors[1].PDF != "second.pdf" {
		t.Errorf("majors[1] = %+v, want Math bound to second.pdf", majors[1])
	}
}

func TestBuildMajors_FewerPDFsThanMajors(t *testing.T) {
	form := map[string][]string{
		"majors[0][majorName]": {"CS"},
		"majors[1][majorName]": {"Math"},
	}

	majors, err := BuildMajors(form, []string{"only.pdf"}, nil)
	if err != nil {
		t.Fatalf("BuildMajors: %v", err)
	}
	if majors[0].PDF == nil || *majors[0].PDF != "only.pdf" {
		t.Errorf("majors[0].PDF = %v, want only.pdf", majors[0].PDF)
	}
	if majors[1].PDF != nil {
		t.Errorf("majors[1].PDF = %v, want nil", *majors[1].PDF)
	}
}

func TestBuildMajors_StopsAtFirstGap(t *testing.T) {
	form := map[string][]string{
		"majors[0][majorName]": {"CS"},
		"majors[2][majorName]": {"Skipped"},
	}

	majors, err := BuildMajors(form, nil, nil)
	if err != nil {
		t.Fatalf("BuildMajors: %v", err)
	}
	if len(majors) != 1 {
		t.Fatalf("len = %d, want 1 (walk stops at the gap)", len(majors))
	}
}

func TestBuildMajors_EmptyNameAtVisitedIndex(t *testing.T) {
	form := map[string][]string{
		"majors[0][majorName]": {"CS"},
		"majors[1][majorName]": {""},
	}

	_, err := BuildMajors(form, nil, nil)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if len(ve.Fields) != 1 || ve.Fields[0] != "majors[1][majorName]" {
		t.Errorf("fields = %v, want [majors[1][majorName]]", ve.Fields)
	}
}

func TestBuildMajors_ExplicitSlotWinsOverPositional(t *testing.T) {
	form := map[string][]string{
		"majors[0][majorName]": {"CS"},
		"majors[1][majorName]": {"Math"},
	}
	pdfs := []string{"pos0.pdf", "pos1.pdf"}
	explicit := map[int]string{1: "declared.pdf"}

	majors, err := BuildMajors(form, pdfs, explicit)
	if err != nil {
		t.Fatalf("BuildMajors: %v", err)
	}
	if *majors[0].PDF != "pos0.pdf" {
		t.Errorf("majors[0].PDF = %q, want pos0.pdf", *majors[0].PDF)
	}
	if *majors[1].PDF != "declared.pdf" {
		t.Errorf("majors[1].PDF = %q, want declared.pdf", *majors[1].PDF)
	}
}

func TestBuildMajors_NoMajorKeys(t *testing.T) {
	majors, err := BuildMajors(map[string][]string{"facultiesName": {"Engineering"}}, nil, nil)
	if err != nil {
		t.Fatalf("BuildMajors: %v", err)
	}
	if majors == nil || len(majors) != 0 {
		t.Fatalf("majors = %v, want empty non-nil list", majors)
	}
}
