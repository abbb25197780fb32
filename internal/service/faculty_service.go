package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/campushub/campushub-backend/internal/model"
	"github.com/campushub/campushub-backend/internal/repository"
)

// FacultyInput carries the decoded write payload for a faculty
// aggregate. Majors is the fully built list from BuildMajors; on update
// it replaces the stored list wholesale; majors have no identity of
// their own, so there is no per-major partial update.
type FacultyInput struct {
	FacultiesName *string
	Img           *string
	UploadedImg   string
	Majors        []model.Major
}

// FacultyService handles faculty aggregate business logic.
type FacultyService struct {
	faculties repository.Collection[model.Faculty]
}

// NewFacultyService creates a new FacultyService.
func NewFacultyService(faculties repository.Collection[model.Faculty]) *FacultyService {
	return &FacultyService{faculties: faculties}
}

// Create validates and persists a new faculty with its majors.
func (s *FacultyService) Create(ctx context.Context, in FacultyInput) (*model.Faculty, error) {
	if in.FacultiesName == nil || *in.FacultiesName == "" {
		return nil, &ValidationError{Fields: []string{"facultiesName"}}
	}

	majors := in.Majors
	if majors == nil {
		majors = make([]model.Major, 0)
	}

	doc := &model.Faculty{FacultiesName: *in.FacultiesName, Majors: majors}
	if upd := ResolveAttachment(in.UploadedImg, in.Img); upd.Op == AttachmentSet {
		doc.Img = upd.Value
	}

	id, err := s.faculties.Insert(ctx, doc)
	if err != nil {
		return nil, err
	}
	doc.ID = id
	return doc, nil
}

// Get retrieves a faculty by its ID.
func (s *FacultyService) Get(ctx context.Context, id primitive.ObjectID) (*model.Faculty, error) {
	return s.faculties.FindByID(ctx, id)
}

// List retrieves all faculties.
func (s *FacultyService) List(ctx context.Context) ([]model.Faculty, error) {
	return s.faculties.FindAll(ctx)
}

// Update replaces the majors list wholesale, merges the name if
// supplied, and applies tri-state semantics to the img reference.
func (s *FacultyService) Update(ctx context.Context, id primitive.ObjectID, in FacultyInput) (*model.Faculty, error) {
	if in.FacultiesName != nil && *in.FacultiesName == "" {
		return nil, &ValidationError{Fields: []string{"facultiesName"}}
	}

	majors := in.Majors
	if majors == nil {
		majors = make([]model.Major, 0)
	}

	set, unset := bson.M{}, bson.M{}
	if in.FacultiesName != nil {
		set["facultiesName"] = *in.FacultiesName
	}
	set["majors"] = majors
	ResolveAttachment(in.UploadedImg, in.Img).Apply("img", set, unset)

	return s.faculties.UpdateByID(ctx, id, set, unset)
}

// Delete removes a faculty together with its embedded majors. Files
// referenced by the majors stay in the store; orphan accumulation is
// accepted.
func (s *FacultyService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.faculties.DeleteByID(ctx, id)
}
