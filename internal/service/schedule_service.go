package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/campushub/campushub-backend/internal/model"
	"github.com/campushub/campushub-backend/internal/repository"
)

// ScheduleInput carries the decoded write payload for a schedule. Body
// fields are pointers: nil means the key was omitted from the request.
// UploadedPDF is the stored name of a file uploaded with the request
// ("" when none) and UploadedPDFName the client's original file name.
type ScheduleInput struct {
	Name            *string
	PDFPath         *string
	PDFName         *string
	UploadedPDF     string
	UploadedPDFName string
}

// ScheduleService handles schedule business logic.
type ScheduleService struct {
	schedules repository.Collection[model.Schedule]
}

// NewScheduleService creates a new ScheduleService.
func NewScheduleService(schedules repository.Collection[model.Schedule]) *ScheduleService {
	return &ScheduleService{schedules: schedules}
}

// Create validates and persists a new schedule. The pdf fields stay
// absent from the document unless a file was uploaded or the body
// carried literal values.
func (s *ScheduleService) Create(ctx context.Context, in ScheduleInput) (*model.Schedule, error) {
	if in.Name == nil || *in.Name == "" {
		return nil, &ValidationError{Fields: []string{"name"}}
	}

	doc := &model.Schedule{Name: *in.Name}
	if upd := ResolveAttachment(in.UploadedPDF, in.PDFPath); upd.Op == AttachmentSet {
		doc.PDFPath = upd.Value
	}
	if upd := ResolveAttachment(in.UploadedPDFName, in.PDFName); upd.Op == AttachmentSet {
		doc.PDFName = upd.Value
	}

	id, err := s.schedules.Insert(ctx, doc)
	if err != nil {
		return nil, err
	}
	doc.ID = id
	return doc, nil
}

// Get retrieves a schedule by its ID.
func (s *ScheduleService) Get(ctx context.Context, id primitive.ObjectID) (*model.Schedule, error) {
	return s.schedules.FindByID(ctx, id)
}

// List retrieves all schedules.
func (s *ScheduleService) List(ctx context.Context) ([]model.Schedule, error) {
	return s.schedules.FindAll(ctx)
}

// Update merges only the supplied fields into the stored schedule and
// returns the post-update document. The pdf pair follows tri-state
// semantics: an uploaded file replaces it, the clear sentinel removes
// it, a literal value sets it verbatim, and an omitted key leaves it
// untouched.
func (s *ScheduleService) Update(ctx context.Context, id primitive.ObjectID, in ScheduleInput) (*model.Schedule, error) {
	if in.Name != nil && *in.Name == "" {
		return nil, &ValidationError{Fields: []string{"name"}}
	}

	set, unset := bson.M{}, bson.M{}
	if in.Name != nil {
		set["name"] = *in.Name
	}
	ResolveAttachment(in.UploadedPDF, in.PDFPath).Apply("pdfPath", set, unset)
	ResolveAttachment(in.UploadedPDFName, in.PDFName).Apply("pdfName", set, unset)

	return s.schedules.UpdateByID(ctx, id, set, unset)
}

// Delete removes a schedule. Its referenced file, if any, is left in
// the store; orphan accumulation is accepted.
func (s *ScheduleService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.schedules.DeleteByID(ctx, id)
}
