package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/campushub/campushub-backend/internal/model"
	"github.com/campushub/campushub-backend/internal/repository"
)

// AnnouncementInput carries the decoded write payload for an
// announcement. Announcements take no direct file upload; their pdf
// pair is set by literal value (typically a name returned from the
// media upload endpoint) and follows the same tri-state semantics as
// every other attachment reference.
type AnnouncementInput struct {
	Title   *string
	Image   *string
	Content *string
	PDFName *string
	PDFPath *string
}

// AnnouncementService handles announcement business logic.
type AnnouncementService struct {
	announcements repository.Collection[model.Announcement]
}

// NewAnnouncementService creates a new AnnouncementService.
func NewAnnouncementService(announcements repository.Collection[model.Announcement]) *AnnouncementService {
	return &AnnouncementService{announcements: announcements}
}

// Create validates and persists a new announcement.
func (s *AnnouncementService) Create(ctx context.Context, in AnnouncementInput) (*model.Announcement, error) {
	var missing []string
	if in.Title == nil || *in.Title == "" {
		missing = append(missing, "title")
	}
	if in.Image == nil || *in.Image == "" {
		missing = append(missing, "image")
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Fields: missing}
	}

	doc := &model.Announcement{Title: *in.Title, Image: *in.Image}
	if upd := ResolveAttachment("", in.Content); upd.Op == AttachmentSet {
		doc.Content = upd.Value
	}
	if upd := ResolveAttachment("", in.PDFName); upd.Op == AttachmentSet {
		doc.PDFName = upd.Value
	}
	if upd := ResolveAttachment("", in.PDFPath); upd.Op == AttachmentSet {
		doc.PDFPath = upd.Value
	}

	id, err := s.announcements.Insert(ctx, doc)
	if err != nil {
		return nil, err
	}
	doc.ID = id
	return doc, nil
}

// Get retrieves an announcement by its ID.
func (s *AnnouncementService) Get(ctx context.Context, id primitive.ObjectID) (*model.Announcement, error) {
	return s.announcements.FindByID(ctx, id)
}

// List retrieves all announcements.
func (s *AnnouncementService) List(ctx context.Context) ([]model.Announcement, error) {
	return s.announcements.FindAll(ctx)
}

// Update merges only the supplied fields; the optional fields follow
// tri-state semantics.
func (s *AnnouncementService) Update(ctx context.Context, id primitive.ObjectID, in AnnouncementInput) (*model.Announcement, error) {
	var empty []string
	if in.Title != nil && *in.Title == "" {
		empty = append(empty, "title")
	}
	if in.Image != nil && *in.Image == "" {
		empty = append(empty, "image")
	}
	if len(empty) > 0 {
		return nil, &ValidationError{Fields: empty}
	}

	set, unset := bson.M{}, bson.M{}
	if in.Title != nil {
		set["title"] = *in.Title
	}
	if in.Image != nil {
		set["image"] = *in.Image
	}
	ResolveAttachment("", in.Content).Apply("content", set, unset)
	ResolveAttachment("", in.PDFName).Apply("pdfName", set, unset)
	ResolveAttachment("", in.PDFPath).Apply("pdfPath", set, unset)

	return s.announcements.UpdateByID(ctx, id, set, unset)
}

// Delete removes an announcement.
func (s *AnnouncementService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.announcements.DeleteByID(ctx, id)
}
