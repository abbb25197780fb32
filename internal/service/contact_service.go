package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/campushub/campushub-backend/internal/model"
	"github.com/campushub/campushub-backend/internal/repository"
)

// ContactInput carries the decoded write payload for a contact. Body
// fields are pointers: nil means the key was omitted. UploadedImg is
// the stored name of an image uploaded with the request ("" when none).
type ContactInput struct {
	Name        *string
	Phone       *string
	Telegram    *string
	Img         *string
	UploadedImg string
}

// ContactService handles contact business logic.
type ContactService struct {
	contacts repository.Collection[model.Contact]
}

// NewContactService creates a new ContactService.
func NewContactService(contacts repository.Collection[model.Contact]) *ContactService {
	return &ContactService{contacts: contacts}
}

// Create validates and persists a new contact.
func (s *ContactService) Create(ctx context.Context, in ContactInput) (*model.Contact, error) {
	var missing []string
	if in.Name == nil || *in.Name == "" {
		missing = append(missing, "name")
	}
	if in.Phone == nil || *in.Phone == "" {
		missing = append(missing, "phone")
	}
	if in.Telegram == nil || *in.Telegram == "" {
		missing = append(missing, "telegram")
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Fields: missing}
	}

	doc := &model.Contact{Name: *in.Name, Phone: *in.Phone, Telegram: *in.Telegram}
	if upd := ResolveAttachment(in.UploadedImg, in.Img); upd.Op == AttachmentSet {
		doc.Img = upd.Value
	}

	id, err := s.contacts.Insert(ctx, doc)
	if err != nil {
		return nil, err
	}
	doc.ID = id
	return doc, nil
}

// Get retrieves a contact by its ID.
func (s *ContactService) Get(ctx context.Context, id primitive.ObjectID) (*model.Contact, error) {
	return s.contacts.FindByID(ctx, id)
}

// List retrieves all contacts.
func (s *ContactService) List(ctx context.Context) ([]model.Contact, error) {
	return s.contacts.FindAll(ctx)
}

// Update merges only the supplied fields. The img field follows
// tri-state semantics through ResolveAttachment.
func (s *ContactService) Update(ctx context.Context, id primitive.ObjectID, in ContactInput) (*model.Contact, error) {
	var empty []string
	if in.Name != nil && *in.Name == "" {
		empty = append(empty, "name")
	}
	if in.Phone != nil && *in.Phone == "" {
		empty = append(empty, "phone")
	}
	if in.Telegram != nil && *in.Telegram == "" {
		empty = append(empty, "telegram")
	}
	if len(empty) > 0 {
		return nil, &ValidationError{Fields: empty}
	}

	set, unset := bson.M{}, bson.M{}
	if in.Name != nil {
		set["name"] = *in.Name
	}
	if in.Phone != nil {
		set["phone"] = *in.Phone
	}
	if in.Telegram != nil {
		set["telegram"] = *in.Telegram
	}
	ResolveAttachment(in.UploadedImg, in.Img).Apply("img", set, unset)

	return s.contacts.UpdateByID(ctx, id, set, unset)
}

// Delete removes a contact.
func (s *ContactService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.contacts.DeleteByID(ctx, id)
}
