package store

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dmaskell/ledgerview-backend/internal/errs"
	"github.com/dmaskell/ledgerview-backend/internal/models"
)

type reportStore struct {
	client *firestore.Client
}

func NewReportStore(client *firestore.Client) *reportStore {
	return &reportStore{client: client}
}

func (s *reportStore) collection() *firestore.CollectionRef {
	return s.client.Collection("report_definitions")
}

func (s *reportStore) Get(ctx context.Context, reportID string) (*models.ReportDefinition, error) {
	doc, err := s.collection().Doc(reportID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errs.NewNotFoundError("report not found")
		}
		return nil, errs.NewDatabaseError("read", "failed to get report definition", err)
	}
	var def models.ReportDefinition
	if err := doc.DataTo(&def); err != nil {
		return nil, errs.NewDatabaseError("read", "failed to parse report definition", err)
	}
	return &def, nil
}

func (s *reportStore) List(ctx context.Context, ownerID string) ([]*models.ReportDefinition, error) {
	docs, err := s.collection().Where("ownerId", "==", ownerID).Documents(ctx).GetAll()
	if err != nil {
		return nil, errs.NewDatabaseError("read", "failed to list report definitions", err)
	}
	defs := make([]*models.ReportDefinition, 0, len(docs))
	for _, d := range docs {
		var def models.ReportDefinition
		if err := d.DataTo(&def); err != nil {
			return nil, errs.NewDatabaseError("read", "failed to parse report definition", err)
		}
		defs = append(defs, &def)
	}
	return defs, nil
}
