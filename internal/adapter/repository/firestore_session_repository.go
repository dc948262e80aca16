package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"bhutanfresh/internal/domain/entity"
	"bhutanfresh/internal/domain/repository"
	"bhutanfresh/pkg/errors"
)

type firestoreSessionRepository struct {
	client *firestore.Client
}

func NewFirestoreSessionRepository(client *firestore.Client) repository.SessionRepository {
	return &firestoreSessionRepository{client: client}
}

func (r *firestoreSessionRepository) Create(ctx context.Context, session *entity.Session) error {
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now()
	}

	_, err := r.client.Collection("sessions").Doc(session.Token).Set(ctx, session)
	if err != nil {
		return errors.Internal("Failed to create session", err)
	}

	return nil
}

func (r *firestoreSessionRepository) GetByToken(ctx context.Context, token string) (*entity.Session, error) {
	doc, err := r.client.Collection("sessions").Doc(token).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, errors.NotFound("Session", err)
		}
		return nil, errors.Internal("Failed to get session", err)
	}

	var session entity.Session
	if err := doc.DataTo(&session); err != nil {
		return nil, errors.Internal("Failed to parse session data", err)
	}

	return &session, nil
}

func (r *firestoreSessionRepository) Delete(ctx context.Context, token string) error {
	_, err := r.client.Collection("sessions").Doc(token).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete session", err)
	}

	return nil
}
