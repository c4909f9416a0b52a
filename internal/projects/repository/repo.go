package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/batuhansemiz/portfolio-backend/internal/projects/domain"
)

// Store is the document-store capability the handlers depend on. The
// Firestore implementation below is the production one; tests substitute
// an in-memory fake.
type Store interface {
	List(ctx context.Context) ([]domain.Project, error)
	Get(ctx context.Context, id string) (*domain.Project, error)
	Create(ctx context.Context, p *domain.Project) (string, error)
	Update(ctx context.Context, id string, upd Update) error
	Delete(ctx context.Context, id string) error
}

// Update carries the writable project fields of an update. Nil pointers mean
// "leave unchanged". Only these fields ever reach the store on the update
// path; anything else in a request body is dropped.
type Update struct {
	Title        *string
	Description  *string
	Technologies *[]string
	ImageURL     *string
	ProjectURL   *string
	RepoURL      *string
}

const projectsCollection = "projects"

// Firestore is the Store implementation over the managed document store.
type Firestore struct {
	client *firestore.Client
}

func NewFirestore(client *firestore.Client) *Firestore {
	return &Firestore{client: client}
}

// List returns all projects ordered by creation time, newest first.
func (r *Firestore) List(ctx context.Context) ([]domain.Project, error) {
	iter := r.client.Collection(projectsCollection).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	out := make([]domain.Project, 0, 16)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list projects: %w", err)
		}

		var p domain.Project
		if err := doc.DataTo(&p); err != nil {
			return nil, fmt.Errorf("decode project %s: %w", doc.Ref.ID, err)
		}
		p.ID = doc.Ref.ID
		out = append(out, p)
	}
	return out, nil
}

func (r *Firestore) Get(ctx context.Context, id string) (*domain.Project, error) {
	doc, err := r.client.Collection(projectsCollection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get project %s: %w", id, err)
	}

	var p domain.Project
	if err := doc.DataTo(&p); err != nil {
		return nil, fmt.Errorf("decode project %s: %w", id, err)
	}
	p.ID = doc.Ref.ID
	return &p, nil
}

// Create inserts a new project. createdAt is stamped by the store itself;
// the assigned document id is returned.
func (r *Firestore) Create(ctx context.Context, p *domain.Project) (string, error) {
	ref, _, err := r.client.Collection(projectsCollection).Add(ctx, map[string]interface{}{
		"title":        p.Title,
		"description":  p.Description,
		"technologies": p.Technologies,
		"imageUrl":     p.ImageURL,
		"projectUrl":   p.ProjectURL,
		"repoUrl":      p.RepoURL,
		"createdAt":    firestore.ServerTimestamp,
	})
	if err != nil {
		return "", fmt.Errorf("create project: %w", err)
	}
	return ref.ID, nil
}

// Update merges the provided fields into an existing document and stamps
// updatedAt. The existence check and the write are two calls; a concurrent
// delete between them surfaces as a store error, not corruption.
func (r *Firestore) Update(ctx context.Context, id string, upd Update) error {
	ref := r.client.Collection(projectsCollection).Doc(id)
	if _, err := ref.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get project %s: %w", id, err)
	}

	updates := []firestore.Update{
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
	}
	if upd.Title != nil {
		updates = append(updates, firestore.Update{Path: "title", Value: *upd.Title})
	}
	if upd.Description != nil {
		updates = append(updates, firestore.Update{Path: "description", Value: *upd.Description})
	}
	if upd.Technologies != nil {
		updates = append(updates, firestore.Update{Path: "technologies", Value: *upd.Technologies})
	}
	if upd.ImageURL != nil {
		updates = append(updates, firestore.Update{Path: "imageUrl", Value: *upd.ImageURL})
	}
	if upd.ProjectURL != nil {
		updates = append(updates, firestore.Update{Path: "projectUrl", Value: *upd.ProjectURL})
	}
	if upd.RepoURL != nil {
		updates = append(updates, firestore.Update{Path: "repoUrl", Value: *upd.RepoURL})
	}

	if _, err := ref.Update(ctx, updates); err != nil {
		return fmt.Errorf("update project %s: %w", id, err)
	}
	return nil
}

func (r *Firestore) Delete(ctx context.Context, id string) error {
	ref := r.client.Collection(projectsCollection).Doc(id)
	if _, err := ref.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get project %s: %w", id, err)
	}

	if _, err := ref.Delete(ctx); err != nil {
		return fmt.Errorf("delete project %s: %w", id, err)
	}
	return nil
}
