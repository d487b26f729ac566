package client

import (
	"context"
	"net/url"
)

// Filters are the query parameters sent with a List call. Empty values are
// omitted from the request.
type Filters map[string]string

func (f Filters) values() url.Values {
	query := url.Values{}
	for key, value := range f {
		if value != "" {
			query.Set(key, value)
		}
	}

	return query
}

// Resource is a typed service over one API collection, covering the uniform
// list/get/create/update/delete surface every collection shares.
type Resource[T any] struct {
	client *Client
	path   string
}

// NewResource creates a service for the collection mounted at path,
// e.g. "/properties".
func NewResource[T any](c *Client, path string) *Resource[T] {
	return &Resource[T]{client: c, path: path}
}

// List fetches the collection. An empty collection is a successful empty
// slice, never an error.
func (r *Resource[T]) List(ctx context.Context, filters Filters) ([]T, error) {
	var items []T
	if err := r.client.Get(ctx, r.path, filters.values(), &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}

	return items, nil
}

// Get fetches a single item by id.
func (r *Resource[T]) Get(ctx context.Context, id string) (*T, error) {
	var item T
	if err := r.client.Get(ctx, r.path+"/"+id, nil, &item); err != nil {
		return nil, err
	}

	return &item, nil
}

// Create adds an item and returns the server's stored form.
func (r *Resource[T]) Create(ctx context.Context, payload *Payload) (*T, error) {
	var item T
	if err := r.client.PostForm(ctx, r.path, payload, &item); err != nil {
		return nil, err
	}

	return &item, nil
}

// Update replaces an item's editable fields and returns the stored form.
func (r *Resource[T]) Update(ctx context.Context, id string, payload *Payload) (*T, error) {
	var item T
	if err := r.client.PutForm(ctx, r.path+"/"+id, payload, &item); err != nil {
		return nil, err
	}

	return &item, nil
}

// UpdateStatus transitions an item's lifecycle status.
func (r *Resource[T]) UpdateStatus(ctx context.Context, id, status string) (*T, error) {
	var item T
	body := map[string]string{"status": status}
	if err := r.client.Put(ctx, r.path+"/"+id+"/status", body, &item); err != nil {
		return nil, err
	}

	return &item, nil
}

// Delete removes an item permanently. Deleting a missing item surfaces the
// server's not-found error unchanged.
func (r *Resource[T]) Delete(ctx context.Context, id string) error {
	return r.client.Delete(ctx, r.path+"/"+id)
}
