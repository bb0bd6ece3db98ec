// Package repository implements the backing document store over Postgres.
// Every collection is a set of named JSONB documents in the app_documents
// table; the data layer never sees SQL, only collections and documents.
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/yes-weigh/yesbheem-sub001/infrastructure/database/postgres"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const documentsTable = "app_documents"

// Collection names mirroring the original document layout
const (
	collectionReports     = "reports"
	collectionReportData  = "reports_data"
	collectionOverrides   = "dealer_overrides"
	collectionDeactivated = "deactivated_dealers"
	collectionKPI         = "kpi_data"
	collectionZipCodes    = "zip_codes"
	collectionSettings    = "general_settings"
)

// ErrDocumentNotFound is returned when a named document does not exist.
var ErrDocumentNotFound = fmt.Errorf("document not found")

// documentStore provides get/set/delete/list over named JSONB documents.
type documentStore struct {
	conn postgres.Queryer
}

func (d documentStore) getDocument(ctx context.Context, collection, name string, out any) error {
	query, args, err := squirrel.
		Select("data").
		From(documentsTable).
		Where(squirrel.Eq{"collection": collection, "name": name}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("building document query: %w", err)
	}

	var data []byte
	if err := d.conn.QueryRowContext(ctx, query, args...).Scan(&data); err != nil {
		if err == sql.ErrNoRows {
			return ErrDocumentNotFound
		}
		return fmt.Errorf("reading document %s/%s: %w", collection, name, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding document %s/%s: %w", collection, name, err)
	}

	return nil
}

func (d documentStore) setDocument(ctx context.Context, collection, name string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding document %s/%s: %w", collection, name, err)
	}

	query, args, err := squirrel.
		Insert(documentsTable).
		Columns("collection", "name", "data", "updated_at").
		Values(collection, name, data, time.Now().UTC()).
		Suffix("ON CONFLICT (collection, name) DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("building document upsert: %w", err)
	}

	if _, err := d.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("writing document %s/%s: %w", collection, name, err)
	}

	return nil
}

func (d documentStore) deleteDocument(ctx context.Context, collection, name string) error {
	query, args, err := squirrel.
		Delete(documentsTable).
		Where(squirrel.Eq{"collection": collection, "name": name}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("building document delete: %w", err)
	}

	if _, err := d.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("deleting document %s/%s: %w", collection, name, err)
	}

	return nil
}

// listDocuments returns every document in a collection, ordered by name for
// determinism.
func (d documentStore) listDocuments(ctx context.Context, collection string) (map[string][]byte, []string, error) {
	query, args, err := squirrel.
		Select("name", "data").
		From(documentsTable).
		Where(squirrel.Eq{"collection": collection}).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, nil, fmt.Errorf("building document list query: %w", err)
	}

	rows, err := d.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("listing collection %s: %w", collection, err)
	}
	defer rows.Close()

	documents := make(map[string][]byte)
	order := make([]string, 0)

	for rows.Next() {
		var name string
		var data []byte
		if err := rows.Scan(&name, &data); err != nil {
			return nil, nil, fmt.Errorf("scanning document in %s: %w", collection, err)
		}
		documents[name] = data
		order = append(order, name)
	}

	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterating collection %s: %w", collection, err)
	}

	return documents, order, nil
}
