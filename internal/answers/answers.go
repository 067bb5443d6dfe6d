// Package answers keeps a ledger of computed puzzle answers in BigQuery.
package answers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/google/uuid"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/iterator"
)

// Answer is one computed answer, as stored in the ledger table.
type Answer struct {
	RunID  string    `bigquery:"run_id"`
	Year   int       `bigquery:"year"`
	Day    int       `bigquery:"day"`
	Part   int       `bigquery:"part"`
	Value  int64     `bigquery:"value"`
	Solved time.Time `bigquery:"solved"`
}

// Recorder stores answers.
type Recorder interface {
	Record(ctx context.Context, answers ...Answer) error
}

// NewRunID returns an id shared by the answers of one invocation.
func NewRunID() string {
	return uuid.NewString()
}

// Store is a BigQuery backed answer ledger.
type Store struct {
	client *bigquery.Client
	table  *bigquery.Table
}

// NewStore connects to the ledger table project.dataset.table.
func NewStore(ctx context.Context, project, dataset, table string) (*Store, error) {
	client, err := bigquery.NewClient(ctx, project)
	if err != nil {
		return nil, fmt.Errorf("bigquery.NewClient: %w", err)
	}
	return &Store{
		client: client,
		table:  client.Dataset(dataset).Table(table),
	}, nil
}

func (s *Store) Close() error {
	return s.client.Close()
}

// EnsureTable creates the ledger table if it does not exist yet.
func (s *Store) EnsureTable(ctx context.Context) error {
	schema, err := bigquery.InferSchema(Answer{})
	if err != nil {
		return fmt.Errorf("bigquery.InferSchema: %w", err)
	}
	err = s.table.Create(ctx, &bigquery.TableMetadata{Schema: schema})
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusConflict {
		return nil
	}
	if err != nil {
		return fmt.Errorf("table.Create: %w", err)
	}
	return nil
}

// Record appends answers to the ledger.
func (s *Store) Record(ctx context.Context, answers ...Answer) error {
	if len(answers) == 0 {
		return nil
	}
	if err := s.table.Inserter().Put(ctx, answers); err != nil {
		return fmt.Errorf("inserter.Put: %w", err)
	}
	return nil
}

func historyQuery(t *bigquery.Table) string {
	return fmt.Sprintf("SELECT run_id, year, day, part, value, solved FROM `%s.%s.%s` "+
		"WHERE year = @year AND day = @day ORDER BY solved DESC, part", t.ProjectID, t.DatasetID, t.TableID)
}

// History returns every recorded answer for a day, newest first.
func (s *Store) History(ctx context.Context, year, day int) ([]Answer, error) {
	q := s.client.Query(historyQuery(s.table))
	q.Parameters = []bigquery.QueryParameter{
		{Name: "year", Value: year},
		{Name: "day", Value: day},
	}

	it, err := q.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.Read: %w", err)
	}
	var history []Answer
	for {
		var a Answer
		err := it.Next(&a)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("it.Next: %w", err)
		}
		history = append(history, a)
	}
	return history, nil
}
