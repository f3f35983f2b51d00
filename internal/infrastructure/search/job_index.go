package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"github.com/oksasatya/job-portal-api/internal/domain/entity"
)

const defaultPageSize = 100

// the raw keyword subfields hold the whole value so wildcard queries behave
// like a case-insensitive substring match, the same as the storage search.
const jobMapping = `{
  "mappings": {
    "properties": {
      "id":           {"type": "keyword"},
      "title":        {"type": "text", "fields": {"raw": {"type": "keyword", "ignore_above": 8191}}},
      "description":  {"type": "text", "fields": {"raw": {"type": "keyword", "ignore_above": 8191}}},
      "company_name": {"type": "text", "fields": {"raw": {"type": "keyword", "ignore_above": 8191}}},
      "company_id":   {"type": "keyword"},
      "requirements": {"type": "text"},
      "location":     {"type": "text"},
      "job_type":     {"type": "keyword"},
      "created_at":   {"type": "date"}
    }
  }
}`

var searchFields = []string{"title.raw", "description.raw", "company_name.raw"}

// JobIndex keeps a searchable copy of jobs in Elasticsearch. Storage stays the
// source of truth; only ids come back from Search.
type JobIndex struct {
	ES       *elasticsearch.Client
	Name     string
	PageSize int

	mu      sync.Mutex
	created bool
}

func NewJobIndex(es *elasticsearch.Client, index string) *JobIndex {
	return &JobIndex{ES: es, Name: index, PageSize: defaultPageSize}
}

type jobDoc struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
	Location     string   `json:"location"`
	JobType      string   `json:"job_type"`
	CompanyID    string   `json:"company_id"`
	CompanyName  string   `json:"company_name"`
	CreatedAt    string   `json:"created_at"`
}

// ensure creates the index with its mapping once per process.
func (x *JobIndex) ensure(ctx context.Context) error {
	x.mu.Lock()
	defer x.mu.Unlock()
	if x.created {
		return nil
	}
	exists, err := esapi.IndicesExistsRequest{Index: []string{x.Name}}.Do(ctx, x.ES)
	if err != nil {
		return err
	}
	_ = exists.Body.Close()
	if exists.StatusCode == http.StatusOK {
		x.created = true
		return nil
	}

	res, err := esapi.IndicesCreateRequest{Index: x.Name, Body: strings.NewReader(jobMapping)}.Do(ctx, x.ES)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		body, _ := io.ReadAll(res.Body)
		if !bytes.Contains(body, []byte("resource_already_exists_exception")) {
			return fmt.Errorf("es create index: %s", res.Status())
		}
	}
	x.created = true
	return nil
}

func (x *JobIndex) Index(ctx context.Context, j entity.JobDetail) error {
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := x.ensure(c); err != nil {
		return err
	}

	doc := jobDoc{
		ID:           j.ID,
		Title:        j.Title,
		Description:  j.Description,
		Requirements: j.Requirements,
		Location:     j.Location,
		JobType:      j.JobType,
		CompanyID:    j.CompanyID,
		CompanyName:  j.Company.Name,
		CreatedAt:    j.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	// wait_for makes the job searchable before Post returns
	req := esapi.IndexRequest{Index: x.Name, DocumentID: j.ID, Body: bytes.NewReader(b), Refresh: "wait_for"}
	res, err := req.Do(c, x.ES)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return fmt.Errorf("es index: %s", res.Status())
	}
	return nil
}

// escapeWildcard quotes the characters the wildcard query treats specially.
func escapeWildcard(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`)
	return r.Replace(s)
}

func substringQuery(keyword string) map[string]any {
	pattern := "*" + escapeWildcard(keyword) + "*"
	should := make([]any, 0, len(searchFields))
	for _, f := range searchFields {
		should = append(should, map[string]any{
			"wildcard": map[string]any{
				f: map[string]any{"value": pattern, "case_insensitive": true},
			},
		})
	}
	return map[string]any{
		"bool": map[string]any{"should": should, "minimum_should_match": 1},
	}
}

// Search returns the ids of every job whose title, description or company
// name contains keyword, ignoring case. Results are paged with search_after
// so nothing is cut off.
func (x *JobIndex) Search(ctx context.Context, keyword string) ([]string, error) {
	c, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := x.ensure(c); err != nil {
		return nil, err
	}

	size := x.PageSize
	if size <= 0 {
		size = defaultPageSize
	}
	var (
		ids   []string
		after []json.RawMessage
	)
	for {
		body := map[string]any{
			"query":   substringQuery(keyword),
			"_source": false,
			"size":    size,
			"sort": []any{
				map[string]any{"created_at": "desc"},
				map[string]any{"id": "asc"},
			},
		}
		if after != nil {
			body["search_after"] = after
		}
		hits, err := x.page(c, body)
		if err != nil {
			return nil, err
		}
		for _, h := range hits {
			ids = append(ids, h.ID)
		}
		if len(hits) < size {
			break
		}
		after = hits[len(hits)-1].Sort
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

type hit struct {
	ID   string            `json:"_id"`
	Sort []json.RawMessage `json:"sort"`
}

func (x *JobIndex) page(ctx context.Context, body map[string]any) ([]hit, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	res, err := x.ES.Search(
		x.ES.Search.WithContext(ctx),
		x.ES.Search.WithIndex(x.Name),
		x.ES.Search.WithBody(bytes.NewReader(b)),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return nil, fmt.Errorf("es search: %s", res.Status())
	}

	var parsed struct {
		Hits struct {
			Hits []hit `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}
	return parsed.Hits.Hits, nil
}
