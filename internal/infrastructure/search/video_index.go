package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"github.com/playtube/playtube-api/internal/domain/entity"
)

// VideoIndex mirrors published videos into Elasticsearch for full-text search
// over title and description. The database stays the source of truth; search
// results are resolved back through the video repository.
type VideoIndex struct {
	es    *elasticsearch.Client
	index string
}

func NewVideoIndex(es *elasticsearch.Client, index string) *VideoIndex {
	return &VideoIndex{es: es, index: index}
}

type videoDoc struct {
	ID          string `json:"id"`
	OwnerID     string `json:"owner_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	IsPublished bool   `json:"is_published"`
}

func (i *VideoIndex) Index(ctx context.Context, v *entity.Video) error {
	doc := videoDoc{
		ID:          v.ID,
		OwnerID:     v.OwnerID,
		Title:       v.Title,
		Description: v.Description,
		IsPublished: v.IsPublished,
	}
	body, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	req := esapi.IndexRequest{
		Index:      i.index,
		DocumentID: v.ID,
		Body:       bytes.NewReader(body),
		Refresh:    "false",
	}
	res, err := req.Do(ctx, i.es)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("index video %s: %s", v.ID, res.Status())
	}
	return nil
}

func (i *VideoIndex) Delete(ctx context.Context, videoID string) error {
	req := esapi.DeleteRequest{Index: i.index, DocumentID: videoID}
	res, err := req.Do(ctx, i.es)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	// 404 means the video was never indexed (e.g. unpublished); fine.
	if res.IsError() && res.StatusCode != 404 {
		return fmt.Errorf("delete video %s from index: %s", videoID, res.Status())
	}
	return nil
}

// Search returns ids of published videos matching query, best match first.
func (i *VideoIndex) Search(ctx context.Context, query string, limit, offset int) ([]string, error) {
	var buf bytes.Buffer
	body := map[string]any{
		"from": offset,
		"size": limit,
		"query": map[string]any{
			"bool": map[string]any{
				"must": map[string]any{
					"multi_match": map[string]any{
						"query":     query,
						"fields":    []string{"title^2", "description"},
						"fuzziness": "AUTO",
					},
				},
				"filter": map[string]any{
					"term": map[string]any{"is_published": true},
				},
			},
		},
	}
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return nil, err
	}

	res, err := i.es.Search(
		i.es.Search.WithContext(ctx),
		i.es.Search.WithIndex(i.index),
		i.es.Search.WithBody(strings.NewReader(buf.String())),
	)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.IsError() {
		return nil, fmt.Errorf("search videos: %s", res.Status())
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID string `json:"_id"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		ids = append(ids, h.ID)
	}
	return ids, nil
}
