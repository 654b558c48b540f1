package platforms

import (
	"log/slog"

	"github.com/google/uuid"

	"colloquy/internal/domain/models/discussion"
	"colloquy/internal/platforms/convert"
)

// GenericAdapter normalizes loosely-typed record maps (forum-style or
// webhook payloads) into flat node records, driven entirely by the field
// aliases in the platform registry. Platforms without a dedicated typed
// adapter go through here.
type GenericAdapter struct {
	registry *Registry
	conv     *convert.HTMLConverter
	logger   *slog.Logger
}

// NewGenericAdapter creates a registry-driven adapter.
func NewGenericAdapter(registry *Registry, logger *slog.Logger) *GenericAdapter {
	return &GenericAdapter{
		registry: registry,
		conv:     convert.NewHTMLConverter(),
		logger:   logger,
	}
}

// Normalize maps raw records onto the canonical flat node shape using the
// source's field aliases. A record without a resolvable id gets a generated
// UUID instead of being dropped: its replies (if any) then fail to resolve
// and surface as orphans, which loses placement but never data. Keys not
// consumed by the mapping are carried through as opaque metadata.
func (a *GenericAdapter) Normalize(source discussion.SourceType, raw []map[string]any) ([]discussion.NodeRecord, error) {
	desc, err := a.registry.Descriptor(source)
	if err != nil {
		return nil, err
	}

	records := make([]discussion.NodeRecord, 0, len(raw))
	for _, m := range raw {
		var rec discussion.NodeRecord
		consumed := make(map[string]bool)

		id, idKey := firstKey(m, desc.IDKeys)
		if id == "" {
			id = uuid.New().String()
			a.logger.Debug("record has no id, generated one", "source", string(source), "id", id)
		} else {
			consumed[idKey] = true
		}
		rec.ID = id

		if parent, key := firstKey(m, desc.ParentKeys); parent != "" {
			rec.ParentID = &parent
			consumed[key] = true
		}
		if author, key := firstKey(m, desc.AuthorKeys); author != "" {
			rec.Author = author
			consumed[key] = true
		}
		if content, key := firstKey(m, desc.ContentKeys); key != "" {
			rec.Content = content
			consumed[key] = true
		}
		for _, key := range desc.TimeKeys {
			if ts, ok := timeField(m, key); ok {
				rec.CreatedAt = ts
				consumed[key] = true
				break
			}
		}
		if url, key := firstKey(m, desc.URLKeys); url != "" {
			rec.URL = &url
			consumed[key] = true
		}
		for _, key := range desc.ScoreKeys {
			if score, ok := intField(m, key); ok {
				rec.Score = intPtr(score)
				consumed[key] = true
				break
			}
		}

		if desc.HTMLContent && rec.Content != "" {
			markdown, err := a.conv.Markdown(rec.Content)
			if err != nil {
				a.logger.Warn("html conversion failed, keeping raw content",
					"source", string(source), "id", rec.ID, "error", err)
			} else {
				rec.Content = markdown
			}
		}

		for key, value := range m {
			if consumed[key] {
				continue
			}
			if rec.Metadata == nil {
				rec.Metadata = make(map[string]any)
			}
			rec.Metadata[key] = value
		}

		if err := validateRecord(&rec); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// firstKey returns the first non-empty string value among keys along with
// the key that held it.
func firstKey(m map[string]any, keys []string) (string, string) {
	for _, key := range keys {
		if s, ok := stringField(m, key); ok && s != "" {
			return s, key
		}
	}
	return "", ""
}
