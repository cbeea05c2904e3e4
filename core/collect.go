package core

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/flashcode/gitchart/internal/contract"
	"github.com/flashcode/gitchart/schema"
)

// queryCacheVersion invalidates stale cache entries when the query layout
// changes between releases.
const queryCacheVersion = 1

// gitQuery describes how to fetch the raw records for a chart kind.
type gitQuery struct {
	id    string
	fetch func(ctx context.Context, cfg *contract.Config, client contract.GitClient) ([]string, error)
}

// queryForKind maps a chart kind to its git query. Version ranges are not
// listed here; they run per tag pair in BucketVersions.
func queryForKind(kind schema.ChartKind) (gitQuery, error) {
	switch kind {
	case schema.AuthorsChart:
		return gitQuery{id: "authors", fetch: func(ctx context.Context, cfg *contract.Config, client contract.GitClient) ([]string, error) {
			return client.GetAuthorSummary(ctx, cfg.RepoPath, cfg.NoMerges)
		}}, nil
	case schema.TicketsByAuthorChart:
		return gitQuery{id: "subjects", fetch: func(ctx context.Context, cfg *contract.Config, client contract.GitClient) ([]string, error) {
			return client.GetCommitSubjects(ctx, cfg.RepoPath, cfg.NoMerges)
		}}, nil
	case schema.CommitsByHourOfDay:
		return dateQuery(schema.ISODate), nil
	case schema.CommitsByHourOfWeek, schema.CommitsByDayOfWeek:
		return dateQuery(schema.RFCDate), nil
	case schema.CommitsByDay, schema.CommitsByMonthOfYear, schema.CommitsByYear, schema.CommitsByYearMonth:
		return dateQuery(schema.ShortDate), nil
	case schema.FilesByType:
		return gitQuery{id: "files", fetch: func(ctx context.Context, cfg *contract.Config, client contract.GitClient) ([]string, error) {
			return client.ListFilesAtRef(ctx, cfg.RepoPath, "HEAD")
		}}, nil
	default:
		return gitQuery{}, contract.NewConfigError("chart kind %q has no git query", kind)
	}
}

func dateQuery(format schema.DateFormat) gitQuery {
	return gitQuery{id: "dates-" + string(format), fetch: func(ctx context.Context, cfg *contract.Config, client contract.GitClient) ([]string, error) {
		return client.GetCommitDates(ctx, cfg.RepoPath, format, cfg.NoMerges)
	}}
}

// CollectRecords fetches the raw record lines for the configured chart
// kind, reading through the query cache when one is available. Entries are
// keyed by the HEAD hash so any new commit naturally misses.
func CollectRecords(ctx context.Context, cfg *contract.Config, client contract.GitClient, manager contract.CacheManager) ([]string, error) {
	query, err := queryForKind(cfg.Kind)
	if err != nil {
		return nil, err
	}

	store := cacheStore(manager)
	key := ""
	if store != nil {
		key = cacheKey(ctx, cfg, client, query.id)
	}
	if key != "" {
		if data, version, _, err := store.Get(key); err == nil && version == queryCacheVersion {
			return splitCached(data), nil
		}
	}

	lines, err := query.fetch(ctx, cfg, client)
	if err != nil {
		return nil, err
	}

	if key != "" {
		if err := store.Set(key, []byte(strings.Join(lines, "\n")), queryCacheVersion, time.Now().Unix()); err != nil {
			contract.LogWarn("writing query cache", err)
		}
	}
	return lines, nil
}

// cacheKey builds "<HEAD hash>|<query id>", or "" when the hash cannot be
// resolved (caching is then bypassed for this run). The no-merges flag is
// part of the id because it changes the query output.
func cacheKey(ctx context.Context, cfg *contract.Config, client contract.GitClient, queryID string) string {
	hash, err := client.GetRepoHash(ctx, cfg.RepoPath)
	if err != nil || hash == "" {
		return ""
	}
	id := queryID
	if cfg.NoMerges {
		id += "-nomerges"
	}
	return fmt.Sprintf("%s|%s", hash, id)
}

func cacheStore(manager contract.CacheManager) contract.CacheStore {
	if manager == nil {
		return nil
	}
	return manager.GetQueryStore()
}

// splitCached restores the line slice from a cached blob. An empty blob
// means the query legitimately returned no records.
func splitCached(data []byte) []string {
	if len(data) == 0 {
		return []string{}
	}
	return strings.Split(string(data), "\n")
}
