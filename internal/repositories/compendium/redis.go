package compendium

import (
	"context"
	"encoding/json"
	"sort"
	"strconv"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/ddb-importer/internal/entities/document"
	"github.com/KirkDiggler/ddb-importer/internal/errors"
	redisclient "github.com/KirkDiggler/ddb-importer/internal/redis"
)

const (
	keyPrefix   = "compendium:"
	indexPrefix = "compendium:index:"
	// set of ids per item type
	membersSuffix = ":ids"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis compendium repository.
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed compendium repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

// GetKey returns the storage key of an item
func GetKey(kind document.ItemType, id string) string {
	return keyPrefix + string(kind) + ":" + id
}

func membersKey(kind document.ItemType) string {
	return keyPrefix + string(kind) + membersSuffix
}

func indexKey(kind IndexKind) string {
	return indexPrefix + string(kind)
}

func validKind(kind document.ItemType) bool {
	return kind == document.ItemTypeSpell || kind == document.ItemTypeFeat
}

func (r *redisRepository) Put(ctx context.Context, input *PutInput) (*PutOutput, error) {
	if input == nil || input.Item == nil {
		return nil, errors.InvalidArgument("item is required")
	}
	item := input.Item
	if item.ID == "" {
		return nil, errors.InvalidArgument("item id is required")
	}
	if !validKind(item.Type) {
		return nil, errors.InvalidArgumentf("unknown item type %q", item.Type)
	}

	data, err := json.Marshal(item)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal item %s", item.ID)
	}

	key := GetKey(item.Type, item.ID)
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, key, data, 0)
		pipe.SAdd(ctx, membersKey(item.Type), item.ID)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store item %s", item.ID)
	}

	return &PutOutput{Key: key}, nil
}

func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("item id is required")
	}
	if !validKind(input.Kind) {
		return nil, errors.InvalidArgumentf("unknown item type %q", input.Kind)
	}

	result, err := r.client.Get(ctx, GetKey(input.Kind, input.ID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("%s %s not found", input.Kind, input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get %s %s", input.Kind, input.ID)
	}

	var item document.Item
	if err := json.Unmarshal([]byte(result), &item); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal %s %s", input.Kind, input.ID)
	}

	return &GetOutput{Item: &item}, nil
}

func (r *redisRepository) ListByKind(ctx context.Context, input *ListByKindInput) (*ListByKindOutput, error) {
	if input == nil || !validKind(input.Kind) {
		return nil, errors.InvalidArgument("a known item type is required")
	}

	ids, err := r.client.SMembers(ctx, membersKey(input.Kind)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s ids", input.Kind)
	}
	if len(ids) == 0 {
		return &ListByKindOutput{Items: []*document.Item{}}, nil
	}
	sort.Strings(ids)

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = GetKey(input.Kind, id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s items", input.Kind)
	}

	items := make([]*document.Item, 0, len(values))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			// member without a document; removed out of band
			continue
		}
		var item document.Item
		if err := json.Unmarshal([]byte(raw), &item); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal %s %s", input.Kind, ids[i])
		}
		items = append(items, &item)
	}

	return &ListByKindOutput{Items: items}, nil
}

func (r *redisRepository) PutIndexEntry(ctx context.Context, input *PutIndexEntryInput) (*PutIndexEntryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if !input.Kind.IsValid() {
		vb.Fieldf("kind", "unknown index kind %q", input.Kind)
	}
	if input.Entry.DDBID <= 0 {
		vb.Field("entry.ddbId", "must be positive")
	}
	errors.ValidateRequired("entry.documentId", input.Entry.DocumentID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Entry)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal index entry")
	}

	field := strconv.Itoa(input.Entry.DDBID)
	if err := r.client.HSet(ctx, indexKey(input.Kind), field, data).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to index %s %d", input.Kind, input.Entry.DDBID)
	}

	return &PutIndexEntryOutput{}, nil
}

func (r *redisRepository) FindByDDBID(ctx context.Context, input *FindByDDBIDInput) (*FindByDDBIDOutput, error) {
	if input == nil || !input.Kind.IsValid() {
		return nil, errors.InvalidArgument("a known index kind is required")
	}

	entries := make(map[int]IndexEntry, len(input.DDBIDs))
	if len(input.DDBIDs) == 0 {
		return &FindByDDBIDOutput{Entries: entries}, nil
	}

	fields := make([]string, len(input.DDBIDs))
	for i, id := range input.DDBIDs {
		fields[i] = strconv.Itoa(id)
	}

	values, err := r.client.HMGet(ctx, indexKey(input.Kind), fields...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to look up %s index", input.Kind)
	}

	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		var entry IndexEntry
		if err := json.Unmarshal([]byte(raw), &entry); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal %s index entry %s", input.Kind, fields[i])
		}
		entries[input.DDBIDs[i]] = entry
	}

	return &FindByDDBIDOutput{Entries: entries}, nil
}
