package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"nanoclaw-bridges/internal/model"
	"nanoclaw-bridges/internal/reminder/repository"
)

var (
	ErrNoSuchList     = errors.New("no such list")
	ErrNoSuchReminder = errors.New("no such reminder")
)

// RequestAccess pings the server and seeds the default list into an empty
// namespace.
func (r *implRepository) RequestAccess(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}

	n, err := r.client.LLen(ctx, r.listsKey()).Result()
	if err != nil {
		return fmt.Errorf("redis llen: %w", err)
	}
	if n > 0 {
		return nil
	}

	data, err := json.Marshal(repository.ListRecord{ID: r.newID(), Name: r.seed})
	if err != nil {
		return err
	}
	if err := r.client.RPush(ctx, r.listsKey(), data).Err(); err != nil {
		return fmt.Errorf("redis rpush: %w", err)
	}
	r.l.Infof(ctx, "internal.reminder.repository.redis: seeded list %q under %s", r.seed, r.prefix)
	return nil
}

func (r *implRepository) Lists(ctx context.Context) ([]model.ReminderList, error) {
	docs, err := r.lists(ctx)
	if err != nil {
		return nil, err
	}
	lists := make([]model.ReminderList, 0, len(docs))
	for _, d := range docs {
		lists = append(lists, d.ToModel())
	}
	return lists, nil
}

func (r *implRepository) FetchReminders(ctx context.Context, opt repository.FetchOptions) ([]model.Reminder, error) {
	lists, err := r.lists(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(lists))
	for _, l := range lists {
		names[l.ID] = l.Name
	}

	ids, err := r.client.LRange(ctx, r.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("redis lrange: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.reminderKey(id)
	}
	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("redis mget: %w", err)
	}

	var out []model.Reminder
	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			r.l.Warnf(ctx, "internal.reminder.repository.redis: missing reminder %s", ids[i])
			continue
		}
		var d repository.ReminderRecord
		if err := json.Unmarshal([]byte(s), &d); err != nil {
			r.l.Warnf(ctx, "internal.reminder.repository.redis: decode %s: %v", ids[i], err)
			continue
		}
		if !opt.Matches(d.ListID, d.Completed) {
			continue
		}
		item, err := d.ToModel(names[d.ListID])
		if err != nil {
			r.l.Warnf(ctx, "internal.reminder.repository.redis: reminder %s: %v", d.ID, err)
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *implRepository) Save(ctx context.Context, item model.Reminder) (model.Reminder, error) {
	lists, err := r.lists(ctx)
	if err != nil {
		return model.Reminder{}, err
	}
	var listName string
	for _, l := range lists {
		if l.ID == item.ListID {
			listName = l.Name
			break
		}
	}
	if listName == "" {
		return model.Reminder{}, fmt.Errorf("%w: %s", ErrNoSuchList, item.ListID)
	}

	isNew := item.ID == ""
	if isNew {
		now := r.now()
		item.ID = r.newID()
		item.CreationDate = &now
	} else {
		raw, err := r.client.Get(ctx, r.reminderKey(item.ID)).Bytes()
		if errors.Is(err, goredis.Nil) {
			return model.Reminder{}, fmt.Errorf("%w: %s", ErrNoSuchReminder, item.ID)
		}
		if err != nil {
			return model.Reminder{}, fmt.Errorf("redis get: %w", err)
		}
		var prev repository.ReminderRecord
		if err := json.Unmarshal(raw, &prev); err == nil {
			item.CreationDate = prev.CreatedAt
		}
	}

	data, err := json.Marshal(repository.NewReminderRecord(item))
	if err != nil {
		return model.Reminder{}, err
	}
	_, err = r.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Set(ctx, r.reminderKey(item.ID), data, 0)
		if isNew {
			pipe.RPush(ctx, r.indexKey(), item.ID)
		}
		return nil
	})
	if err != nil {
		return model.Reminder{}, fmt.Errorf("redis save: %w", err)
	}

	item.ListName = listName
	return item, nil
}

func (r *implRepository) lists(ctx context.Context) ([]repository.ListRecord, error) {
	raw, err := r.client.LRange(ctx, r.listsKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("redis lrange: %w", err)
	}
	docs := make([]repository.ListRecord, 0, len(raw))
	for _, s := range raw {
		var d repository.ListRecord
		if err := json.Unmarshal([]byte(s), &d); err != nil {
			return nil, fmt.Errorf("decode list: %w", err)
		}
		docs = append(docs, d)
	}
	return docs, nil
}
