// ABOUTME: Journal entry mirror in the Charm KV store
// ABOUTME: Uses type-prefixed keys (entry:<id>) holding JSON-encoded entries
package charm

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/charm/kv"

	"github.com/harper/moodjournal/internal/db"
)

// EntryPrefix is the key prefix for mirrored entries.
const EntryPrefix = "entry:"

// entryKey returns the KV key for an entry.
func entryKey(id int64) []byte {
	return []byte(EntryPrefix + strconv.FormatInt(id, 10))
}

// parseEntryKey extracts the entry ID from a KV key.
func parseEntryKey(key []byte) (int64, bool) {
	s := string(key)
	if !strings.HasPrefix(s, EntryPrefix) {
		return 0, false
	}
	id, err := strconv.ParseInt(strings.TrimPrefix(s, EntryPrefix), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// PushEntries writes every entry to the KV store in one transaction.
func (c *Client) PushEntries(entries []db.Entry) error {
	return c.Do(func(k *kv.KV) error {
		for _, e := range entries {
			data, err := json.Marshal(e)
			if err != nil {
				return fmt.Errorf("marshal entry %d: %w", e.ID, err)
			}
			if err := k.Set(entryKey(e.ID), data); err != nil {
				return fmt.Errorf("set entry %d: %w", e.ID, err)
			}
		}
		return nil
	})
}

// PullEntries reads every mirrored entry, ordered by ID.
func (c *Client) PullEntries() ([]db.Entry, error) {
	var entries []db.Entry

	err := c.DoReadOnly(func(k *kv.KV) error {
		keys, err := k.Keys()
		if err != nil {
			return err
		}

		for _, key := range keys {
			if _, ok := parseEntryKey(key); !ok {
				continue
			}
			val, err := k.Get(key)
			if err != nil {
				return err
			}
			entry, ok := decodeEntry(val)
			if !ok {
				continue
			}
			entries = append(entries, entry)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("pull entries: %w", err)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	return entries, nil
}

// DeleteEntry removes a mirrored entry.
func (c *Client) DeleteEntry(id int64) error {
	if err := c.Do(func(k *kv.KV) error { return k.Delete(entryKey(id)) }); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	return nil
}

// decodeEntry parses a mirrored entry. Corrupted values are reported as not ok.
func decodeEntry(val []byte) (db.Entry, bool) {
	var entry db.Entry
	if err := json.Unmarshal(val, &entry); err != nil || entry.ID == 0 {
		return db.Entry{}, false
	}
	return entry, true
}
