package tasklist

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/idilsaglam/tada/internal/model"
	"github.com/idilsaglam/tada/internal/store/localstore"
)

// load reads the serialized sequence. Anything that is not a JSON array of
// tasks counts as nothing stored.
func load(store localstore.Storage, key string) []model.Task {
	raw, ok := store.GetItem(key)
	if !ok || raw == "" {
		return []model.Task{}
	}
	var tasks []model.Task
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
		log.Printf("tasklist: ignoring unreadable %q: %v", key, err)
		return []model.Task{}
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	return tasks
}

func save(store localstore.Storage, key string, tasks []model.Task) error {
	if tasks == nil {
		tasks = []model.Task{}
	}
	b, err := json.Marshal(tasks)
	if err != nil {
		log.Printf("tasklist: marshal: %v", err)
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := store.SetItem(key, string(b)); err != nil {
		log.Printf("tasklist: save %q: %v", key, err)
		return fmt.Errorf("save: %w", err)
	}
	return nil
}
