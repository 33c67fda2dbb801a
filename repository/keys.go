// Package repository holds the authoritative in-memory workspace
// collections and mirrors every mutation into the key-value store.
package repository

import (
	"context"
	"encoding/json"
	"log"

	"github.com/worklifedesks/kv"
	"github.com/worklifedesks/utils"
)

// Storage keys. One fixed key per collection; the whole collection is
// rewritten on every mutation.
const (
	KeyCurrentUser      = "currentUser"
	KeyEmployees        = "employees"
	KeyMonthlyGoals     = "monthlyGoals"
	KeyWeeklyGoals      = "weeklyGoals"
	KeyDailyTasks       = "dailyTasks"
	KeyEmployeeModes    = "employeeModes"
	KeyEmployeeData     = "employeeData"
	KeyEmployeeNotes    = "employeeNotes"
	KeyMonthlyObjective = "monthlyObjective"
	KeyWorkflowAudit    = "workflowAudit"
	KeyKeyMetrics       = "keyMetrics"
	KeyUserProfile      = "userProfile"
	KeyUserOnlineStatus = "userOnlineStatus"
	KeySessions         = "sessions"
)

// persist writes a collection snapshot to the store. Write failures are
// logged and swallowed: the in-memory state is authoritative and must
// survive a failed mirror write.
func persist(ctx context.Context, store kv.Store, key string, v interface{}) {
	timer := utils.TrackStoreOperation("set", key)
	defer timer.ObserveDuration()

	data, err := json.Marshal(v)
	if err != nil {
		utils.TrackError("storage", "marshal_failed")
		log.Printf("Failed to serialize %q: %v", key, err)
		return
	}
	if err := store.Set(ctx, key, data); err != nil {
		utils.TrackError("storage", "write_failed")
		log.Printf("Failed to persist %q: %v", key, err)
	}
}

// load reads a value from the store into out. Returns kv.ErrNotFound
// when the key has never been written; a decode error when the stored
// value is malformed.
func load(ctx context.Context, store kv.Store, key string, out interface{}) error {
	timer := utils.TrackStoreOperation("get", key)
	defer timer.ObserveDuration()

	data, err := store.Get(ctx, key)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

// remove deletes a key outright.
func remove(ctx context.Context, store kv.Store, key string) {
	timer := utils.TrackStoreOperation("remove", key)
	defer timer.ObserveDuration()

	if err := store.Remove(ctx, key); err != nil {
		utils.TrackError("storage", "remove_failed")
		log.Printf("Failed to remove %q: %v", key, err)
	}
}
