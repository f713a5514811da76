package main

import (
	"encoding/json"
	"math/rand"
	"os"

	"github.com/nume-crypto/posol/internal/errs"
)

// UserInfo is one row of the user list the CLI persists as JSON (§4.12),
// mirroring original_source/bin/src/main.rs's UserInfo: a 32-byte tag and
// a balance bounded by the domain size.
type UserInfo struct {
	ID      [32]byte `json:"id"`
	Balance uint64   `json:"balance"`
}

func genUsers(n uint64, count uint32) ([]UserInfo, error) {
	if uint64(count) > n {
		return nil, errs.New(errs.InvalidInput, "requested %d users exceeds domain size %d", count, n)
	}
	users := make([]UserInfo, count)
	for i := range users {
		var id [32]byte
		if _, err := rand.Read(id[:]); err != nil {
			return nil, errs.Wrap(errs.InvalidInput, err, "generate random tag")
		}
		users[i] = UserInfo{ID: id, Balance: uint64(rand.Int63n(int64(n)))}
	}
	return users, nil
}

func writeUsersJSON(path string, users []UserInfo) error {
	b, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return errs.Wrap(errs.InvalidInput, err, "marshal users json")
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return errs.Wrap(errs.InvalidInput, err, "write %s", path)
	}
	return nil
}

func readUsersJSON(path string) ([]UserInfo, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrap(errs.InvalidInput, err, "read %s", path)
	}
	var users []UserInfo
	if err := json.Unmarshal(b, &users); err != nil {
		return nil, errs.Wrap(errs.InvalidInput, err, "unmarshal users json")
	}
	return users, nil
}
