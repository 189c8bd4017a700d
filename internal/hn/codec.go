package hn

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var errNullPayload = errors.New("payload is null")

// DecodeError reports a malformed or schema-mismatched payload.
type DecodeError struct {
	Resource string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Resource, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// DecodeItem decodes a single item. The API answers unknown IDs with null,
// which is reported as a DecodeError.
func DecodeItem(data []byte) (Item, error) {
	if isNull(data) {
		return Item{}, &DecodeError{Resource: "item", Err: errNullPayload}
	}
	var header struct {
		ID *int64 `json:"id"`
	}
	if err := json.Unmarshal(data, &header); err != nil {
		return Item{}, &DecodeError{Resource: "item", Err: err}
	}
	if header.ID == nil {
		return Item{}, &DecodeError{Resource: "item", Err: errors.New("missing id")}
	}
	var item Item
	if err := json.Unmarshal(data, &item); err != nil {
		return Item{}, &DecodeError{Resource: "item", Err: err}
	}
	return item, nil
}

func DecodeIDList(data []byte) (IDList, error) {
	if isNull(data) {
		return nil, &DecodeError{Resource: "id list", Err: errNullPayload}
	}
	var ids IDList
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, &DecodeError{Resource: "id list", Err: err}
	}
	return ids, nil
}

func DecodeUser(data []byte) (User, error) {
	if isNull(data) {
		return User{}, &DecodeError{Resource: "user", Err: errNullPayload}
	}
	var user User
	if err := json.Unmarshal(data, &user); err != nil {
		return User{}, &DecodeError{Resource: "user", Err: err}
	}
	if user.ID == "" {
		return User{}, &DecodeError{Resource: "user", Err: errors.New("missing id")}
	}
	return user, nil
}

func isNull(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
